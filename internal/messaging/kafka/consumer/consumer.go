package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-dtr/internal/events"
	"go-dtr/internal/timelog"
	timelogerrors "go-dtr/internal/timelog/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePunchCaptured appends raw punches emitted by the biometric
// capture edge. Bad payloads are committed and dropped; transient store
// failures leave the message uncommitted for redelivery.
func ConsumePunchCaptured(
	ctx context.Context,
	reader *kafkago.Reader,
	timeLogService timelog.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.punch_captured")
	log.Info("punch captured consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("punch captured consumer stopped")
				return
			}
			log.Error("fetch punch captured message failed", zap.Error(err))
			continue
		}

		var event events.PunchCapturedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode punch_captured event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		err = timeLogService.Append(ctx, timelog.AppendPunchRequest{
			UserID:    event.UserID,
			CheckTime: event.CheckTime,
			DeviceID:  event.DeviceID,
		})
		if err != nil {
			if isPermanentPunchError(err) {
				log.Warn("unusable punch dropped",
					zap.String("user_id", event.UserID),
					zap.String("check_time", event.CheckTime),
					zap.Error(err),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("append punch failed",
				zap.String("user_id", event.UserID),
				zap.String("check_time", event.CheckTime),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit punch captured message failed", zap.Error(err))
			continue
		}

		log.Info("punch appended from punch_captured event",
			zap.String("user_id", event.UserID),
			zap.String("check_time", event.CheckTime),
			zap.String("device_id", event.DeviceID),
		)
	}
}

// isPermanentPunchError reports errors no retry can fix.
func isPermanentPunchError(err error) bool {
	return errors.Is(err, timelogerrors.ErrInvalidCheckTime)
}
