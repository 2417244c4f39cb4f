package fixlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-dtr/internal/events"
	fixlogerrors "go-dtr/internal/fixlog/errors"
	"go-dtr/internal/messaging/kafka"
	"go-dtr/internal/reconcile"
	"go-dtr/internal/shared/contextutil"
	"go-dtr/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusForApproval = "For Approval"
	StatusApproved    = "Approved"
	StatusReturned    = "Returned"
	StatusCancelled   = "Cancelled"
)

const counterType = "fixlog"

// CacheInvalidator bumps the employee's timesheet cache version after a
// decision changes what reconciliation would produce.
type CacheInvalidator interface {
	BumpVersion(ctx context.Context, employeeID string) error
}

//go:generate mockgen -source=fixlog_service.go -destination=mock/fixlog_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, employeeID, actorID string, req CreateFixLogRequest) (FixLogResponse, error)
	GetAll(ctx context.Context, employeeID string) ([]FixLogResponse, error)
	GetByID(ctx context.Context, id string) (FixLogResponse, error)
	UpdateStatus(ctx context.Context, actorID, id string, req UpdateFixLogStatusRequest) (FixLogResponse, error)
	ListForRange(ctx context.Context, employeeID, from, to string) ([]reconcile.FixLog, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	counters counter.Repository
	outbox   kafka.OutboxRepository
	cache    CacheInvalidator
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counters counter.Repository,
	outbox kafka.OutboxRepository,
	cache CacheInvalidator,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("fixlog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("fixlog.service")
	}
	return &service{db: db, repo: repo, counters: counters, outbox: outbox, cache: cache, logger: l}
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fixlogerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func (s *service) Create(ctx context.Context, employeeID, actorID string, req CreateFixLogRequest) (FixLogResponse, error) {
	s.logger.Debug("create fix log requested",
		zap.String("employee_id", employeeID),
		zap.String("actor_id", actorID),
		zap.String("log_date", req.LogDate),
	)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return FixLogResponse{}, fixlogerrors.ErrInvalidEmployeeID
	}
	filedByUUID, err := uuid.Parse(actorID)
	if err != nil {
		return FixLogResponse{}, fixlogerrors.ErrInvalidActorID
	}
	logDate, err := parseDate(req.LogDate)
	if err != nil {
		return FixLogResponse{}, err
	}
	overrides := []string{req.AmIn, req.AmOut, req.PmIn, req.PmOut}
	anyOverride := false
	for _, t := range overrides {
		if t == "" {
			continue
		}
		if _, ok := reconcile.TimeToMinutes(t); !ok {
			return FixLogResponse{}, fixlogerrors.ErrInvalidTimeFormat
		}
		anyOverride = true
	}
	if !anyOverride {
		return FixLogResponse{}, fixlogerrors.ErrNoSlotOverrides
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create fix log begin tx failed", zap.Error(err))
		return FixLogResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	duplicate, err := qtx.HasFilingOnDate(ctx, employeeID, logDate)
	if err != nil {
		s.logger.Error("create fix log duplicate check failed", zap.Error(err))
		return FixLogResponse{}, err
	}
	if duplicate {
		s.logger.Warn("create fix log duplicate filing",
			zap.String("employee_id", employeeID),
			zap.String("log_date", req.LogDate),
		)
		return FixLogResponse{}, fixlogerrors.ErrDuplicateFiling
	}

	period := fmt.Sprintf("%d", logDate.Year())
	seq, err := s.counters.GetNextValue(ctx, counterType, period)
	if err != nil {
		s.logger.Error("create fix log sequence failed", zap.Error(err))
		return FixLogResponse{}, err
	}

	f := &FixLog{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		FixLogNo:   fmt.Sprintf("FIX-%s-%04d", period, seq),
		LogDate:    logDate,
		AmIn:       req.AmIn,
		AmOut:      req.AmOut,
		PmIn:       req.PmIn,
		PmOut:      req.PmOut,
		Reason:     req.Reason,
		Status:     StatusForApproval,
		FiledBy:    filedByUUID,
	}

	if err := qtx.Create(ctx, f); err != nil {
		s.logger.Error("create fix log persist failed", zap.Error(err))
		return FixLogResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create fix log commit failed", zap.Error(err))
		return FixLogResponse{}, err
	}
	s.logger.Info("create fix log success",
		zap.String("fix_log_id", f.ID.String()),
		zap.String("fix_log_no", f.FixLogNo),
		zap.String("employee_id", employeeID),
	)

	return mapToResponse(*f), nil
}

func (s *service) GetAll(ctx context.Context, employeeID string) ([]FixLogResponse, error) {
	fixLogs, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	resp := make([]FixLogResponse, 0, len(fixLogs))
	for _, f := range fixLogs {
		resp = append(resp, mapToResponse(f))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (FixLogResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FixLogResponse{}, fixlogerrors.ErrFixLogNotFound
		}
		return FixLogResponse{}, err
	}
	return mapToResponse(*f), nil
}

func (s *service) UpdateStatus(ctx context.Context, actorID, id string, req UpdateFixLogStatusRequest) (FixLogResponse, error) {
	s.logger.Debug("update fix log status requested",
		zap.String("fix_log_id", id),
		zap.String("actor_id", actorID),
		zap.String("target_status", req.Status),
	)

	decidedByUUID, err := uuid.Parse(actorID)
	if err != nil {
		return FixLogResponse{}, fixlogerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update fix log status begin tx failed", zap.Error(err))
		return FixLogResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	f, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FixLogResponse{}, fixlogerrors.ErrFixLogNotFound
		}
		return FixLogResponse{}, err
	}

	previousStatus := f.Status
	if !isAllowedStatusTransition(previousStatus, req.Status) {
		return FixLogResponse{}, fixlogerrors.ErrInvalidStatusTransition
	}

	f.Status = req.Status
	now := time.Now().UTC()
	f.DecidedBy = &decidedByUUID
	f.DecidedAt = &now
	if req.Status == StatusReturned {
		if req.ReturnReason == nil || *req.ReturnReason == "" {
			return FixLogResponse{}, fixlogerrors.ErrReturnReasonRequired
		}
		f.ReturnReason = req.ReturnReason
	} else {
		f.ReturnReason = nil
	}

	if err := qtx.Update(ctx, f); err != nil {
		s.logger.Error("update fix log status persist failed",
			zap.String("fix_log_id", id),
			zap.Error(err),
		)
		return FixLogResponse{}, err
	}

	// a decision that changes reconciliation output goes through the
	// outbox inside the same tx
	if recomputes(previousStatus, req.Status) {
		if err := s.enqueueRecompute(ctx, tx, f, req.Status); err != nil {
			s.logger.Error("update fix log status outbox failed", zap.Error(err))
			return FixLogResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update fix log status commit failed",
			zap.String("fix_log_id", id),
			zap.Error(err),
		)
		return FixLogResponse{}, err
	}

	if recomputes(previousStatus, req.Status) && s.cache != nil {
		if err := s.cache.BumpVersion(ctx, f.EmployeeID.String()); err != nil {
			// stale cache is tolerable, the version bump is retried on
			// the next decision
			s.logger.Warn("update fix log status cache bump failed",
				zap.String("employee_id", f.EmployeeID.String()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("update fix log status success",
		zap.String("fix_log_id", id),
		zap.String("status", f.Status),
	)

	return mapToResponse(*f), nil
}

// ListForRange feeds reconciliation. Statuses normalize to the closed
// enum here, at the ingestion boundary.
func (s *service) ListForRange(ctx context.Context, employeeID, from, to string) ([]reconcile.FixLog, error) {
	fromDate, err := parseDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := parseDate(to)
	if err != nil {
		return nil, err
	}

	fixLogs, err := s.repo.FindByEmployeeAndRange(ctx, employeeID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	feed := make([]reconcile.FixLog, 0, len(fixLogs))
	for _, f := range fixLogs {
		feed = append(feed, reconcile.FixLog{
			Date:         f.LogDate.Format("2006-01-02"),
			Status:       reconcile.NormalizeStatus(f.Status),
			AmIn:         f.AmIn,
			AmOut:        f.AmOut,
			PmIn:         f.PmIn,
			PmOut:        f.PmOut,
			ApproverName: f.ApproverName,
		})
	}
	return feed, nil
}

func isAllowedStatusTransition(currentStatus, targetStatus string) bool {
	if currentStatus == targetStatus {
		return false
	}

	switch currentStatus {
	case StatusForApproval:
		return targetStatus == StatusApproved ||
			targetStatus == StatusReturned ||
			targetStatus == StatusCancelled
	case StatusApproved:
		return targetStatus == StatusCancelled
	default:
		return false
	}
}

// recomputes reports whether a transition changes what the engine
// produces: approving a filing, or cancelling an approved one.
func recomputes(previousStatus, targetStatus string) bool {
	if targetStatus == StatusApproved {
		return true
	}
	return previousStatus == StatusApproved && targetStatus == StatusCancelled
}

func (s *service) enqueueRecompute(ctx context.Context, tx *sql.Tx, f *FixLog, reason string) error {
	event := events.TimesheetRecomputedEvent{
		EventType:  "timesheet.recomputed",
		EmployeeID: f.EmployeeID.String(),
		Dates:      []string{f.LogDate.Format("2006-01-02")},
		Reason:     "fixlog_" + strings.ToLower(reason),
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "fixlog",
		AggregateID:   f.ID.String(),
		EventType:     event.EventType,
		Topic:         events.TimesheetRecomputedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(f FixLog) FixLogResponse {
	resp := FixLogResponse{
		ID:           f.ID.String(),
		EmployeeID:   f.EmployeeID.String(),
		FixLogNo:     f.FixLogNo,
		LogDate:      f.LogDate.Format("2006-01-02"),
		AmIn:         f.AmIn,
		AmOut:        f.AmOut,
		PmIn:         f.PmIn,
		PmOut:        f.PmOut,
		Reason:       f.Reason,
		Status:       f.Status,
		FiledBy:      f.FiledBy.String(),
		ReturnReason: f.ReturnReason,
	}
	if f.DecidedBy != nil {
		decidedBy := f.DecidedBy.String()
		resp.DecidedBy = &decidedBy
	}
	if f.DecidedAt != nil {
		decidedAt := f.DecidedAt.UTC().Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}
	return resp
}
