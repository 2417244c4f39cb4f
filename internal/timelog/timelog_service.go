package timelog

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-dtr/internal/reconcile"
	timelogerrors "go-dtr/internal/timelog/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// checkTimeLayouts covers what punch devices actually emit.
var checkTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

// UserResolver maps an employee to their punch device user number.
// Implemented by the employee read model.
type UserResolver interface {
	DtrUserID(ctx context.Context, employeeID string) (string, error)
}

//go:generate mockgen -source=timelog_service.go -destination=mock/timelog_service_mock.go -package=mock
type Service interface {
	Append(ctx context.Context, req AppendPunchRequest) error
	ListRaw(ctx context.Context, employeeID, from, to string) ([]RawDayResponse, error)
	ListForRange(ctx context.Context, employeeID, from, to string) ([]reconcile.RawPunch, error)
}

type service struct {
	repo   Repository
	users  UserResolver
	logger *zap.Logger
}

func NewService(repo Repository, users UserResolver, logger ...*zap.Logger) Service {
	l := zap.L().Named("timelog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timelog.service")
	}
	return &service{repo: repo, users: users, logger: l}
}

func parseCheckTime(value string) (time.Time, error) {
	for _, layout := range checkTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, timelogerrors.ErrInvalidCheckTime
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, timelogerrors.ErrInvalidDateRange
	}
	return t, nil
}

// Append stores a captured punch. Replayed events hit the unique
// constraint and are dropped silently.
func (s *service) Append(ctx context.Context, req AppendPunchRequest) error {
	checkTime, err := parseCheckTime(req.CheckTime)
	if err != nil {
		return err
	}

	l := &TimeLog{
		ID:        uuid.New(),
		DtrUserID: req.UserID,
		CheckTime: checkTime,
		DeviceID:  req.DeviceID,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		if isDuplicatePunch(err) {
			s.logger.Warn("duplicate punch dropped",
				zap.String("dtr_user_id", req.UserID),
				zap.String("check_time", req.CheckTime),
			)
			return nil
		}
		return err
	}

	s.logger.Info("punch appended",
		zap.String("dtr_user_id", req.UserID),
		zap.String("check_time", req.CheckTime),
		zap.String("device_id", req.DeviceID),
	)
	return nil
}

func (s *service) ListRaw(ctx context.Context, employeeID, from, to string) ([]RawDayResponse, error) {
	punches, err := s.ListForRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	days := make([]RawDayResponse, 0)
	byDate := make(map[string]int)
	for _, p := range punches {
		date := reconcile.ExtractDate(p.Timestamp)
		timeOfDay := reconcile.ExtractTime(p.Timestamp)
		if date == "" || timeOfDay == "" {
			continue
		}

		idx, ok := byDate[date]
		if !ok {
			days = append(days, RawDayResponse{
				Date: date,
				Am:   []RawPunchResponse{},
				Pm:   []RawPunchResponse{},
			})
			idx = len(days) - 1
			byDate[date] = idx
		}

		entry := RawPunchResponse{Time: timeOfDay}
		minutes, ok := reconcile.TimeToMinutes(timeOfDay)
		if ok && minutes < 12*60 {
			days[idx].Am = append(days[idx].Am, entry)
		} else {
			days[idx].Pm = append(days[idx].Pm, entry)
		}
	}
	return days, nil
}

// ListForRange feeds reconciliation with raw punch timestamps.
func (s *service) ListForRange(ctx context.Context, employeeID, from, to string) ([]reconcile.RawPunch, error) {
	fromDate, err := parseDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := parseDate(to)
	if err != nil {
		return nil, err
	}

	dtrUserID, err := s.users.DtrUserID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if dtrUserID == "" {
		return nil, timelogerrors.ErrUnknownUser
	}

	logs, err := s.repo.FindByUserAndRange(ctx, dtrUserID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	punches := make([]reconcile.RawPunch, 0, len(logs))
	for _, l := range logs {
		punches = append(punches, reconcile.RawPunch{
			Timestamp: l.CheckTime.Format("2006-01-02 15:04:05"),
		})
	}
	return punches, nil
}

func isDuplicatePunch(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_time_logs_user_check_time"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_time_logs_user_check_time")
}
