package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-dtr/internal/events"
	leaveerrors "go-dtr/internal/leave/errors"
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

const counterType = "leave"

// CacheInvalidator bumps the employee's timesheet cache version after a
// decision changes what reconciliation would produce.
type CacheInvalidator interface {
	BumpVersion(ctx context.Context, employeeID string) error
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, employeeID, actorID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	UpdateStatus(ctx context.Context, actorID, id string, req UpdateLeaveStatusRequest) (LeaveResponse, error)
	ListForRange(ctx context.Context, employeeID, from, to string) ([]reconcile.Leave, error)
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
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, counters: counters, outbox: outbox, cache: cache, logger: l}
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func (s *service) Create(ctx context.Context, employeeID, actorID string, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("employee_id", employeeID),
		zap.String("actor_id", actorID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	filedByUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if startDate.After(endDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlappingPeriod(ctx, employeeID, startDate, endDate, nil)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("create leave overlap detected",
			zap.String("employee_id", employeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	period := fmt.Sprintf("%d", startDate.Year())
	seq, err := s.counters.GetNextValue(ctx, counterType, period)
	if err != nil {
		s.logger.Error("create leave sequence failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	leaveID := uuid.New()
	details := make([]LeaveDetail, 0)
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		details = append(details, LeaveDetail{
			ID:        uuid.New(),
			LeaveID:   leaveID,
			LeaveDate: d,
		})
	}

	l := &Leave{
		ID:         leaveID,
		EmployeeID: employeeUUID,
		LeaveNo:    fmt.Sprintf("LEV-%s-%04d", period, seq),
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  len(details),
		Reason:     req.Reason,
		Details:    details,
		Status:     StatusForApproval,
		FiledBy:    filedByUUID,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("leave_no", l.LeaveNo),
		zap.String("employee_id", employeeID),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	resp := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		resp = append(resp, mapToResponse(l))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) UpdateStatus(ctx context.Context, actorID, id string, req UpdateLeaveStatusRequest) (LeaveResponse, error) {
	s.logger.Debug("update leave status requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
		zap.String("target_status", req.Status),
	)

	decidedByUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	previousStatus := l.Status
	if !isAllowedStatusTransition(previousStatus, req.Status) {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	l.Status = req.Status
	now := time.Now().UTC()
	l.DecidedBy = &decidedByUUID
	l.DecidedAt = &now
	if req.Status == StatusReturned {
		if req.ReturnReason == nil || *req.ReturnReason == "" {
			return LeaveResponse{}, leaveerrors.ErrReturnReasonRequired
		}
		l.ReturnReason = req.ReturnReason
	} else {
		l.ReturnReason = nil
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("update leave status persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	// a decision that changes reconciliation output goes through the
	// outbox inside the same tx
	if recomputes(previousStatus, req.Status) {
		if err := s.enqueueRecompute(ctx, tx, l, req.Status); err != nil {
			s.logger.Error("update leave status outbox failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave status commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if recomputes(previousStatus, req.Status) && s.cache != nil {
		if err := s.cache.BumpVersion(ctx, l.EmployeeID.String()); err != nil {
			s.logger.Warn("update leave status cache bump failed",
				zap.String("employee_id", l.EmployeeID.String()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("update leave status success",
		zap.String("leave_id", id),
		zap.String("status", l.Status),
	)

	return mapToResponse(*l), nil
}

// ListForRange feeds reconciliation with approved filings only.
func (s *service) ListForRange(ctx context.Context, employeeID, from, to string) ([]reconcile.Leave, error) {
	fromDate, err := parseDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := parseDate(to)
	if err != nil {
		return nil, err
	}

	leaves, err := s.repo.FindApprovedByRange(ctx, employeeID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	feed := make([]reconcile.Leave, 0, len(leaves))
	for _, l := range leaves {
		feed = append(feed, reconcile.Leave{
			Dates:  detailDates(l),
			RefNo:  l.LeaveNo,
			Status: reconcile.NormalizeStatus(l.Status),
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

func (s *service) enqueueRecompute(ctx context.Context, tx *sql.Tx, l *Leave, reason string) error {
	event := events.TimesheetRecomputedEvent{
		EventType:  "timesheet.recomputed",
		EmployeeID: l.EmployeeID.String(),
		Dates:      detailDates(*l),
		Reason:     "leave_" + strings.ToLower(reason),
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "leave",
		AggregateID:   l.ID.String(),
		EventType:     event.EventType,
		Topic:         events.TimesheetRecomputedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func detailDates(l Leave) []string {
	dates := make([]string, 0, len(l.Details))
	for _, d := range l.Details {
		dates = append(dates, d.LeaveDate.Format("2006-01-02"))
	}
	return dates
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:           l.ID.String(),
		EmployeeID:   l.EmployeeID.String(),
		LeaveNo:      l.LeaveNo,
		LeaveType:    l.LeaveType,
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		TotalDays:    l.TotalDays,
		Dates:        detailDates(l),
		Reason:       l.Reason,
		Status:       l.Status,
		FiledBy:      l.FiledBy.String(),
		ReturnReason: l.ReturnReason,
	}
	if l.DecidedBy != nil {
		decidedBy := l.DecidedBy.String()
		resp.DecidedBy = &decidedBy
	}
	if l.DecidedAt != nil {
		decidedAt := l.DecidedAt.UTC().Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}
	return resp
}
