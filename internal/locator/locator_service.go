package locator

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-dtr/internal/events"
	locatorerrors "go-dtr/internal/locator/errors"
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

const counterType = "locator"

// CacheInvalidator bumps the employee's timesheet cache version after a
// decision changes what reconciliation would produce.
type CacheInvalidator interface {
	BumpVersion(ctx context.Context, employeeID string) error
}

//go:generate mockgen -source=locator_service.go -destination=mock/locator_service_mock.go -package=mock
type Service interface {
	File(ctx context.Context, employeeID, actorID string, req FileLocatorRequest) (LocatorResponse, error)
	GetAll(ctx context.Context, employeeID string) ([]LocatorResponse, error)
	GetByID(ctx context.Context, id string) (LocatorResponse, error)
	UpdateStatus(ctx context.Context, actorID, id string, req UpdateLocatorStatusRequest) (LocatorResponse, error)
	ListForRange(ctx context.Context, employeeID, from, to string) ([]reconcile.Locator, error)
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
	l := zap.L().Named("locator.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("locator.service")
	}
	return &service{db: db, repo: repo, counters: counters, outbox: outbox, cache: cache, logger: l}
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, locatorerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func (s *service) File(ctx context.Context, employeeID, actorID string, req FileLocatorRequest) (LocatorResponse, error) {
	s.logger.Debug("file locator requested",
		zap.String("employee_id", employeeID),
		zap.String("actor_id", actorID),
		zap.String("locator_date", req.LocatorDate),
	)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LocatorResponse{}, locatorerrors.ErrInvalidEmployeeID
	}
	filedByUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LocatorResponse{}, locatorerrors.ErrInvalidActorID
	}
	locatorDate, err := parseDate(req.LocatorDate)
	if err != nil {
		return LocatorResponse{}, err
	}
	if req.DepartureTime == "" && req.ArrivalTime == "" {
		return LocatorResponse{}, locatorerrors.ErrMissingTimeWindow
	}
	for _, t := range []string{req.DepartureTime, req.ArrivalTime} {
		if t == "" {
			continue
		}
		if _, ok := reconcile.TimeToMinutes(t); !ok {
			return LocatorResponse{}, locatorerrors.ErrInvalidTimeFormat
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("file locator begin tx failed", zap.Error(err))
		return LocatorResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	duplicate, err := qtx.HasFilingOnDate(ctx, employeeID, locatorDate)
	if err != nil {
		s.logger.Error("file locator duplicate check failed", zap.Error(err))
		return LocatorResponse{}, err
	}
	if duplicate {
		s.logger.Warn("file locator duplicate filing",
			zap.String("employee_id", employeeID),
			zap.String("locator_date", req.LocatorDate),
		)
		return LocatorResponse{}, locatorerrors.ErrDuplicateFiling
	}

	period := fmt.Sprintf("%d", locatorDate.Year())
	seq, err := s.counters.GetNextValue(ctx, counterType, period)
	if err != nil {
		s.logger.Error("file locator sequence failed", zap.Error(err))
		return LocatorResponse{}, err
	}

	l := &Locator{
		ID:            uuid.New(),
		EmployeeID:    employeeUUID,
		LocatorNo:     fmt.Sprintf("LOC-%s-%04d", period, seq),
		LocatorDate:   locatorDate,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Destination:   req.Destination,
		Purpose:       req.Purpose,
		Status:        StatusForApproval,
		FiledBy:       filedByUUID,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("file locator persist failed", zap.Error(err))
		return LocatorResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("file locator commit failed", zap.Error(err))
		return LocatorResponse{}, err
	}
	s.logger.Info("file locator success",
		zap.String("locator_id", l.ID.String()),
		zap.String("locator_no", l.LocatorNo),
		zap.String("employee_id", employeeID),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, employeeID string) ([]LocatorResponse, error) {
	locators, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	resp := make([]LocatorResponse, 0, len(locators))
	for _, l := range locators {
		resp = append(resp, mapToResponse(l))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LocatorResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LocatorResponse{}, locatorerrors.ErrLocatorNotFound
		}
		return LocatorResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) UpdateStatus(ctx context.Context, actorID, id string, req UpdateLocatorStatusRequest) (LocatorResponse, error) {
	s.logger.Debug("update locator status requested",
		zap.String("locator_id", id),
		zap.String("actor_id", actorID),
		zap.String("target_status", req.Status),
	)

	decidedByUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LocatorResponse{}, locatorerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update locator status begin tx failed", zap.Error(err))
		return LocatorResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LocatorResponse{}, locatorerrors.ErrLocatorNotFound
		}
		return LocatorResponse{}, err
	}

	previousStatus := l.Status
	if !isAllowedStatusTransition(previousStatus, req.Status) {
		return LocatorResponse{}, locatorerrors.ErrInvalidStatusTransition
	}

	l.Status = req.Status
	now := time.Now().UTC()
	l.DecidedBy = &decidedByUUID
	l.DecidedAt = &now
	if req.Status == StatusReturned {
		if req.ReturnReason == nil || *req.ReturnReason == "" {
			return LocatorResponse{}, locatorerrors.ErrReturnReasonRequired
		}
		l.ReturnReason = req.ReturnReason
	} else {
		l.ReturnReason = nil
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("update locator status persist failed",
			zap.String("locator_id", id),
			zap.Error(err),
		)
		return LocatorResponse{}, err
	}

	// a decision that changes reconciliation output goes through the
	// outbox inside the same tx
	if recomputes(previousStatus, req.Status) {
		if err := s.enqueueRecompute(ctx, tx, l, req.Status); err != nil {
			s.logger.Error("update locator status outbox failed", zap.Error(err))
			return LocatorResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update locator status commit failed",
			zap.String("locator_id", id),
			zap.Error(err),
		)
		return LocatorResponse{}, err
	}

	if recomputes(previousStatus, req.Status) && s.cache != nil {
		if err := s.cache.BumpVersion(ctx, l.EmployeeID.String()); err != nil {
			// stale cache is tolerable, the version bump is retried on
			// the next decision
			s.logger.Warn("update locator status cache bump failed",
				zap.String("employee_id", l.EmployeeID.String()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("update locator status success",
		zap.String("locator_id", id),
		zap.String("status", l.Status),
	)

	return mapToResponse(*l), nil
}

// ListForRange feeds reconciliation. Statuses normalize to the closed
// enum here, at the ingestion boundary.
func (s *service) ListForRange(ctx context.Context, employeeID, from, to string) ([]reconcile.Locator, error) {
	fromDate, err := parseDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := parseDate(to)
	if err != nil {
		return nil, err
	}

	locators, err := s.repo.FindByEmployeeAndRange(ctx, employeeID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	feed := make([]reconcile.Locator, 0, len(locators))
	for _, l := range locators {
		feed = append(feed, reconcile.Locator{
			Date:          l.LocatorDate.Format("2006-01-02"),
			DepartureTime: l.DepartureTime,
			ArrivalTime:   l.ArrivalTime,
			RefNo:         l.LocatorNo,
			Status:        reconcile.NormalizeStatus(l.Status),
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

func (s *service) enqueueRecompute(ctx context.Context, tx *sql.Tx, l *Locator, reason string) error {
	event := events.TimesheetRecomputedEvent{
		EventType:  "timesheet.recomputed",
		EmployeeID: l.EmployeeID.String(),
		Dates:      []string{l.LocatorDate.Format("2006-01-02")},
		Reason:     "locator_" + strings.ToLower(reason),
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "locator",
		AggregateID:   l.ID.String(),
		EventType:     event.EventType,
		Topic:         events.TimesheetRecomputedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(l Locator) LocatorResponse {
	resp := LocatorResponse{
		ID:            l.ID.String(),
		EmployeeID:    l.EmployeeID.String(),
		LocatorNo:     l.LocatorNo,
		LocatorDate:   l.LocatorDate.Format("2006-01-02"),
		DepartureTime: l.DepartureTime,
		ArrivalTime:   l.ArrivalTime,
		Destination:   l.Destination,
		Purpose:       l.Purpose,
		Status:        l.Status,
		FiledBy:       l.FiledBy.String(),
		ReturnReason:  l.ReturnReason,
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
