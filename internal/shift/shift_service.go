package shift

import (
	"context"
	"errors"

	"go-dtr/internal/reconcile"
	shifterrors "go-dtr/internal/shift/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	GetForEmployee(ctx context.Context, employeeID string) (ShiftScheduleResponse, error)
	// ResolveForEmployee returns nil without error when the employee has
	// no assignment, so the engine can report the condition itself.
	ResolveForEmployee(ctx context.Context, employeeID string) (*reconcile.ShiftSchedule, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetForEmployee(ctx context.Context, employeeID string) (ShiftScheduleResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return ShiftScheduleResponse{}, shifterrors.ErrInvalidEmployeeID
	}

	assignment, err := s.repo.FindAssignmentByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftScheduleResponse{}, shifterrors.ErrNoScheduleAssigned
		}
		return ShiftScheduleResponse{}, err
	}

	sched := assignment.Schedule
	resp := ShiftScheduleResponse{
		ShiftName:  sched.ShiftName,
		AmIn:       slotResponse(sched.AmInNominal, sched.AmInWindowStart, sched.AmInWindowEnd),
		AmOut:      slotResponse(sched.AmOutNominal, sched.AmOutWindowStart, sched.AmOutWindowEnd),
		PmIn:       slotResponse(sched.PmInNominal, sched.PmInWindowStart, sched.PmInWindowEnd),
		PmOut:      slotResponse(sched.PmOutNominal, sched.PmOutWindowStart, sched.PmOutWindowEnd),
		Modes:      assignment.Modes,
		CreditAm:   sched.CreditAm,
		CreditPm:   sched.CreditPm,
		CreditAmPm: sched.CreditAmPm,
	}
	return resp, nil
}

func (s *service) ResolveForEmployee(ctx context.Context, employeeID string) (*reconcile.ShiftSchedule, error) {
	assignment, err := s.repo.FindAssignmentByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Debug("no shift assignment", zap.String("employee_id", employeeID))
			return nil, nil
		}
		return nil, err
	}

	sched := assignment.Schedule
	return &reconcile.ShiftSchedule{
		ShiftName: sched.ShiftName,
		AmIn:      slotDefinition(sched.AmInNominal, sched.AmInWindowStart, sched.AmInWindowEnd),
		AmOut:     slotDefinition(sched.AmOutNominal, sched.AmOutWindowStart, sched.AmOutWindowEnd),
		PmIn:      slotDefinition(sched.PmInNominal, sched.PmInWindowStart, sched.PmInWindowEnd),
		PmOut:     slotDefinition(sched.PmOutNominal, sched.PmOutWindowStart, sched.PmOutWindowEnd),
		Modes:     assignment.Modes,
		Credits: reconcile.CreditTable{
			AM:   sched.CreditAm,
			PM:   sched.CreditPm,
			AMPM: sched.CreditAmPm,
		},
	}, nil
}

func slotResponse(nominal, windowStart, windowEnd string) *SlotDefinitionResponse {
	if nominal == "" {
		return nil
	}
	return &SlotDefinitionResponse{Nominal: nominal, WindowStart: windowStart, WindowEnd: windowEnd}
}

func slotDefinition(nominal, windowStart, windowEnd string) *reconcile.SlotDefinition {
	if nominal == "" {
		return nil
	}
	return &reconcile.SlotDefinition{Nominal: nominal, WindowStart: windowStart, WindowEnd: windowEnd}
}
