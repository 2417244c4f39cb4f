package employee

import (
	"context"
	"errors"

	employeeerrors "go-dtr/internal/employee/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EmployeeResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	DtrUserID string `json:"dtr_user_id,omitempty"`
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	// DtrUserID implements the timelog UserResolver seam. An employee
	// never enrolled on a punch device resolves to "".
	DtrUserID(ctx context.Context, employeeID string) (string, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	return EmployeeResponse{
		ID:        e.ID.String(),
		FullName:  e.FullName,
		DtrUserID: e.DtrUserID,
	}, nil
}

func (s *service) DtrUserID(ctx context.Context, employeeID string) (string, error) {
	e, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", employeeerrors.ErrEmployeeNotFound
		}
		return "", err
	}
	return e.DtrUserID, nil
}
