package shift

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	FindAssignmentByEmployee(ctx context.Context, employeeID string) (*ShiftAssignment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAssignmentByEmployee(ctx context.Context, employeeID string) (*ShiftAssignment, error) {
	var assignment ShiftAssignment
	err := r.db.WithContext(ctx).
		Preload("Schedule").
		First(&assignment, "employee_id = ?", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}
