package cdo

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=cdo_repo.go -destination=mock/cdo_repo_mock.go -package=mock
type Repository interface {
	FindApprovedByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]CdoUsage, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindApprovedByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]CdoUsage, error) {
	var usages []CdoUsage
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("status = ?", "Approved").
		Where("use_date BETWEEN ? AND ?", from, to).
		Order("use_date ASC").
		Find(&usages).Error
	return usages, err
}
