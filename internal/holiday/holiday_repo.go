package holiday

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Holiday, error)
	FindForRange(ctx context.Context, from, to time.Time) ([]Holiday, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Holiday, error) {
	var holidays []Holiday
	err := r.db.WithContext(ctx).
		Order("holiday_date ASC, month_day ASC").
		Find(&holidays).Error
	return holidays, err
}

// FindForRange returns one-off holidays inside the range plus every
// recurring holiday; recurring match happens per day in the engine.
func (r *repository) FindForRange(ctx context.Context, from, to time.Time) ([]Holiday, error) {
	var holidays []Holiday
	err := r.db.WithContext(ctx).
		Where("recurring = ? OR (holiday_date BETWEEN ? AND ?)", true, from, to).
		Find(&holidays).Error
	return holidays, err
}
