package timelog

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timelog_repo.go -destination=mock/timelog_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, l *TimeLog) error
	FindByUserAndRange(ctx context.Context, dtrUserID string, from, to time.Time) ([]TimeLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *TimeLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// FindByUserAndRange returns punches from midnight of from up to but
// not including midnight after to.
func (r *repository) FindByUserAndRange(ctx context.Context, dtrUserID string, from, to time.Time) ([]TimeLog, error) {
	var logs []TimeLog
	err := r.db.WithContext(ctx).
		Where("dtr_user_id = ?", dtrUserID).
		Where("check_time >= ? AND check_time < ?", from, to.AddDate(0, 0, 1)).
		Order("check_time ASC").
		Find(&logs).Error
	return logs, err
}
