package travel

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=travel_repo.go -destination=mock/travel_repo_mock.go -package=mock
type Repository interface {
	FindApprovedByRange(ctx context.Context, from, to time.Time) ([]Travel, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindApprovedByRange returns approved orders with at least one travel
// date inside the range. Participant filtering happens in the engine,
// which also matches by punch device user number.
func (r *repository) FindApprovedByRange(ctx context.Context, from, to time.Time) ([]Travel, error) {
	var travels []Travel
	err := r.db.WithContext(ctx).
		Preload("Dates").
		Preload("Participants").
		Where("status = ?", "Approved").
		Where("EXISTS (SELECT 1 FROM travel_dates td WHERE td.travel_id = travels.id AND td.travel_date BETWEEN ? AND ?)", from, to).
		Find(&travels).Error
	return travels, err
}
