package locator

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=locator_repo.go -destination=mock/locator_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Locator) error
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Locator, error)
	FindByID(ctx context.Context, id string) (*Locator, error)
	Update(ctx context.Context, l *Locator) error
	HasFilingOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
	FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Locator, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, l *Locator) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Locator, error) {
	var locators []Locator
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("locator_date DESC").
		Find(&locators).Error
	return locators, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Locator, error) {
	var l Locator
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) Update(ctx context.Context, l *Locator) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) HasFilingOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Locator{}).
		Where("employee_id = ?", employeeID).
		Where("locator_date = ?", date).
		Where("status <> ?", StatusCancelled).
		Count(&count).Error
	return count > 0, err
}

// FindByEmployeeAndRange returns every filing in the range regardless
// of status. The reconciliation feed needs non-approved filings too,
// for remarks and prompt suppression.
func (r *repository) FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Locator, error) {
	var locators []Locator
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("locator_date BETWEEN ? AND ?", from, to).
		Order("locator_date ASC").
		Find(&locators).Error
	return locators, err
}
