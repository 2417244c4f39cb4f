package fixlog

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// FixLogWithApprover carries the decider's display name alongside the
// filing, for timesheet rendering.
type FixLogWithApprover struct {
	FixLog
	ApproverName string
}

//go:generate mockgen -source=fixlog_repo.go -destination=mock/fixlog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, f *FixLog) error
	FindAllByEmployee(ctx context.Context, employeeID string) ([]FixLog, error)
	FindByID(ctx context.Context, id string) (*FixLog, error)
	Update(ctx context.Context, f *FixLog) error
	HasFilingOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
	FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]FixLogWithApprover, error)
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

func (r *repository) Create(ctx context.Context, f *FixLog) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]FixLog, error) {
	var fixLogs []FixLog
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("log_date DESC").
		Find(&fixLogs).Error
	return fixLogs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*FixLog, error) {
	var f FixLog
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	return &f, err
}

func (r *repository) Update(ctx context.Context, f *FixLog) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *repository) HasFilingOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&FixLog{}).
		Where("employee_id = ?", employeeID).
		Where("log_date = ?", date).
		Where("status <> ?", StatusCancelled).
		Count(&count).Error
	return count > 0, err
}

// FindByEmployeeAndRange returns every filing in the range regardless
// of status, joined with the decider's name. Pending filings surface on
// the timesheet as display-only corrections.
func (r *repository) FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]FixLogWithApprover, error) {
	var rows []FixLogWithApprover
	err := r.db.WithContext(ctx).
		Model(&FixLog{}).
		Select("fix_logs.*, COALESCE(e.full_name, '') AS approver_name").
		Joins("LEFT JOIN employees e ON e.id = fix_logs.decided_by").
		Where("fix_logs.employee_id = ?", employeeID).
		Where("fix_logs.log_date BETWEEN ? AND ?", from, to).
		Order("fix_logs.log_date ASC").
		Find(&rows).Error
	return rows, err
}
