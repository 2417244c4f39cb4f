package cdo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CdoUsage records one compensatory day off spent on a date. Earning
// and granting CDO credits happens in the HR system of record.
type CdoUsage struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_cdo_usages_employee_date"`

	CdoNo   string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	UseDate time.Time `gorm:"type:date;not null;index:idx_cdo_usages_employee_date"`
	Status  string    `gorm:"type:varchar(20);not null;default:'For Approval';index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_cdo_usages_deleted_at"`
}
