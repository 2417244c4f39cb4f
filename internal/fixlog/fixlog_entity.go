package fixlog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FixLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_fix_logs_employee_date"`

	FixLogNo string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	LogDate  time.Time `gorm:"type:date;not null;index:idx_fix_logs_employee_date"`

	// HH:MM corrections per punch column, empty means no correction
	AmIn  string `gorm:"type:varchar(5)"`
	AmOut string `gorm:"type:varchar(5)"`
	PmIn  string `gorm:"type:varchar(5)"`
	PmOut string `gorm:"type:varchar(5)"`

	Reason string `gorm:"type:text;not null"`

	Status       string     `gorm:"type:varchar(20);not null;default:'For Approval';index"`
	FiledBy      uuid.UUID  `gorm:"type:uuid;not null"`
	DecidedBy    *uuid.UUID `gorm:"type:uuid"`
	ReturnReason *string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DecidedAt *time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_fix_logs_deleted_at"`
}
