package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Leave struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`

	LeaveNo   string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	LeaveType string    `gorm:"type:varchar(30);not null;default:'VACATION'"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	TotalDays int       `gorm:"type:int;not null;default:1"`
	Reason    string    `gorm:"type:text"`

	// one row per covered calendar day, the engine consumes dates, not
	// the period endpoints
	Details []LeaveDetail `gorm:"foreignKey:LeaveID"`

	Status       string     `gorm:"type:varchar(20);not null;default:'For Approval';index"`
	FiledBy      uuid.UUID  `gorm:"type:uuid;not null"`
	DecidedBy    *uuid.UUID `gorm:"type:uuid"`
	ReturnReason *string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DecidedAt *time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_leaves_deleted_at"`
}

type LeaveDetail struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveID   uuid.UUID `gorm:"type:uuid;not null;index"`
	LeaveDate time.Time `gorm:"type:date;not null;index"`
}
