package shift

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftSchedule defines the four punch columns of a working day. A slot
// with an empty nominal time is not part of the shift (half-day and
// AM/PM-only shifts leave columns empty).
type ShiftSchedule struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShiftName string    `gorm:"type:varchar(80);not null"`

	// HH:MM, text columns, empty means the slot is inactive
	AmInNominal      string `gorm:"type:varchar(5)"`
	AmInWindowStart  string `gorm:"type:varchar(5)"`
	AmInWindowEnd    string `gorm:"type:varchar(5)"`
	AmOutNominal     string `gorm:"type:varchar(5)"`
	AmOutWindowStart string `gorm:"type:varchar(5)"`
	AmOutWindowEnd   string `gorm:"type:varchar(5)"`
	PmInNominal      string `gorm:"type:varchar(5)"`
	PmInWindowStart  string `gorm:"type:varchar(5)"`
	PmInWindowEnd    string `gorm:"type:varchar(5)"`
	PmOutNominal     string `gorm:"type:varchar(5)"`
	PmOutWindowStart string `gorm:"type:varchar(5)"`
	PmOutWindowEnd   string `gorm:"type:varchar(5)"`

	CreditAm   float64 `gorm:"type:numeric(4,2);not null;default:0.5"`
	CreditPm   float64 `gorm:"type:numeric(4,2);not null;default:0.5"`
	CreditAmPm float64 `gorm:"type:numeric(4,2);not null;default:1.0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_shift_schedules_deleted_at"`
}

// ShiftAssignment binds an employee to a schedule, with the shift mode
// tags that drive credit interpretation.
type ShiftAssignment struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_shift_assignment_employee,where:deleted_at IS NULL"`
	ShiftScheduleID uuid.UUID `gorm:"type:uuid;not null"`

	Schedule ShiftSchedule `gorm:"foreignKey:ShiftScheduleID"`

	Modes []string `gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_shift_assignments_deleted_at"`
}
