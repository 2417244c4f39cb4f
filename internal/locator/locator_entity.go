package locator

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Locator struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_locators_employee_date"`

	LocatorNo   string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	LocatorDate time.Time `gorm:"type:date;not null;index:idx_locators_employee_date"`

	// HH:MM, stored as text because only the minute-of-day matters
	DepartureTime string `gorm:"type:varchar(5)"`
	ArrivalTime   string `gorm:"type:varchar(5)"`

	Destination string `gorm:"type:varchar(120)"`
	Purpose     string `gorm:"type:text"`

	Status       string     `gorm:"type:varchar(20);not null;default:'For Approval';index"`
	FiledBy      uuid.UUID  `gorm:"type:uuid;not null"`
	DecidedBy    *uuid.UUID `gorm:"type:uuid"`
	ReturnReason *string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DecidedAt *time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_locators_deleted_at"`
}
