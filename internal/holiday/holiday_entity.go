package holiday

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Holiday struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	Name     string `gorm:"type:varchar(120);not null"`
	Category string `gorm:"type:varchar(40)"`

	// one-off holidays carry a full date; recurring ones repeat every
	// year on MonthDay (MM-DD)
	HolidayDate *time.Time `gorm:"type:date;index"`
	MonthDay    string     `gorm:"type:varchar(5);index"`
	Recurring   bool       `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_holidays_deleted_at"`
}
