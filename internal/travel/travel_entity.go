package travel

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Travel is a travel order. Orders are filed and decided in the HR
// system of record; this service only reads them for reconciliation.
type Travel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TravelNo string    `gorm:"type:varchar(20);not null;uniqueIndex"`

	Destination string `gorm:"type:varchar(120)"`
	Purpose     string `gorm:"type:text"`
	Status      string `gorm:"type:varchar(20);not null;default:'For Approval';index"`

	Dates        []TravelDate        `gorm:"foreignKey:TravelID"`
	Participants []TravelParticipant `gorm:"foreignKey:TravelID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_travels_deleted_at"`
}

type TravelDate struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TravelID   uuid.UUID `gorm:"type:uuid;not null;index"`
	TravelDate time.Time `gorm:"type:date;not null;index"`
}

// TravelParticipant names one traveller, by employee id or by the punch
// device user number recorded at filing time. Either may be empty.
type TravelParticipant struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TravelID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;index"`
	DtrUserID  string     `gorm:"type:varchar(20)"`
}
