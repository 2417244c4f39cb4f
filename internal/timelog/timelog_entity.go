package timelog

import (
	"time"

	"github.com/google/uuid"
)

// TimeLog is one raw biometric punch. DtrUserID is the punch device's
// user number, not an employee uuid; the employee read model owns the
// mapping.
type TimeLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DtrUserID string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_time_logs_user_check_time"`
	CheckTime time.Time `gorm:"not null;uniqueIndex:uq_time_logs_user_check_time"`
	DeviceID  string    `gorm:"type:varchar(40)"`

	CreatedAt time.Time
}
