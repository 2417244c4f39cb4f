package events

import "time"

const PunchCapturedTopic = "dtr.punch.captured.v1"

// PunchCapturedEvent arrives from the biometric capture edge. CheckTime
// is the device-local timestamp; only its date and time-of-day are ever
// read downstream.
type PunchCapturedEvent struct {
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id"`
	CheckTime  string    `json:"check_time"`
	DeviceID   string    `json:"device_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
