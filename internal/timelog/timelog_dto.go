package timelog

type AppendPunchRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	CheckTime string `json:"check_time" binding:"required"`
	DeviceID  string `json:"device_id"`
}

type RawPunchResponse struct {
	Time     string `json:"time"`
	DeviceID string `json:"device_id,omitempty"`
}

// RawDayResponse splits a day's punches at noon, the way the punch
// review screen renders them.
type RawDayResponse struct {
	Date string             `json:"date"`
	Am   []RawPunchResponse `json:"am"`
	Pm   []RawPunchResponse `json:"pm"`
}
