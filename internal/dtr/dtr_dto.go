package dtr

// SlotView is one rendered punch column. Provenance tells the UI
// whether the value came from the device, a locator, or a fix log.
type SlotView struct {
	Time       string `json:"time"`
	Provenance string `json:"provenance"`
}

type RemarkView struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Ref  string `json:"ref,omitempty"`
}

// SlotDisplayView is the render-ready label per column: the time for a
// filled slot, an annotation ("Weekend", "Leave", the holiday name, a
// dash) for an empty one. An inactive column is always a dash, which
// is how the UI tells it apart from an active slot with no punch.
type SlotDisplayView struct {
	AmIn  string `json:"am_in"`
	AmOut string `json:"am_out"`
	PmIn  string `json:"pm_in"`
	PmOut string `json:"pm_out"`
}

type FlagsView struct {
	IsWeekend  bool `json:"is_weekend"`
	IsHoliday  bool `json:"is_holiday"`
	HasLeave   bool `json:"has_leave"`
	HasTravel  bool `json:"has_travel"`
	HasLocator bool `json:"has_locator"`
	HasCdo     bool `json:"has_cdo"`
	IsAbsent   bool `json:"is_absent"`
}

// PendingFixLogView is a correction awaiting decision, shown alongside
// the authoritative values without replacing them.
type PendingFixLogView struct {
	AmIn         string `json:"am_in,omitempty"`
	AmOut        string `json:"am_out,omitempty"`
	PmIn         string `json:"pm_in,omitempty"`
	PmOut        string `json:"pm_out,omitempty"`
	ApproverName string `json:"approver_name,omitempty"`
}

type DayRow struct {
	Date          string             `json:"date"`
	AmIn          *SlotView          `json:"am_in,omitempty"`
	AmOut         *SlotView          `json:"am_out,omitempty"`
	PmIn          *SlotView          `json:"pm_in,omitempty"`
	PmOut         *SlotView          `json:"pm_out,omitempty"`
	Display       SlotDisplayView    `json:"display"`
	LateMinutes   int                `json:"late_minutes"`
	DayCredit     float64            `json:"day_credit"`
	Remarks       []RemarkView       `json:"remarks"`
	Flags         FlagsView          `json:"flags"`
	PendingFixLog *PendingFixLogView `json:"pending_fix_log,omitempty"`
}

type TimesheetTotals struct {
	LateMinutes int     `json:"late_minutes"`
	DayCredits  float64 `json:"day_credits"`
	DaysAbsent  int     `json:"days_absent"`
}

type TimesheetResponse struct {
	EmployeeID string          `json:"employee_id"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Days       []DayRow        `json:"days"`
	Totals     TimesheetTotals `json:"totals"`
}
