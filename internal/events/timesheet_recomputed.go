package events

import "time"

const TimesheetRecomputedTopic = "dtr.timesheet.recomputed.v1"

// TimesheetRecomputedEvent notifies downstream payroll and reporting
// consumers that an employee's reconciled days changed, typically after
// a locator or fix-log decision.
type TimesheetRecomputedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	Dates      []string  `json:"dates"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}
