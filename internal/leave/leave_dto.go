package leave

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=VACATION SICK SPECIAL FORCED"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}

type UpdateLeaveStatusRequest struct {
	Status       string  `json:"status" binding:"required,oneof=Approved Returned Cancelled"`
	ReturnReason *string `json:"return_reason"`
}

type LeaveResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	LeaveNo      string   `json:"leave_no"`
	LeaveType    string   `json:"leave_type"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	TotalDays    int      `json:"total_days"`
	Dates        []string `json:"dates"`
	Reason       string   `json:"reason"`
	Status       string   `json:"status"`
	FiledBy      string   `json:"filed_by"`
	DecidedBy    *string  `json:"decided_by,omitempty"`
	DecidedAt    *string  `json:"decided_at,omitempty"`
	ReturnReason *string  `json:"return_reason,omitempty"`
}
