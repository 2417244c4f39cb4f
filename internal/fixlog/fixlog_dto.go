package fixlog

type CreateFixLogRequest struct {
	LogDate string `json:"log_date" binding:"required"`
	AmIn    string `json:"am_in"`
	AmOut   string `json:"am_out"`
	PmIn    string `json:"pm_in"`
	PmOut   string `json:"pm_out"`
	Reason  string `json:"reason" binding:"required"`
}

type UpdateFixLogStatusRequest struct {
	Status       string  `json:"status" binding:"required,oneof=Approved Returned Cancelled"`
	ReturnReason *string `json:"return_reason"`
}

type FixLogResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	FixLogNo     string  `json:"fix_log_no"`
	LogDate      string  `json:"log_date"`
	AmIn         string  `json:"am_in,omitempty"`
	AmOut        string  `json:"am_out,omitempty"`
	PmIn         string  `json:"pm_in,omitempty"`
	PmOut        string  `json:"pm_out,omitempty"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	FiledBy      string  `json:"filed_by"`
	DecidedBy    *string `json:"decided_by,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
	ReturnReason *string `json:"return_reason,omitempty"`
}
