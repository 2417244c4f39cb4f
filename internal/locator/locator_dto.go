package locator

type FileLocatorRequest struct {
	LocatorDate   string `json:"locator_date" binding:"required"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Destination   string `json:"destination" binding:"required"`
	Purpose       string `json:"purpose"`
}

type UpdateLocatorStatusRequest struct {
	Status       string  `json:"status" binding:"required,oneof=Approved Returned Cancelled"`
	ReturnReason *string `json:"return_reason"`
}

type LocatorResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	LocatorNo     string  `json:"locator_no"`
	LocatorDate   string  `json:"locator_date"`
	DepartureTime string  `json:"departure_time,omitempty"`
	ArrivalTime   string  `json:"arrival_time,omitempty"`
	Destination   string  `json:"destination"`
	Purpose       string  `json:"purpose,omitempty"`
	Status        string  `json:"status"`
	FiledBy       string  `json:"filed_by"`
	DecidedBy     *string `json:"decided_by,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
	ReturnReason  *string `json:"return_reason,omitempty"`
}
