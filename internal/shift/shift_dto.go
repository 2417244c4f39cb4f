package shift

type SlotDefinitionResponse struct {
	Nominal     string `json:"nominal"`
	WindowStart string `json:"window_start,omitempty"`
	WindowEnd   string `json:"window_end,omitempty"`
}

type ShiftScheduleResponse struct {
	ShiftName  string                  `json:"shift_name"`
	AmIn       *SlotDefinitionResponse `json:"am_in,omitempty"`
	AmOut      *SlotDefinitionResponse `json:"am_out,omitempty"`
	PmIn       *SlotDefinitionResponse `json:"pm_in,omitempty"`
	PmOut      *SlotDefinitionResponse `json:"pm_out,omitempty"`
	Modes      []string                `json:"modes"`
	CreditAm   float64                 `json:"credit_am"`
	CreditPm   float64                 `json:"credit_pm"`
	CreditAmPm float64                 `json:"credit_am_pm"`
}
