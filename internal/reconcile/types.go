package reconcile

// Status is the closed lifecycle enum shared by every exception record.
// Free-form strings from upstream stores are funneled through
// NormalizeStatus once, at the ingestion boundary.
type Status string

const (
	StatusForApproval Status = "For Approval"
	StatusApproved    Status = "Approved"
	StatusReturned    Status = "Returned"
	StatusCancelled   Status = "Cancelled"
)

// Slot identifies one of the four daily punch columns.
type Slot int

const (
	SlotAmIn Slot = iota
	SlotAmOut
	SlotPmIn
	SlotPmOut
)

var allSlots = []Slot{SlotAmIn, SlotAmOut, SlotPmIn, SlotPmOut}

func (s Slot) String() string {
	switch s {
	case SlotAmIn:
		return "amIn"
	case SlotAmOut:
		return "amOut"
	case SlotPmIn:
		return "pmIn"
	case SlotPmOut:
		return "pmOut"
	}
	return "unknown"
}

// SlotDefinition configures one active punch column. Times are "HH:MM".
// WindowStart/WindowEnd are optional; when empty the resolver falls
// back to the fixed per-slot acceptance window.
type SlotDefinition struct {
	Nominal     string
	WindowStart string
	WindowEnd   string
}

// CreditTable holds the day-credit values of the assigned shift.
type CreditTable struct {
	AM   float64
	PM   float64
	AMPM float64
}

// ShiftSchedule is the per-employee assignment. A nil slot definition
// means the column is inactive and never participates in matching,
// lateness, or credit.
type ShiftSchedule struct {
	ShiftName string
	AmIn      *SlotDefinition
	AmOut     *SlotDefinition
	PmIn      *SlotDefinition
	PmOut     *SlotDefinition
	// Modes lists the assigned shift mode tags. An explicit "AMPM"
	// entry forces AMPM mode even when other slots carry definitions.
	Modes   []string
	Credits CreditTable
}

func (s *ShiftSchedule) slot(sl Slot) *SlotDefinition {
	switch sl {
	case SlotAmIn:
		return s.AmIn
	case SlotAmOut:
		return s.AmOut
	case SlotPmIn:
		return s.PmIn
	case SlotPmOut:
		return s.PmOut
	}
	return nil
}

// RawPunch is one biometric check-time event. Only the YYYY-MM-DD and
// HH:MM portions of the timestamp are ever read.
type RawPunch struct {
	Timestamp string
}

// Locator defines one open off-site interval for a date. Departure and
// arrival may arrive in either order, or one of them may be missing.
type Locator struct {
	Date          string
	DepartureTime string
	ArrivalTime   string
	RefNo         string
	Status        Status
}

// Leave marks zero-credit days.
type Leave struct {
	Dates  []string
	RefNo  string
	Status Status
}

// Travel marks travel-credit days. The employee must appear in the
// participant list, matched by internal employee id or DTR user id.
type Travel struct {
	Dates                  []string
	RefNo                  string
	Status                 Status
	ParticipantEmployeeIDs []string
	ParticipantUserIDs     []string
}

// Holiday is either a one-off dated occurrence or an annually
// recurring month/day.
type Holiday struct {
	Date      string // YYYY-MM-DD, one-off
	MonthDay  string // MM-DD, recurring
	Recurring bool
	Name      string
	Category  string
}

// CdoUsage is a compensatory-day-off usage entry, independent of Leave.
type CdoUsage struct {
	Date   string
	RefNo  string
	Status Status
}

// FixLog is a manually approved punch correction. Only Approved
// overrides are applied; a ForApproval record is attached to the day
// for display but never changes a slot.
type FixLog struct {
	Date         string
	Status       Status
	AmIn         string
	AmOut        string
	PmIn         string
	PmOut        string
	ApproverName string
}

func (f *FixLog) override(sl Slot) string {
	switch sl {
	case SlotAmIn:
		return f.AmIn
	case SlotAmOut:
		return f.AmOut
	case SlotPmIn:
		return f.PmIn
	case SlotPmOut:
		return f.PmOut
	}
	return ""
}

// Provenance records where a filled slot value came from.
type Provenance string

const (
	ProvenanceRaw     Provenance = "raw"
	ProvenanceLocator Provenance = "locator"
	ProvenanceFixLog  Provenance = "fixlog"
)

// SlotValue is one resolved punch column: an "HH:MM" time plus its
// provenance, or both zero when the slot stayed empty.
type SlotValue struct {
	Time       string
	Provenance Provenance
}

func (v SlotValue) Filled() bool { return v.Time != "" }

// SlotSet holds the four resolved columns of a day.
type SlotSet struct {
	AmIn  SlotValue
	AmOut SlotValue
	PmIn  SlotValue
	PmOut SlotValue
}

func (s *SlotSet) get(sl Slot) SlotValue {
	switch sl {
	case SlotAmIn:
		return s.AmIn
	case SlotAmOut:
		return s.AmOut
	case SlotPmIn:
		return s.PmIn
	case SlotPmOut:
		return s.PmOut
	}
	return SlotValue{}
}

func (s *SlotSet) set(sl Slot, v SlotValue) {
	switch sl {
	case SlotAmIn:
		s.AmIn = v
	case SlotAmOut:
		s.AmOut = v
	case SlotPmIn:
		s.PmIn = v
	case SlotPmOut:
		s.PmOut = v
	}
}

// FilledCount counts slots holding any value regardless of provenance.
func (s *SlotSet) FilledCount() int {
	n := 0
	for _, sl := range allSlots {
		if s.get(sl).Filled() {
			n++
		}
	}
	return n
}

func (s *SlotSet) rawCount() int {
	n := 0
	for _, sl := range allSlots {
		if v := s.get(sl); v.Filled() && v.Provenance == ProvenanceRaw {
			n++
		}
	}
	return n
}

// RemarkType tags one remark entry for presentation.
type RemarkType string

const (
	RemarkWeekend RemarkType = "weekend"
	RemarkHoliday RemarkType = "holiday"
	RemarkLocator RemarkType = "locator"
	RemarkLeave   RemarkType = "leave"
	RemarkTravel  RemarkType = "travel"
	RemarkCdo     RemarkType = "cdo"
	RemarkAbsent  RemarkType = "absent"
	RemarkAction  RemarkType = "action"
)

// Remark is one typed remarks-column entry. Ref carries the originating
// record reference (leave no, travel no, cdo no) so callers can render
// clickable detail without knowing about presentation.
type Remark struct {
	Type RemarkType
	Text string
	Ref  string
}

// Flags summarizes the day for filtering and display.
type Flags struct {
	IsWeekend  bool
	IsHoliday  bool
	HasLeave   bool
	HasTravel  bool
	HasLocator bool
	HasCdo     bool
	IsAbsent   bool
}

// DayResult is the authoritative reconciliation output for one date.
type DayResult struct {
	Date        string
	Slots       SlotSet
	LateMinutes int
	DayCredit   float64
	Remarks     []Remark
	Flags       Flags
	// Display holds the per-column render labels; see ResolveDisplays.
	Display SlotDisplaySet
	// PendingFixLog is a ForApproval correction attached for display
	// only. It never alters slot values.
	PendingFixLog *FixLog
}

// Inputs is everything one reconciliation run reads. Today pins the
// "is this date past" check so runs are deterministic.
type Inputs struct {
	EmployeeID string
	UserID     string

	From  string // YYYY-MM-DD inclusive
	To    string // YYYY-MM-DD inclusive
	Today string // YYYY-MM-DD

	Schedule *ShiftSchedule
	Punches  []RawPunch

	Locators  []Locator
	Leaves    []Leave
	Travels   []Travel
	Holidays  []Holiday
	CdoUsages []CdoUsage
	FixLogs   []FixLog
}
