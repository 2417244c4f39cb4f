package reconcile

import "strings"

// MinuteWindow is a closed minute-of-day interval.
type MinuteWindow struct {
	Start int
	End   int
}

// Contains reports whether a minute falls inside the window.
func (w MinuteWindow) Contains(min int) bool {
	return min >= w.Start && min <= w.End
}

// HolidayMatch is one holiday occurrence applying to a date.
type HolidayMatch struct {
	Name     string
	Category string
}

// DayExceptions collects every exception record applying to one date.
// Approved-only where the record affects output; locators and fix logs
// additionally track non-approved filings because they suppress the
// "File a locator" prompt and feed display.
type DayExceptions struct {
	LocatorWindows []MinuteWindow // approved locators only
	Locators       []Locator      // any status, for remarks and suppression

	HasLeave  bool
	LeaveRefs []string

	HasTravel  bool
	TravelRefs []string

	Holidays       []HolidayMatch
	HolidayDisplay string

	CdoEntries []CdoUsage

	ApprovedFixLog *FixLog
	PendingFixLog  *FixLog
	HasFixLog      bool // any status
}

func (e *DayExceptions) HasHoliday() bool { return len(e.Holidays) > 0 }

func (e *DayExceptions) HasApprovedLocator() bool { return len(e.LocatorWindows) > 0 }

func (e *DayExceptions) hasLocatorFiled() bool { return len(e.Locators) > 0 }

// HasCdo reports an approved CDO usage on the date.
func (e *DayExceptions) HasCdo() bool { return len(e.CdoEntries) > 0 }

// AggregateExceptions gathers the records applying to one date. All
// date matching is string-prefix exact; nothing is reparsed through a
// timezone-aware constructor.
func AggregateExceptions(in *Inputs, date string) DayExceptions {
	var exc DayExceptions

	for _, loc := range in.Locators {
		if ExtractDate(loc.Date) != date {
			continue
		}
		exc.Locators = append(exc.Locators, loc)
		if loc.Status != StatusApproved {
			continue
		}
		if w, ok := locatorWindow(loc); ok {
			exc.LocatorWindows = append(exc.LocatorWindows, w)
		}
	}

	for _, lv := range in.Leaves {
		if lv.Status != StatusApproved || !containsDate(lv.Dates, date) {
			continue
		}
		exc.HasLeave = true
		if lv.RefNo != "" {
			exc.LeaveRefs = append(exc.LeaveRefs, lv.RefNo)
		}
	}

	for _, tr := range in.Travels {
		if tr.Status != StatusApproved || !containsDate(tr.Dates, date) {
			continue
		}
		if !travelParticipant(tr, in.EmployeeID, in.UserID) {
			continue
		}
		exc.HasTravel = true
		if tr.RefNo != "" {
			exc.TravelRefs = append(exc.TravelRefs, tr.RefNo)
		}
	}

	var holidayNames []string
	for _, h := range in.Holidays {
		if !holidayApplies(h, date) {
			continue
		}
		exc.Holidays = append(exc.Holidays, HolidayMatch{Name: h.Name, Category: h.Category})
		holidayNames = append(holidayNames, h.Name)
	}
	exc.HolidayDisplay = holidayDisplay(holidayNames)

	for _, cdo := range in.CdoUsages {
		if cdo.Status != StatusApproved || ExtractDate(cdo.Date) != date {
			continue
		}
		exc.CdoEntries = append(exc.CdoEntries, cdo)
	}

	for i := range in.FixLogs {
		fl := in.FixLogs[i]
		if ExtractDate(fl.Date) != date {
			continue
		}
		exc.HasFixLog = true
		switch fl.Status {
		case StatusApproved:
			if exc.ApprovedFixLog == nil {
				exc.ApprovedFixLog = &fl
			}
		case StatusForApproval:
			if exc.PendingFixLog == nil {
				exc.PendingFixLog = &fl
			}
		}
	}

	return exc
}

// locatorWindow converts departure/arrival into a minute interval.
// Min/max of the endpoints tolerates either ordering; a single parsed
// endpoint yields a zero-width window at that minute.
func locatorWindow(loc Locator) (MinuteWindow, bool) {
	dep, depOK := TimeToMinutes(ExtractTime(loc.DepartureTime))
	arr, arrOK := TimeToMinutes(ExtractTime(loc.ArrivalTime))

	switch {
	case depOK && arrOK:
		return MinuteWindow{Start: minInt(dep, arr), End: maxInt(dep, arr)}, true
	case depOK:
		return MinuteWindow{Start: dep, End: dep}, true
	case arrOK:
		return MinuteWindow{Start: arr, End: arr}, true
	default:
		return MinuteWindow{}, false
	}
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if ExtractDate(d) == date {
			return true
		}
	}
	return false
}

// travelParticipant matches by internal employee id or DTR user id.
// Either match is sufficient.
func travelParticipant(tr Travel, employeeID, userID string) bool {
	for _, id := range tr.ParticipantEmployeeIDs {
		if id != "" && id == employeeID {
			return true
		}
	}
	for _, id := range tr.ParticipantUserIDs {
		if id != "" && id == userID {
			return true
		}
	}
	return false
}

func holidayApplies(h Holiday, date string) bool {
	if h.Recurring {
		md := h.MonthDay
		if md == "" && h.Date != "" {
			md = MonthDay(h.Date)
		}
		return md != "" && md == MonthDay(date)
	}
	return ExtractDate(h.Date) == date
}

// holidayDisplay joins the day's holiday names, collapsing to the
// distinguished "Work Suspension" label when any name carries it.
func holidayDisplay(names []string) string {
	if len(names) == 0 {
		return ""
	}
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), "work suspension") {
			return "Work Suspension"
		}
	}
	return strings.Join(names, ", ")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
