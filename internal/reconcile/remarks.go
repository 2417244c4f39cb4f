package reconcile

import "fmt"

type remarkBuilder struct {
	entries []Remark
}

// add appends one entry, skipping exact (type, text) duplicates.
func (b *remarkBuilder) add(t RemarkType, text, ref string) {
	if text == "" {
		return
	}
	for _, e := range b.entries {
		if e.Type == t && e.Text == text {
			return
		}
	}
	b.entries = append(b.entries, Remark{Type: t, Text: text, Ref: ref})
}

// ComposeRemarks assembles the day's remark entries in source order:
// weekend, holiday, locator, leave, travel, CDO, absent, then the
// "File a locator" action. The weekend label is suppressed when a
// holiday label is shown.
func ComposeRemarks(date, today string, slots *SlotSet, resolved ResolvedSchedule, exc *DayExceptions, isAbsent bool) []Remark {
	var b remarkBuilder

	if exc.HolidayDisplay == "" && IsWeekend(date) {
		b.add(RemarkWeekend, "Weekend", "")
	}
	if exc.HolidayDisplay != "" {
		b.add(RemarkHoliday, exc.HolidayDisplay, "")
	}
	for _, loc := range exc.Locators {
		b.add(RemarkLocator, fmt.Sprintf("Locator(%s)", loc.Status), loc.RefNo)
	}
	for _, ref := range exc.LeaveRefs {
		b.add(RemarkLeave, fmt.Sprintf("Leave(%s)", ref), ref)
	}
	for _, ref := range exc.TravelRefs {
		b.add(RemarkTravel, fmt.Sprintf("Travel: (%s)", ref), ref)
	}
	for _, cdo := range exc.CdoEntries {
		ref := cdo.RefNo
		if ref == "" {
			ref = "CDO"
		}
		b.add(RemarkCdo, fmt.Sprintf("CDO(%s)", ref), cdo.RefNo)
	}
	if isAbsent {
		b.add(RemarkAbsent, "Absent", "")
	}
	if shouldPromptLocator(date, today, slots, resolved, exc) {
		b.add(RemarkAction, "File a locator", "")
	}

	return b.entries
}

// shouldPromptLocator gates the actionable "File a locator" entry: the
// day must be a past working day with some but not all expected punches
// and no exception filing of any kind already covering it. An existing
// fix log, whatever its status, supersedes prompting the employee.
func shouldPromptLocator(date, today string, slots *SlotSet, resolved ResolvedSchedule, exc *DayExceptions) bool {
	if IsWeekend(date) {
		return false
	}
	if today == "" || date >= today {
		return false
	}
	if exc.hasLocatorFiled() || exc.HasLeave || exc.HasTravel || exc.HasHoliday() || exc.HasFixLog {
		return false
	}

	expected := resolved.Columns.Count()
	logged := slots.rawCount()
	return logged > 0 && logged < expected
}
