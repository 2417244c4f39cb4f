package reconcile

// SlotDisplaySet carries the render-ready label of each punch column:
// the resolved time for a filled slot, an annotation for an empty one.
type SlotDisplaySet struct {
	AmIn  string
	AmOut string
	PmIn  string
	PmOut string
}

const emptyCell = "-"

func (s *SlotDisplaySet) set(sl Slot, label string) {
	switch sl {
	case SlotAmIn:
		s.AmIn = label
	case SlotAmOut:
		s.AmOut = label
	case SlotPmIn:
		s.PmIn = label
	case SlotPmOut:
		s.PmOut = label
	}
}

// ResolveDisplays labels the four columns for one day. An inactive
// column is always a dash regardless of what else applies; a filled
// slot shows its time; an empty active slot falls through the day's
// annotations in fixed order, and an absent or plain unfilled day
// ends at the dash.
func ResolveDisplays(slots *SlotSet, resolved ResolvedSchedule, exc *DayExceptions, date string) SlotDisplaySet {
	var out SlotDisplaySet
	for _, sl := range allSlots {
		out.set(sl, displaySlot(sl, slots, resolved, exc, date))
	}
	return out
}

func displaySlot(sl Slot, slots *SlotSet, resolved ResolvedSchedule, exc *DayExceptions, date string) string {
	if !resolved.Windows[sl].Active {
		return emptyCell
	}
	if v := slots.get(sl); v.Filled() {
		return v.Time
	}

	switch {
	case IsWeekend(date):
		return "Weekend"
	case exc.HasLeave:
		return "Leave"
	case exc.HasTravel:
		return "Travel"
	case exc.HasCdo():
		return "CDO"
	case exc.HasHoliday():
		if exc.HolidayDisplay != "" {
			return exc.HolidayDisplay
		}
		return "Holiday"
	}
	return emptyCell
}
