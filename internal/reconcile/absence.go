package reconcile

// IsAbsent decides whether a day with no attendance counts as absent.
// Weekends, leave, travel, and holidays all defeat absence, as does a
// locator or fix-log backfill. Today and future dates are never absent;
// the injected today keeps that check deterministic.
func IsAbsent(date, today string, slots *SlotSet, rawLogCount int, exc *DayExceptions) bool {
	if rawLogCount > 0 || slots.FilledCount() > 0 {
		return false
	}
	if IsWeekend(date) {
		return false
	}
	if exc.HasLeave || exc.HasTravel || exc.HasHoliday() {
		return false
	}
	if today == "" || date >= today {
		return false
	}
	return true
}
