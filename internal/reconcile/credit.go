package reconcile

import "math"

// DayCredit converts the final slot fills into a fractional day credit.
// The rules run in order and the first match wins; the special cases
// exist to tolerate a single missing punch without zeroing the day, so
// reordering them would silently change results.
func DayCredit(slots *SlotSet, resolved ResolvedSchedule, exc *DayExceptions) float64 {
	if exc.HasLeave || exc.HasHoliday() {
		return 0
	}

	hasAmIn := resolved.Columns.AmIn && slots.AmIn.Filled()
	hasAmOut := resolved.Columns.AmOut && slots.AmOut.Filled()
	hasPmIn := resolved.Columns.PmIn && slots.PmIn.Filled()
	hasPmOut := resolved.Columns.PmOut && slots.PmOut.Filled()

	// A travel day with nothing filled still earns the travel credit.
	if exc.HasTravel && !hasAmIn && !hasAmOut && !hasPmIn && !hasPmOut {
		return 1
	}

	credits := resolved.Credits

	if resolved.Mode == ModeAMPM {
		credit := 0.0
		if hasAmIn {
			credit += credits.AMPM / 2
		}
		if hasPmOut {
			credit += credits.AMPM / 2
		}
		return round2(credit)
	}

	switch {
	case hasAmIn && !hasAmOut && hasPmIn && hasPmOut:
		return round2(credits.AM + credits.PM)
	case hasAmIn && hasAmOut && !hasPmIn && hasPmOut:
		return round2(credits.AM + credits.PM)
	case !hasAmIn && hasAmOut && hasPmIn && hasPmOut:
		return round2((credits.AM + credits.PM) / 2)
	case hasAmIn && hasAmOut && hasPmIn && !hasPmOut:
		return round2((credits.AM + credits.PM) / 2)
	case hasAmIn && !hasAmOut && !hasPmIn && hasPmOut:
		return round2(credits.AM + credits.PM)
	}

	credit := 0.0
	if hasAmIn && hasAmOut {
		credit += credits.AM
	}
	if hasPmIn && hasPmOut {
		credit += credits.PM
	}
	return round2(credit)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
