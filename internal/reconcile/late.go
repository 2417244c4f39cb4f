package reconcile

// LateMinutes sums lateness across the day's active slots. Check-in
// slots penalize arriving after the nominal time, check-out slots
// penalize leaving before it. Leave, travel, and CDO exceptions excuse
// timing entirely.
func LateMinutes(slots *SlotSet, resolved ResolvedSchedule, exc *DayExceptions) int {
	if exc.HasLeave || exc.HasTravel || exc.HasCdo() {
		return 0
	}

	late := 0
	for _, sl := range allSlots {
		w := resolved.Windows[sl]
		v := slots.get(sl)
		if !w.Active || !v.Filled() {
			continue
		}
		actual, ok := TimeToMinutes(v.Time)
		if !ok {
			continue
		}

		switch sl {
		case SlotAmIn, SlotPmIn:
			if actual > w.Nominal {
				late += actual - w.Nominal
			}
		case SlotAmOut, SlotPmOut:
			if actual < w.Nominal {
				late += w.Nominal - actual
			}
		}
	}
	return late
}
