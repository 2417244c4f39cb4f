package reconcile

import "sort"

// punch is one raw event reduced to its minute-of-day.
type punch struct {
	time    string
	minutes int
}

// dayPunches filters and normalizes the raw events belonging to one
// date. Unparseable timestamps are skipped, never fatal.
func dayPunches(punches []RawPunch, date string) []punch {
	var out []punch
	for _, p := range punches {
		if ExtractDate(p.Timestamp) != date {
			continue
		}
		t := ExtractTime(p.Timestamp)
		mins, ok := TimeToMinutes(t)
		if !ok {
			continue
		}
		out = append(out, punch{time: t, minutes: mins})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].minutes < out[j].minutes })
	return out
}

// MatchPunches assigns the punches of one date to the active slots.
// Inactive slots stay empty with no computation performed. Ties are
// broken per slot, not uniformly.
func MatchPunches(resolved ResolvedSchedule, punches []RawPunch, date string) SlotSet {
	return matchDay(resolved, dayPunches(punches, date))
}

func matchDay(resolved ResolvedSchedule, punches []punch) SlotSet {
	var slots SlotSet

	for _, sl := range allSlots {
		w := resolved.Windows[sl]
		if !w.Active {
			continue
		}

		var inWindow []punch
		for _, p := range punches {
			if p.minutes >= w.Start && p.minutes <= w.End {
				inWindow = append(inWindow, p)
			}
		}
		if len(inWindow) == 0 {
			continue
		}

		var chosen punch
		switch sl {
		case SlotAmIn:
			chosen = pickAmIn(inWindow, w.Nominal)
		case SlotAmOut, SlotPmIn:
			chosen = inWindow[0]
		case SlotPmOut:
			chosen = inWindow[len(inWindow)-1]
		}

		slots.set(sl, SlotValue{Time: chosen.time, Provenance: ProvenanceRaw})
	}

	return slots
}

// pickAmIn prefers the earliest punch at or before the nominal start.
// Failing that it takes the punch nearest the nominal time, earliest
// winning a distance tie. Input is sorted ascending.
func pickAmIn(inWindow []punch, nominal int) punch {
	for _, p := range inWindow {
		if p.minutes <= nominal {
			return p
		}
	}

	best := inWindow[0]
	bestDist := abs(best.minutes - nominal)
	for _, p := range inWindow[1:] {
		if d := abs(p.minutes - nominal); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
