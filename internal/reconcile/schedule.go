package reconcile

import "strings"

// Mode tags how a schedule's day credit is computed.
type Mode string

const (
	ModeStandard Mode = "STANDARD"
	ModeAMPM     Mode = "AMPM"
)

// Fixed fallback acceptance windows, minute-of-day, used when a slot
// definition carries no explicit window.
var fallbackWindows = map[Slot][2]int{
	SlotAmIn:  {4 * 60, 11*60 + 59},
	SlotAmOut: {11 * 60, 12*60 + 30},
	SlotPmIn:  {12*60 + 31, 14 * 60},
	SlotPmOut: {14*60 + 1, 23*60 + 59},
}

// ActiveColumns reports which punch columns the assignment activates.
type ActiveColumns struct {
	AmIn  bool
	AmOut bool
	PmIn  bool
	PmOut bool
}

func (a ActiveColumns) has(sl Slot) bool {
	switch sl {
	case SlotAmIn:
		return a.AmIn
	case SlotAmOut:
		return a.AmOut
	case SlotPmIn:
		return a.PmIn
	case SlotPmOut:
		return a.PmOut
	}
	return false
}

// Count returns the expected number of punches per day.
func (a ActiveColumns) Count() int {
	n := 0
	for _, sl := range allSlots {
		if a.has(sl) {
			n++
		}
	}
	return n
}

// SlotWindow is one resolved acceptance window. Inactive slots have
// Active false and are never matched against.
type SlotWindow struct {
	Active  bool
	Nominal int // minute-of-day
	Start   int
	End     int
}

// ResolvedSchedule is the ShiftSchedule reduced to minute arithmetic.
type ResolvedSchedule struct {
	Columns ActiveColumns
	Windows map[Slot]SlotWindow
	Mode    Mode
	Credits CreditTable
}

// Resolve derives the active columns, per-slot acceptance windows, and
// mode from an assignment. A slot without a parseable nominal time is
// inactive and yields no window.
func Resolve(schedule *ShiftSchedule) ResolvedSchedule {
	resolved := ResolvedSchedule{
		Windows: make(map[Slot]SlotWindow, len(allSlots)),
		Credits: schedule.Credits,
	}

	for _, sl := range allSlots {
		def := schedule.slot(sl)
		if def == nil {
			resolved.Windows[sl] = SlotWindow{}
			continue
		}
		nominal, ok := TimeToMinutes(def.Nominal)
		if !ok {
			resolved.Windows[sl] = SlotWindow{}
			continue
		}

		fb := fallbackWindows[sl]
		w := SlotWindow{Active: true, Nominal: nominal, Start: fb[0], End: fb[1]}
		if start, ok := TimeToMinutes(def.WindowStart); ok {
			w.Start = start
		}
		if end, ok := TimeToMinutes(def.WindowEnd); ok {
			w.End = end
		}
		resolved.Windows[sl] = w

		switch sl {
		case SlotAmIn:
			resolved.Columns.AmIn = true
		case SlotAmOut:
			resolved.Columns.AmOut = true
		case SlotPmIn:
			resolved.Columns.PmIn = true
		case SlotPmOut:
			resolved.Columns.PmOut = true
		}
	}

	resolved.Mode = detectMode(schedule, resolved.Columns)
	return resolved
}

// detectMode prefers an explicit AMPM tag in the assigned shift list,
// otherwise infers AMPM when exactly amIn and pmOut are active.
func detectMode(schedule *ShiftSchedule, cols ActiveColumns) Mode {
	for _, m := range schedule.Modes {
		if strings.EqualFold(strings.TrimSpace(m), string(ModeAMPM)) {
			return ModeAMPM
		}
	}
	if cols.AmIn && cols.PmOut && !cols.AmOut && !cols.PmIn {
		return ModeAMPM
	}
	return ModeStandard
}
