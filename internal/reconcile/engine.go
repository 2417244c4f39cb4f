package reconcile

import (
	"errors"
	"fmt"
)

// ErrNoScheduleAssigned distinguishes "employee not configured" from an
// employee whose range simply has nothing to reconcile. Callers map it
// to their own error surface.
var ErrNoScheduleAssigned = errors.New("no shift schedule assigned")

// Engine is the pure reconciliation transform. It holds no state and
// is safe for concurrent use; each run only reads its own inputs.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Reconcile produces one DayResult per date in [From, To]. Identical
// inputs always yield identical output; the only clock dependency is
// the injected Today.
func (e *Engine) Reconcile(in Inputs) ([]DayResult, error) {
	if in.Schedule == nil {
		return nil, ErrNoScheduleAssigned
	}

	dates := DateRange(in.From, in.To)
	if dates == nil {
		return nil, fmt.Errorf("invalid date range %q..%q", in.From, in.To)
	}

	resolved := Resolve(in.Schedule)

	results := make([]DayResult, 0, len(dates))
	for _, date := range dates {
		results = append(results, e.reconcileDay(&in, resolved, date))
	}
	return results, nil
}

func (e *Engine) reconcileDay(in *Inputs, resolved ResolvedSchedule, date string) DayResult {
	punches := dayPunches(in.Punches, date)
	slots := matchDay(resolved, punches)
	exc := AggregateExceptions(in, date)

	ApplyBackfill(&slots, resolved, &exc)

	credit := DayCredit(&slots, resolved, &exc)
	late := LateMinutes(&slots, resolved, &exc)
	absent := IsAbsent(date, in.Today, &slots, len(punches), &exc)
	remarks := ComposeRemarks(date, in.Today, &slots, resolved, &exc, absent)
	display := ResolveDisplays(&slots, resolved, &exc, date)

	return DayResult{
		Date:        date,
		Slots:       slots,
		LateMinutes: late,
		DayCredit:   credit,
		Remarks:     remarks,
		Display:     display,
		Flags: Flags{
			IsWeekend:  IsWeekend(date),
			IsHoliday:  exc.HasHoliday(),
			HasLeave:   exc.HasLeave,
			HasTravel:  exc.HasTravel,
			HasLocator: exc.hasLocatorFiled(),
			HasCdo:     exc.HasCdo(),
			IsAbsent:   absent,
		},
		PendingFixLog: exc.PendingFixLog,
	}
}
