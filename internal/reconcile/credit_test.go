package reconcile_test

import (
	"testing"

	"go-dtr/internal/reconcile"

	"github.com/stretchr/testify/assert"
)

func raw(t string) reconcile.SlotValue {
	return reconcile.SlotValue{Time: t, Provenance: reconcile.ProvenanceRaw}
}

func filledSlots(amIn, amOut, pmIn, pmOut string) reconcile.SlotSet {
	var s reconcile.SlotSet
	if amIn != "" {
		s.AmIn = raw(amIn)
	}
	if amOut != "" {
		s.AmOut = raw(amOut)
	}
	if pmIn != "" {
		s.PmIn = raw(pmIn)
	}
	if pmOut != "" {
		s.PmOut = raw(pmOut)
	}
	return s
}

func TestDayCredit_RuleOrder(t *testing.T) {
	resolved := reconcile.Resolve(standardSchedule()) // AM 0.5, PM 0.5

	cases := []struct {
		name     string
		slots    reconcile.SlotSet
		expected float64
	}{
		{"complete day", filledSlots("08:00", "12:00", "13:00", "17:00"), 1.0},
		{"missing am out, pm complete", filledSlots("08:00", "", "13:00", "17:00"), 1.0},
		{"missing pm in, am complete", filledSlots("08:00", "12:00", "", "17:00"), 1.0},
		{"missing am in", filledSlots("", "12:00", "13:00", "17:00"), 0.5},
		{"missing pm out", filledSlots("08:00", "12:00", "13:00", ""), 0.5},
		{"only first and last punch", filledSlots("08:00", "", "", "17:00"), 1.0},
		{"only am pair", filledSlots("08:00", "12:00", "", ""), 0.5},
		{"only pm pair", filledSlots("", "", "13:00", "17:00"), 0.5},
		{"single punch", filledSlots("08:00", "", "", ""), 0.0},
		{"no punches", filledSlots("", "", "", ""), 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			exc := &reconcile.DayExceptions{}
			got := reconcile.DayCredit(&tc.slots, resolved, exc)
			assert.InDelta(t, tc.expected, got, 0.001)
		})
	}
}

func TestDayCredit_LeaveAndHolidayZeroTheDay(t *testing.T) {
	resolved := reconcile.Resolve(standardSchedule())
	slots := filledSlots("08:00", "12:00", "13:00", "17:00")

	exc := &reconcile.DayExceptions{HasLeave: true}
	assert.Equal(t, 0.0, reconcile.DayCredit(&slots, resolved, exc))

	exc = &reconcile.DayExceptions{Holidays: []reconcile.HolidayMatch{{Name: "New Year"}}}
	assert.Equal(t, 0.0, reconcile.DayCredit(&slots, resolved, exc))
}

func TestDayCredit_AMPMHalves(t *testing.T) {
	resolved := reconcile.Resolve(ampmSchedule()) // AMPM 1.0
	exc := &reconcile.DayExceptions{}

	full := filledSlots("08:00", "", "", "17:00")
	assert.Equal(t, 1.0, reconcile.DayCredit(&full, resolved, exc))

	morning := filledSlots("08:00", "", "", "")
	assert.Equal(t, 0.5, reconcile.DayCredit(&morning, resolved, exc))

	evening := filledSlots("", "", "", "17:00")
	assert.Equal(t, 0.5, reconcile.DayCredit(&evening, resolved, exc))

	empty := filledSlots("", "", "", "")
	assert.Equal(t, 0.0, reconcile.DayCredit(&empty, resolved, exc))
}

func TestDayCredit_TravelDayWithNoPunches(t *testing.T) {
	resolved := reconcile.Resolve(standardSchedule())
	empty := filledSlots("", "", "", "")

	exc := &reconcile.DayExceptions{HasTravel: true}
	assert.Equal(t, 1.0, reconcile.DayCredit(&empty, resolved, exc))

	// leave still zeroes a travel day
	exc = &reconcile.DayExceptions{HasTravel: true, HasLeave: true}
	assert.Equal(t, 0.0, reconcile.DayCredit(&empty, resolved, exc))

	// punched travel days fall through to the normal rules
	punched := filledSlots("08:00", "12:00", "", "")
	exc = &reconcile.DayExceptions{HasTravel: true}
	assert.Equal(t, 0.5, reconcile.DayCredit(&punched, resolved, exc))
}

func TestDayCredit_InactiveSlotNeverCounts(t *testing.T) {
	sched := standardSchedule()
	sched.PmIn = nil
	resolved := reconcile.Resolve(sched)

	// pmIn carries a value but the column is inactive, so the day reads
	// as amIn+amOut+pmOut, which is the missing-pmIn special case.
	slots := filledSlots("08:00", "12:00", "13:00", "17:00")
	got := reconcile.DayCredit(&slots, resolved, &reconcile.DayExceptions{})
	assert.Equal(t, 1.0, got)
}

func TestLateMinutes(t *testing.T) {
	resolved := reconcile.Resolve(standardSchedule())

	t.Run("late arrival and early departure accumulate", func(t *testing.T) {
		slots := filledSlots("08:12", "12:00", "13:05", "16:40")
		exc := &reconcile.DayExceptions{}
		// 12 late am, 5 late pm, 20 early out
		assert.Equal(t, 37, reconcile.LateMinutes(&slots, resolved, exc))
	})

	t.Run("early arrival earns nothing back", func(t *testing.T) {
		slots := filledSlots("07:30", "12:00", "13:00", "17:30")
		assert.Equal(t, 0, reconcile.LateMinutes(&slots, resolved, &reconcile.DayExceptions{}))
	})

	t.Run("unfilled slots contribute nothing", func(t *testing.T) {
		slots := filledSlots("08:10", "", "", "")
		assert.Equal(t, 10, reconcile.LateMinutes(&slots, resolved, &reconcile.DayExceptions{}))
	})

	t.Run("leave travel and cdo force zero", func(t *testing.T) {
		slots := filledSlots("09:00", "11:00", "14:00", "15:00")
		assert.Equal(t, 0, reconcile.LateMinutes(&slots, resolved, &reconcile.DayExceptions{HasLeave: true}))
		assert.Equal(t, 0, reconcile.LateMinutes(&slots, resolved, &reconcile.DayExceptions{HasTravel: true}))
		assert.Equal(t, 0, reconcile.LateMinutes(&slots, resolved, &reconcile.DayExceptions{
			CdoEntries: []reconcile.CdoUsage{{RefNo: "CDO-001", Status: reconcile.StatusApproved}},
		}))
	})
}
