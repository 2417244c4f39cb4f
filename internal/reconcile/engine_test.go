package reconcile_test

import (
	"reflect"
	"testing"

	"go-dtr/internal/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2026-03-02 is the reference working day throughout; today is
// pinned to Wednesday 2026-03-04 so it is safely in the past.
func baseInputs() reconcile.Inputs {
	return reconcile.Inputs{
		EmployeeID: "emp-1",
		UserID:     "user-1",
		From:       "2026-03-02",
		To:         "2026-03-02",
		Today:      "2026-03-04",
		Schedule:   standardSchedule(),
	}
}

func reconcileOne(t *testing.T, in reconcile.Inputs) reconcile.DayResult {
	t.Helper()
	results, err := reconcile.NewEngine().Reconcile(in)
	require.NoError(t, err)
	require.Len(t, results, len(reconcile.DateRange(in.From, in.To)))
	return results[0]
}

func TestReconcile_MissingSchedule(t *testing.T) {
	in := baseInputs()
	in.Schedule = nil

	_, err := reconcile.NewEngine().Reconcile(in)
	assert.ErrorIs(t, err, reconcile.ErrNoScheduleAssigned)
}

func TestReconcile_InvalidRange(t *testing.T) {
	in := baseInputs()
	in.From, in.To = "2026-03-05", "2026-03-02"

	_, err := reconcile.NewEngine().Reconcile(in)
	assert.Error(t, err)
}

func TestReconcile_AMPMFullDay(t *testing.T) {
	in := baseInputs()
	in.Schedule = ampmSchedule()
	in.Punches = punches("2026-03-02 08:00:00", "2026-03-02 17:00:00")

	day := reconcileOne(t, in)

	assert.Equal(t, 1.0, day.DayCredit)
	assert.Equal(t, 0, day.LateMinutes)
	assert.Equal(t, "08:00", day.Slots.AmIn.Time)
	assert.Equal(t, "17:00", day.Slots.PmOut.Time)
	assert.False(t, day.Slots.AmOut.Filled())
	assert.False(t, day.Slots.PmIn.Filled())
	assert.False(t, day.Flags.IsAbsent)
}

func TestReconcile_MissingPmInKeepsFullCredit(t *testing.T) {
	in := baseInputs()
	in.Punches = punches("2026-03-02 08:00:00", "2026-03-02 12:00:00", "2026-03-02 17:00:00")

	day := reconcileOne(t, in)

	// a single missing mid-day punch is tolerated at full sum
	assert.Equal(t, 1.0, day.DayCredit)
	assert.Equal(t, "08:00", day.Slots.AmIn.Time)
	assert.Equal(t, "12:00", day.Slots.AmOut.Time)
	assert.False(t, day.Slots.PmIn.Filled())
	assert.Equal(t, "17:00", day.Slots.PmOut.Time)
}

func TestReconcile_LocatorBackfillBeatsFixLog(t *testing.T) {
	in := baseInputs()
	in.Locators = []reconcile.Locator{{
		Date:          "2026-03-02",
		DepartureTime: "07:30",
		ArrivalTime:   "09:00",
		RefNo:         "LOC-2026-0004",
		Status:        reconcile.StatusApproved,
	}}
	in.FixLogs = []reconcile.FixLog{{
		Date:   "2026-03-02",
		Status: reconcile.StatusApproved,
		AmIn:   "08:30",
		AmOut:  "12:00",
	}}

	day := reconcileOne(t, in)

	// nominal 08:00 falls inside the locator window, so the slot takes
	// the nominal time with locator provenance and no fix-log value is
	// applied anywhere on the day
	assert.Equal(t, "08:00", day.Slots.AmIn.Time)
	assert.Equal(t, reconcile.ProvenanceLocator, day.Slots.AmIn.Provenance)
	assert.False(t, day.Slots.AmOut.Filled())

	for _, v := range []reconcile.SlotValue{day.Slots.AmIn, day.Slots.AmOut, day.Slots.PmIn, day.Slots.PmOut} {
		assert.NotEqual(t, reconcile.ProvenanceFixLog, v.Provenance)
	}
	assert.True(t, day.Flags.HasLocator)
	assert.False(t, day.Flags.IsAbsent)
}

func TestReconcile_FixLogAppliesWhenNoLocator(t *testing.T) {
	in := baseInputs()
	in.Punches = punches("2026-03-02 08:00:00")
	in.FixLogs = []reconcile.FixLog{{
		Date:         "2026-03-02",
		Status:       reconcile.StatusApproved,
		AmIn:         "07:50", // must not replace the raw punch
		AmOut:        "12:00",
		ApproverName: "R. Santos",
	}}

	day := reconcileOne(t, in)

	assert.Equal(t, "08:00", day.Slots.AmIn.Time)
	assert.Equal(t, reconcile.ProvenanceRaw, day.Slots.AmIn.Provenance)
	assert.Equal(t, "12:00", day.Slots.AmOut.Time)
	assert.Equal(t, reconcile.ProvenanceFixLog, day.Slots.AmOut.Provenance)
	assert.Equal(t, 0.5, day.DayCredit)
}

func TestReconcile_PendingFixLogIsDisplayOnly(t *testing.T) {
	in := baseInputs()
	in.FixLogs = []reconcile.FixLog{{
		Date:   "2026-03-02",
		Status: reconcile.StatusForApproval,
		AmIn:   "08:00",
	}}

	day := reconcileOne(t, in)

	assert.Equal(t, 0, day.Slots.FilledCount())
	require.NotNil(t, day.PendingFixLog)
	assert.Equal(t, "08:00", day.PendingFixLog.AmIn)
}

func TestReconcile_RecurringHoliday(t *testing.T) {
	in := baseInputs()
	in.From, in.To = "2026-12-25", "2026-12-25"
	in.Punches = punches("2026-12-25 08:00:00", "2026-12-25 17:00:00")
	in.Holidays = []reconcile.Holiday{{
		MonthDay:  "12-25",
		Recurring: true,
		Name:      "Christmas Day",
		Category:  "Regular Holiday",
	}}

	day := reconcileOne(t, in)

	assert.Equal(t, 0.0, day.DayCredit)
	assert.True(t, day.Flags.IsHoliday)
	require.NotEmpty(t, day.Remarks)
	assert.Equal(t, reconcile.RemarkHoliday, day.Remarks[0].Type)
	assert.Equal(t, "Christmas Day", day.Remarks[0].Text)
}

func TestReconcile_WorkSuspensionLabel(t *testing.T) {
	in := baseInputs()
	in.From, in.To = "2026-02-28", "2026-02-28" // Saturday
	in.Holidays = []reconcile.Holiday{{
		Date: "2026-02-28",
		Name: "Work Suspension - Typhoon",
	}}

	day := reconcileOne(t, in)

	require.NotEmpty(t, day.Remarks)
	assert.Equal(t, "Work Suspension", day.Remarks[0].Text)
	// the holiday label suppresses the weekend remark
	for _, r := range day.Remarks {
		assert.NotEqual(t, reconcile.RemarkWeekend, r.Type)
	}
	assert.True(t, day.Flags.IsWeekend)
}

func TestReconcile_AbsenceGuards(t *testing.T) {
	t.Run("yesterday with nothing is absent", func(t *testing.T) {
		in := baseInputs()
		in.From, in.To = "2026-03-03", "2026-03-03"

		day := reconcileOne(t, in)
		assert.True(t, day.Flags.IsAbsent)
		assert.Equal(t, 0.0, day.DayCredit)
		require.NotEmpty(t, day.Remarks)
		assert.Equal(t, "Absent", day.Remarks[0].Text)
		assert.Equal(t, "-", day.Display.AmIn)
	})

	t.Run("today is never absent", func(t *testing.T) {
		in := baseInputs()
		in.From, in.To = "2026-03-04", "2026-03-04"

		day := reconcileOne(t, in)
		assert.False(t, day.Flags.IsAbsent)
	})

	t.Run("future is never absent", func(t *testing.T) {
		in := baseInputs()
		in.From, in.To = "2026-03-05", "2026-03-05"

		day := reconcileOne(t, in)
		assert.False(t, day.Flags.IsAbsent)
	})

	t.Run("weekend is never absent", func(t *testing.T) {
		in := baseInputs()
		in.From, in.To = "2026-03-01", "2026-03-01" // Sunday

		day := reconcileOne(t, in)
		assert.False(t, day.Flags.IsAbsent)
		require.NotEmpty(t, day.Remarks)
		assert.Equal(t, "Weekend", day.Remarks[0].Text)
		assert.Equal(t, "Weekend", day.Display.AmIn)
		assert.Equal(t, "Weekend", day.Display.PmOut)
	})

	t.Run("approved leave defeats absence", func(t *testing.T) {
		in := baseInputs()
		in.Leaves = []reconcile.Leave{{
			Dates:  []string{"2026-03-02"},
			RefNo:  "251102LV-002",
			Status: reconcile.StatusApproved,
		}}

		day := reconcileOne(t, in)
		assert.False(t, day.Flags.IsAbsent)
		assert.True(t, day.Flags.HasLeave)
		assert.Equal(t, 0.0, day.DayCredit)
		require.NotEmpty(t, day.Remarks)
		assert.Equal(t, "Leave(251102LV-002)", day.Remarks[0].Text)
	})

	t.Run("locator backfill defeats absence", func(t *testing.T) {
		in := baseInputs()
		in.Locators = []reconcile.Locator{{
			Date:          "2026-03-02",
			DepartureTime: "07:00",
			ArrivalTime:   "18:00",
			Status:        reconcile.StatusApproved,
		}}

		day := reconcileOne(t, in)
		assert.False(t, day.Flags.IsAbsent)
	})
}

func TestReconcile_TravelDay(t *testing.T) {
	in := baseInputs()
	in.Travels = []reconcile.Travel{{
		Dates:                  []string{"2026-03-02"},
		RefNo:                  "TO-2026-019",
		Status:                 reconcile.StatusApproved,
		ParticipantEmployeeIDs: []string{"emp-9", "emp-1"},
	}}

	day := reconcileOne(t, in)

	assert.True(t, day.Flags.HasTravel)
	assert.Equal(t, 1.0, day.DayCredit)
	assert.Equal(t, 0, day.LateMinutes)
	assert.False(t, day.Flags.IsAbsent)
	require.NotEmpty(t, day.Remarks)
	assert.Equal(t, "Travel: (TO-2026-019)", day.Remarks[0].Text)
}

func TestReconcile_TravelRequiresParticipantMatch(t *testing.T) {
	in := baseInputs()
	in.Travels = []reconcile.Travel{{
		Dates:                  []string{"2026-03-02"},
		RefNo:                  "TO-2026-019",
		Status:                 reconcile.StatusApproved,
		ParticipantEmployeeIDs: []string{"emp-9"},
		ParticipantUserIDs:     []string{"user-7"},
	}}

	day := reconcileOne(t, in)
	assert.False(t, day.Flags.HasTravel)

	// matching on the DTR user id alone is sufficient
	in.Travels[0].ParticipantUserIDs = []string{"user-1"}
	day = reconcileOne(t, in)
	assert.True(t, day.Flags.HasTravel)
}

func TestReconcile_NonApprovedRecordsDoNotApply(t *testing.T) {
	in := baseInputs()
	in.Leaves = []reconcile.Leave{{
		Dates:  []string{"2026-03-02"},
		RefNo:  "251102LV-003",
		Status: reconcile.StatusForApproval,
	}}
	in.Locators = []reconcile.Locator{{
		Date:          "2026-03-02",
		DepartureTime: "07:00",
		ArrivalTime:   "18:00",
		Status:        reconcile.StatusReturned,
	}}

	day := reconcileOne(t, in)

	assert.False(t, day.Flags.HasLeave)
	assert.Equal(t, 0, day.Slots.FilledCount())
	// a filed locator still shows in remarks with its status
	assert.True(t, day.Flags.HasLocator)
	found := false
	for _, r := range day.Remarks {
		if r.Type == reconcile.RemarkLocator {
			assert.Equal(t, "Locator(Returned)", r.Text)
			found = true
		}
	}
	assert.True(t, found)
}

func TestReconcile_FileALocatorPrompt(t *testing.T) {
	hasAction := func(day reconcile.DayResult) bool {
		for _, r := range day.Remarks {
			if r.Type == reconcile.RemarkAction {
				return true
			}
		}
		return false
	}

	t.Run("partial punches on a past working day prompt", func(t *testing.T) {
		in := baseInputs()
		in.Punches = punches("2026-03-02 08:00:00", "2026-03-02 12:00:00")

		assert.True(t, hasAction(reconcileOne(t, in)))
	})

	t.Run("zero punches do not prompt", func(t *testing.T) {
		in := baseInputs()
		assert.False(t, hasAction(reconcileOne(t, in)))
	})

	t.Run("complete punches do not prompt", func(t *testing.T) {
		in := baseInputs()
		in.Punches = punches(
			"2026-03-02 08:00:00", "2026-03-02 12:00:00",
			"2026-03-02 13:00:00", "2026-03-02 17:00:00",
		)
		assert.False(t, hasAction(reconcileOne(t, in)))
	})

	t.Run("a fix log of any status suppresses the prompt", func(t *testing.T) {
		in := baseInputs()
		in.Punches = punches("2026-03-02 08:00:00", "2026-03-02 12:00:00")
		in.FixLogs = []reconcile.FixLog{{Date: "2026-03-02", Status: reconcile.StatusForApproval, PmOut: "17:00"}}

		assert.False(t, hasAction(reconcileOne(t, in)))
	})

	t.Run("a filed locator suppresses the prompt", func(t *testing.T) {
		in := baseInputs()
		in.Punches = punches("2026-03-02 08:00:00", "2026-03-02 12:00:00")
		in.Locators = []reconcile.Locator{{Date: "2026-03-02", Status: reconcile.StatusForApproval}}

		assert.False(t, hasAction(reconcileOne(t, in)))
	})

	t.Run("today does not prompt", func(t *testing.T) {
		in := baseInputs()
		in.From, in.To = "2026-03-04", "2026-03-04"
		in.Punches = punches("2026-03-04 08:00:00")

		assert.False(t, hasAction(reconcileOne(t, in)))
	})
}

func TestReconcile_RemarksDeduplicated(t *testing.T) {
	in := baseInputs()
	in.Leaves = []reconcile.Leave{
		{Dates: []string{"2026-03-02"}, RefNo: "251102LV-002", Status: reconcile.StatusApproved},
		{Dates: []string{"2026-03-02"}, RefNo: "251102LV-002", Status: reconcile.StatusApproved},
	}

	day := reconcileOne(t, in)

	count := 0
	for _, r := range day.Remarks {
		if r.Type == reconcile.RemarkLeave {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestReconcile_ConflictingExceptionsAllEmitted(t *testing.T) {
	in := baseInputs()
	in.Leaves = []reconcile.Leave{{Dates: []string{"2026-03-02"}, RefNo: "251102LV-002", Status: reconcile.StatusApproved}}
	in.Travels = []reconcile.Travel{{
		Dates: []string{"2026-03-02"}, RefNo: "TO-2026-019",
		Status: reconcile.StatusApproved, ParticipantEmployeeIDs: []string{"emp-1"},
	}}

	day := reconcileOne(t, in)

	// leave wins the credit decision but both remarks appear
	assert.Equal(t, 0.0, day.DayCredit)
	var types []reconcile.RemarkType
	for _, r := range day.Remarks {
		types = append(types, r.Type)
	}
	assert.Contains(t, types, reconcile.RemarkLeave)
	assert.Contains(t, types, reconcile.RemarkTravel)
}

func TestReconcile_Idempotent(t *testing.T) {
	in := baseInputs()
	in.From, in.To = "2026-02-27", "2026-03-04"
	in.Punches = punches(
		"2026-03-02 08:07:00", "2026-03-02 12:01:00",
		"2026-03-02 12:58:00", "2026-03-02 17:02:00",
		"2026-03-03 08:00:00",
	)
	in.Locators = []reconcile.Locator{{
		Date: "2026-03-03", DepartureTime: "13:00", ArrivalTime: "17:30",
		RefNo: "LOC-2026-0007", Status: reconcile.StatusApproved,
	}}
	in.Holidays = []reconcile.Holiday{{Date: "2026-02-27", Name: "Special Day"}}

	engine := reconcile.NewEngine()
	first, err := engine.Reconcile(in)
	require.NoError(t, err)
	second, err := engine.Reconcile(in)
	require.NoError(t, err)

	assert.True(t, reflect.DeepEqual(first, second))
}

func TestReconcile_LocatorAndFixLogNeverMixOnOneDay(t *testing.T) {
	in := baseInputs()
	in.From, in.To = "2026-03-02", "2026-03-03"
	in.Locators = []reconcile.Locator{{
		Date: "2026-03-02", DepartureTime: "07:00", ArrivalTime: "13:30",
		Status: reconcile.StatusApproved,
	}}
	in.FixLogs = []reconcile.FixLog{
		{Date: "2026-03-02", Status: reconcile.StatusApproved, PmOut: "17:00"},
		{Date: "2026-03-03", Status: reconcile.StatusApproved, AmIn: "08:00", AmOut: "12:00"},
	}

	results, err := reconcile.NewEngine().Reconcile(in)
	require.NoError(t, err)

	for _, day := range results {
		sawLocator, sawFixLog := false, false
		for _, v := range []reconcile.SlotValue{day.Slots.AmIn, day.Slots.AmOut, day.Slots.PmIn, day.Slots.PmOut} {
			switch v.Provenance {
			case reconcile.ProvenanceLocator:
				sawLocator = true
			case reconcile.ProvenanceFixLog:
				sawFixLog = true
			}
		}
		assert.False(t, sawLocator && sawFixLog, "day %s mixes locator and fixlog fills", day.Date)
	}
}
