package reconcile_test

import (
	"testing"

	"go-dtr/internal/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateExceptions_LocatorWindows(t *testing.T) {
	in := baseInputs()

	t.Run("reversed endpoints are tolerated", func(t *testing.T) {
		in.Locators = []reconcile.Locator{{
			Date:          "2026-03-02",
			DepartureTime: "15:00",
			ArrivalTime:   "13:00",
			Status:        reconcile.StatusApproved,
		}}
		exc := reconcile.AggregateExceptions(&in, "2026-03-02")
		require.Len(t, exc.LocatorWindows, 1)
		assert.Equal(t, 13*60, exc.LocatorWindows[0].Start)
		assert.Equal(t, 15*60, exc.LocatorWindows[0].End)
	})

	t.Run("single endpoint yields a point window", func(t *testing.T) {
		in.Locators = []reconcile.Locator{{
			Date:          "2026-03-02",
			DepartureTime: "09:15",
			Status:        reconcile.StatusApproved,
		}}
		exc := reconcile.AggregateExceptions(&in, "2026-03-02")
		require.Len(t, exc.LocatorWindows, 1)
		assert.Equal(t, 9*60+15, exc.LocatorWindows[0].Start)
		assert.Equal(t, 9*60+15, exc.LocatorWindows[0].End)
	})

	t.Run("no parseable endpoint yields no window", func(t *testing.T) {
		in.Locators = []reconcile.Locator{{
			Date:   "2026-03-02",
			Status: reconcile.StatusApproved,
		}}
		exc := reconcile.AggregateExceptions(&in, "2026-03-02")
		assert.Empty(t, exc.LocatorWindows)
		// the filing still registers for remarks and suppression
		assert.Len(t, exc.Locators, 1)
	})

	t.Run("full timestamps are reduced to time of day", func(t *testing.T) {
		in.Locators = []reconcile.Locator{{
			Date:          "2026-03-02 00:00:00",
			DepartureTime: "2026-03-02 07:30:00",
			ArrivalTime:   "2026-03-02 09:00:00",
			Status:        reconcile.StatusApproved,
		}}
		exc := reconcile.AggregateExceptions(&in, "2026-03-02")
		require.Len(t, exc.LocatorWindows, 1)
		assert.Equal(t, 7*60+30, exc.LocatorWindows[0].Start)
		assert.Equal(t, 9*60, exc.LocatorWindows[0].End)
	})
}

func TestAggregateExceptions_Holidays(t *testing.T) {
	in := baseInputs()
	in.Holidays = []reconcile.Holiday{
		{Date: "2026-03-02", Name: "Anniversary"},
		{MonthDay: "03-02", Recurring: true, Name: "Founding Day"},
		{Date: "2025-03-02", Name: "Old One-Off"},
	}

	exc := reconcile.AggregateExceptions(&in, "2026-03-02")

	require.Len(t, exc.Holidays, 2)
	assert.Equal(t, "Anniversary, Founding Day", exc.HolidayDisplay)
}

func TestAggregateExceptions_RecurringFromFullDate(t *testing.T) {
	in := baseInputs()
	in.Holidays = []reconcile.Holiday{
		{Date: "2020-12-25", Recurring: true, Name: "Christmas Day"},
	}

	exc := reconcile.AggregateExceptions(&in, "2026-12-25")
	require.Len(t, exc.Holidays, 1)
	assert.Equal(t, "Christmas Day", exc.Holidays[0].Name)
}

func TestAggregateExceptions_LeaveDateListMatch(t *testing.T) {
	in := baseInputs()
	in.Leaves = []reconcile.Leave{{
		Dates:  []string{"2026-03-02T00:00:00Z", "2026-03-03"},
		RefNo:  "251102LV-002",
		Status: reconcile.StatusApproved,
	}}

	exc := reconcile.AggregateExceptions(&in, "2026-03-02")
	assert.True(t, exc.HasLeave)
	assert.Equal(t, []string{"251102LV-002"}, exc.LeaveRefs)

	exc = reconcile.AggregateExceptions(&in, "2026-03-04")
	assert.False(t, exc.HasLeave)
}

func TestAggregateExceptions_FixLogBuckets(t *testing.T) {
	in := baseInputs()
	in.FixLogs = []reconcile.FixLog{
		{Date: "2026-03-02", Status: reconcile.StatusReturned},
		{Date: "2026-03-02", Status: reconcile.StatusForApproval, AmIn: "08:00"},
		{Date: "2026-03-02", Status: reconcile.StatusApproved, PmOut: "17:00"},
	}

	exc := reconcile.AggregateExceptions(&in, "2026-03-02")

	assert.True(t, exc.HasFixLog)
	require.NotNil(t, exc.ApprovedFixLog)
	assert.Equal(t, "17:00", exc.ApprovedFixLog.PmOut)
	require.NotNil(t, exc.PendingFixLog)
	assert.Equal(t, "08:00", exc.PendingFixLog.AmIn)
}
