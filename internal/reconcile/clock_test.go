package reconcile_test

import (
	"testing"

	"go-dtr/internal/reconcile"

	"github.com/stretchr/testify/assert"
)

func TestExtractDate(t *testing.T) {
	assert.Equal(t, "2026-03-02", reconcile.ExtractDate("2026-03-02 08:15:00"))
	assert.Equal(t, "2026-03-02", reconcile.ExtractDate("2026-03-02T08:15:00Z"))
	assert.Equal(t, "2026-03-02", reconcile.ExtractDate("2026-03-02"))
	assert.Equal(t, "", reconcile.ExtractDate("03/02/2026"))
	assert.Equal(t, "", reconcile.ExtractDate(""))
}

func TestExtractTime(t *testing.T) {
	assert.Equal(t, "08:15", reconcile.ExtractTime("2026-03-02 08:15:00"))
	assert.Equal(t, "17:45", reconcile.ExtractTime("17:45"))
	assert.Equal(t, "", reconcile.ExtractTime("no time here"))
}

func TestTimeToMinutes(t *testing.T) {
	mins, ok := reconcile.TimeToMinutes("08:30")
	assert.True(t, ok)
	assert.Equal(t, 510, mins)

	_, ok = reconcile.TimeToMinutes("24:00")
	assert.False(t, ok)
	_, ok = reconcile.TimeToMinutes("08:60")
	assert.False(t, ok)
	_, ok = reconcile.TimeToMinutes("")
	assert.False(t, ok)
}

func TestDateRange(t *testing.T) {
	dates := reconcile.DateRange("2026-02-27", "2026-03-02")
	assert.Equal(t, []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}, dates)

	assert.Equal(t, []string{"2026-03-02"}, reconcile.DateRange("2026-03-02", "2026-03-02"))
	assert.Nil(t, reconcile.DateRange("2026-03-02", "2026-03-01"))
	assert.Nil(t, reconcile.DateRange("bad", "2026-03-01"))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, reconcile.IsWeekend("2026-02-28"))  // Saturday
	assert.True(t, reconcile.IsWeekend("2026-03-01"))  // Sunday
	assert.False(t, reconcile.IsWeekend("2026-03-02")) // Monday
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, reconcile.StatusApproved, reconcile.NormalizeStatus("approved"))
	assert.Equal(t, reconcile.StatusApproved, reconcile.NormalizeStatus("  APPROVED "))
	assert.Equal(t, reconcile.StatusReturned, reconcile.NormalizeStatus("Returned"))
	assert.Equal(t, reconcile.StatusCancelled, reconcile.NormalizeStatus("canceled"))
	assert.Equal(t, reconcile.StatusForApproval, reconcile.NormalizeStatus("For Approval"))
	assert.Equal(t, reconcile.StatusForApproval, reconcile.NormalizeStatus("pending"))

	// unknown values must never fail open to Approved
	assert.Equal(t, reconcile.StatusForApproval, reconcile.NormalizeStatus("garbage"))
	assert.Equal(t, reconcile.StatusForApproval, reconcile.NormalizeStatus(""))
}
