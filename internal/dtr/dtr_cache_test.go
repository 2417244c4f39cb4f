package dtr_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-dtr/internal/dtr"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTimesheet() dtr.TimesheetResponse {
	return dtr.TimesheetResponse{
		EmployeeID: "emp-1",
		From:       "2026-03-02",
		To:         "2026-03-06",
		Days: []dtr.DayRow{
			{
				Date:      "2026-03-02",
				AmIn:      &dtr.SlotView{Time: "07:52", Provenance: "raw"},
				DayCredit: 1.0,
				Remarks:   []dtr.RemarkView{},
			},
		},
		Totals: dtr.TimesheetTotals{DayCredits: 1.0},
	}
}

func TestCache_Version(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key reads as zero", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		cache := dtr.NewCache(rdb)

		mock.ExpectGet("dtr:ver:emp-1").RedisNil()

		v, err := cache.Version(ctx, "emp-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bump increments", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		cache := dtr.NewCache(rdb)

		mock.ExpectIncr("dtr:ver:emp-1").SetVal(3)

		err := cache.BumpVersion(ctx, "emp-1")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCache_Timesheet(t *testing.T) {
	ctx := context.Background()
	key := "dtr:sheet:emp-1:2026-03-02:2026-03-06:v2"

	t.Run("round trip", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		cache := dtr.NewCache(rdb)

		sheet := sampleTimesheet()
		raw, err := json.Marshal(sheet)
		require.NoError(t, err)

		mock.ExpectSet(key, raw, 10*time.Minute).SetVal("OK")
		mock.ExpectGet(key).SetVal(string(raw))

		cache.SetTimesheet(ctx, "emp-1", "2026-03-02", "2026-03-06", 2, sheet)
		got, ok := cache.GetTimesheet(ctx, "emp-1", "2026-03-02", "2026-03-06", 2)

		require.True(t, ok)
		assert.Equal(t, sheet, *got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		cache := dtr.NewCache(rdb)

		mock.ExpectGet(key).RedisNil()

		_, ok := cache.GetTimesheet(ctx, "emp-1", "2026-03-02", "2026-03-06", 2)

		assert.False(t, ok)
	})

	t.Run("corrupt payload reads as miss", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		cache := dtr.NewCache(rdb)

		mock.ExpectGet(key).SetVal("{not-json")

		_, ok := cache.GetTimesheet(ctx, "emp-1", "2026-03-02", "2026-03-06", 2)

		assert.False(t, ok)
	})
}
