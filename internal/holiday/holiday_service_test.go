package holiday_test

import (
	"context"
	"testing"
	"time"

	"go-dtr/internal/holiday"
	holidayerrors "go-dtr/internal/holiday/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayRepository struct {
	FindAllFn      func(ctx context.Context) ([]holiday.Holiday, error)
	FindForRangeFn func(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error)
}

func (f *fakeHolidayRepository) FindAll(ctx context.Context) ([]holiday.Holiday, error) {
	return f.FindAllFn(ctx)
}

func (f *fakeHolidayRepository) FindForRange(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	return f.FindForRangeFn(ctx, from, to)
}

func dateOf(value string) *time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return &t
}

func TestHolidayService_GetAll(t *testing.T) {
	ctx := context.Background()

	repo := &fakeHolidayRepository{
		FindAllFn: func(ctx context.Context) ([]holiday.Holiday, error) {
			return []holiday.Holiday{
				{ID: uuid.New(), Name: "Independence Day", Category: "Regular", MonthDay: "06-12", Recurring: true},
				{ID: uuid.New(), Name: "Special Election", Category: "Special", HolidayDate: dateOf("2026-05-11")},
			}, nil
		},
	}
	svc := holiday.NewService(repo)

	resp, err := svc.GetAll(ctx)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "Independence Day", resp[0].Name)
	assert.True(t, resp[0].Recurring)
	assert.Empty(t, resp[0].Date)
	assert.Equal(t, "2026-05-11", resp[1].Date)
	assert.False(t, resp[1].Recurring)
}

func TestHolidayService_ListForRange(t *testing.T) {
	ctx := context.Background()

	t.Run("maps one-off and recurring rows to the feed", func(t *testing.T) {
		repo := &fakeHolidayRepository{
			FindForRangeFn: func(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
				assert.Equal(t, "2026-06-01", from.Format("2006-01-02"))
				assert.Equal(t, "2026-06-30", to.Format("2006-01-02"))
				return []holiday.Holiday{
					{Name: "Independence Day", Category: "Regular", MonthDay: "06-12", Recurring: true},
					{Name: "Local Fiesta", Category: "Special", HolidayDate: dateOf("2026-06-24")},
				}, nil
			},
		}
		svc := holiday.NewService(repo)

		feed, err := svc.ListForRange(ctx, "2026-06-01", "2026-06-30")

		require.NoError(t, err)
		require.Len(t, feed, 2)
		assert.Equal(t, "06-12", feed[0].MonthDay)
		assert.True(t, feed[0].Recurring)
		assert.Equal(t, "2026-06-24", feed[1].Date)
		assert.False(t, feed[1].Recurring)
	})

	t.Run("negative malformed range", func(t *testing.T) {
		svc := holiday.NewService(&fakeHolidayRepository{})

		_, err := svc.ListForRange(ctx, "06/01/2026", "2026-06-30")

		assert.ErrorIs(t, err, holidayerrors.ErrInvalidDateFormat)
	})
}
