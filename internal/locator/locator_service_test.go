package locator_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-dtr/internal/locator"
	locatorerrors "go-dtr/internal/locator/errors"
	"go-dtr/internal/messaging/kafka"
	"go-dtr/internal/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocatorRepository struct {
	withTxFn         func(tx *sql.Tx) locator.Repository
	createFn         func(ctx context.Context, l *locator.Locator) error
	findAllFn        func(ctx context.Context, employeeID string) ([]locator.Locator, error)
	findByIDFn       func(ctx context.Context, id string) (*locator.Locator, error)
	updateFn         func(ctx context.Context, l *locator.Locator) error
	hasFilingFn      func(ctx context.Context, employeeID string, date time.Time) (bool, error)
	findByRangeFn    func(ctx context.Context, employeeID string, from, to time.Time) ([]locator.Locator, error)
}

func (f *fakeLocatorRepository) WithTx(tx *sql.Tx) locator.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLocatorRepository) Create(ctx context.Context, l *locator.Locator) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLocatorRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]locator.Locator, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeLocatorRepository) FindByID(ctx context.Context, id string) (*locator.Locator, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeLocatorRepository) Update(ctx context.Context, l *locator.Locator) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLocatorRepository) HasFilingOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	if f.hasFilingFn != nil {
		return f.hasFilingFn(ctx, employeeID, date)
	}
	return false, nil
}

func (f *fakeLocatorRepository) FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]locator.Locator, error) {
	if f.findByRangeFn != nil {
		return f.findByRangeFn(ctx, employeeID, from, to)
	}
	return nil, nil
}

type fakeCounterRepository struct {
	getNextValueFn func(ctx context.Context, counterType, period string) (int64, error)
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, counterType, period string) (int64, error) {
	if f.getNextValueFn != nil {
		return f.getNextValueFn(ctx, counterType, period)
	}
	return 1, nil
}

type fakeOutboxRepository struct {
	created  []kafka.OutboxEvent
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type fakeCacheInvalidator struct {
	bumped []string
}

func (f *fakeCacheInvalidator) BumpVersion(ctx context.Context, employeeID string) error {
	f.bumped = append(f.bumped, employeeID)
	return nil
}

type locatorServiceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  locator.Service
	repo     *fakeLocatorRepository
	counters *fakeCounterRepository
	outbox   *fakeOutboxRepository
	cache    *fakeCacheInvalidator
}

func setupLocatorServiceTest(t *testing.T) *locatorServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeLocatorRepository{}
	counters := &fakeCounterRepository{}
	outbox := &fakeOutboxRepository{}
	cache := &fakeCacheInvalidator{}
	svc := locator.NewService(db, repo, counters, outbox, cache)

	return &locatorServiceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  svc,
		repo:     repo,
		counters: counters,
		outbox:   outbox,
		cache:    cache,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestLocatorService_File(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupLocatorServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		req := locator.FileLocatorRequest{
			LocatorDate:   "2026-03-02",
			DepartureTime: "07:30",
			ArrivalTime:   "09:00",
			Destination:   "Provincial Capitol",
			Purpose:       "Document submission",
		}

		deps.counters.getNextValueFn = func(ctx context.Context, counterType, period string) (int64, error) {
			assert.Equal(t, "locator", counterType)
			assert.Equal(t, "2026", period)
			return 7, nil
		}
		deps.repo.createFn = func(ctx context.Context, l *locator.Locator) error {
			assert.Equal(t, uuid.MustParse(employeeID), l.EmployeeID)
			assert.Equal(t, uuid.MustParse(actorID), l.FiledBy)
			assert.Equal(t, "LOC-2026-0007", l.LocatorNo)
			assert.Equal(t, locator.StatusForApproval, l.Status)
			assert.Equal(t, "07:30", l.DepartureTime)
			return nil
		}

		resp, err := deps.service.File(ctx, employeeID, actorID, req)

		assert.NoError(t, err)
		assert.Equal(t, "LOC-2026-0007", resp.LocatorNo)
		assert.Equal(t, "2026-03-02", resp.LocatorDate)
		assert.Equal(t, locator.StatusForApproval, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative duplicate filing", func(t *testing.T) {
		deps := setupLocatorServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.hasFilingFn = func(ctx context.Context, eid string, date time.Time) (bool, error) {
			return true, nil
		}

		_, err := deps.service.File(ctx, employeeID, actorID, locator.FileLocatorRequest{
			LocatorDate:   "2026-03-02",
			DepartureTime: "07:30",
			Destination:   "Provincial Capitol",
		})

		assert.ErrorIs(t, err, locatorerrors.ErrDuplicateFiling)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative missing time window", func(t *testing.T) {
		deps := setupLocatorServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.File(ctx, employeeID, actorID, locator.FileLocatorRequest{
			LocatorDate: "2026-03-02",
			Destination: "Provincial Capitol",
		})

		assert.ErrorIs(t, err, locatorerrors.ErrMissingTimeWindow)
	})

	t.Run("negative bad time format", func(t *testing.T) {
		deps := setupLocatorServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.File(ctx, employeeID, actorID, locator.FileLocatorRequest{
			LocatorDate:   "2026-03-02",
			DepartureTime: "7am",
			Destination:   "Provincial Capitol",
		})

		assert.ErrorIs(t, err, locatorerrors.ErrInvalidTimeFormat)
	})

	t.Run("negative bad date", func(t *testing.T) {
		deps := setupLocatorServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.File(ctx, employeeID, actorID, locator.FileLocatorRequest{
			LocatorDate:   "03/02/2026",
			DepartureTime: "07:30",
			Destination:   "Provincial Capitol",
		})

		assert.ErrorIs(t, err, locatorerrors.ErrInvalidDateFormat)
	})
}

func TestLocatorService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	locatorID := uuid.New()
	employeeID := uuid.New()

	pending := func() *locator.Locator {
		return &locator.Locator{
			ID:            locatorID,
			EmployeeID:    employeeID,
			LocatorNo:     "LOC-2026-0007",
			LocatorDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			DepartureTime: "07:30",
			ArrivalTime:   "09:00",
			Status:        locator.StatusForApproval,
		}
	}

	t.Run("approve publishes recompute and bumps cache", func(t *testing.T) {
		deps := setupLocatorServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*locator.Locator, error) {
			assert.Equal(t, locatorID.String(), id)
			return pending(), nil
		}
		deps.repo.updateFn = func(ctx context.Context, l *locator.Locator) error {
			assert.Equal(t, locator.StatusApproved, l.Status)
			assert.NotNil(t, l.DecidedBy)
			assert.NotNil(t, l.DecidedAt)
			return nil
		}

		resp, err := deps.service.UpdateStatus(ctx, actorID, locatorID.String(), locator.UpdateLocatorStatusRequest{
			Status: locator.StatusApproved,
		})

		assert.NoError(t, err)
		assert.Equal(t, locator.StatusApproved, resp.Status)
		require.Len(t, deps.outbox.created, 1)
		assert.Equal(t, "dtr.timesheet.recomputed.v1", deps.outbox.created[0].Topic)
		assert.Equal(t, locatorID.String(), deps.outbox.created[0].AggregateID)
		assert.Equal(t, []string{employeeID.String()}, deps.cache.bumped)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("return requires a reason", func(t *testing.T) {
		deps := setupLocatorServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*locator.Locator, error) {
			return pending(), nil
		}

		_, err := deps.service.UpdateStatus(ctx, actorID, locatorID.String(), locator.UpdateLocatorStatusRequest{
			Status: locator.StatusReturned,
		})

		assert.ErrorIs(t, err, locatorerrors.ErrReturnReasonRequired)
		assert.Empty(t, deps.outbox.created)
		assert.Empty(t, deps.cache.bumped)
	})

	t.Run("return does not touch the cache", func(t *testing.T) {
		deps := setupLocatorServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*locator.Locator, error) {
			return pending(), nil
		}
		reason := "destination does not match itinerary"

		resp, err := deps.service.UpdateStatus(ctx, actorID, locatorID.String(), locator.UpdateLocatorStatusRequest{
			Status:       locator.StatusReturned,
			ReturnReason: &reason,
		})

		assert.NoError(t, err)
		assert.Equal(t, locator.StatusReturned, resp.Status)
		assert.Empty(t, deps.outbox.created)
		assert.Empty(t, deps.cache.bumped)
	})

	t.Run("negative invalid transition", func(t *testing.T) {
		deps := setupLocatorServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*locator.Locator, error) {
			l := pending()
			l.Status = locator.StatusReturned
			return l, nil
		}

		_, err := deps.service.UpdateStatus(ctx, actorID, locatorID.String(), locator.UpdateLocatorStatusRequest{
			Status: locator.StatusApproved,
		})

		assert.ErrorIs(t, err, locatorerrors.ErrInvalidStatusTransition)
	})

	t.Run("cancel an approved filing publishes recompute", func(t *testing.T) {
		deps := setupLocatorServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*locator.Locator, error) {
			l := pending()
			l.Status = locator.StatusApproved
			return l, nil
		}

		resp, err := deps.service.UpdateStatus(ctx, actorID, locatorID.String(), locator.UpdateLocatorStatusRequest{
			Status: locator.StatusCancelled,
		})

		assert.NoError(t, err)
		assert.Equal(t, locator.StatusCancelled, resp.Status)
		require.Len(t, deps.outbox.created, 1)
		assert.Equal(t, []string{employeeID.String()}, deps.cache.bumped)
	})
}

func TestLocatorService_ListForRange(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupLocatorServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByRangeFn = func(ctx context.Context, eid string, from, to time.Time) ([]locator.Locator, error) {
		assert.Equal(t, employeeID.String(), eid)
		return []locator.Locator{
			{
				LocatorNo:     "LOC-2026-0007",
				LocatorDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				DepartureTime: "07:30",
				ArrivalTime:   "09:00",
				Status:        "approved",
			},
			{
				LocatorNo:   "LOC-2026-0008",
				LocatorDate: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
				ArrivalTime: "16:00",
				Status:      "something odd",
			},
		}, nil
	}

	feed, err := deps.service.ListForRange(ctx, employeeID.String(), "2026-03-01", "2026-03-07")

	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "2026-03-02", feed[0].Date)
	assert.Equal(t, reconcile.StatusApproved, feed[0].Status)
	// unknown statuses normalize to For Approval, never Approved
	assert.Equal(t, reconcile.StatusForApproval, feed[1].Status)
}
