package dtr

import (
	"context"
	"errors"
	"time"

	dtrerrors "go-dtr/internal/dtr/errors"
	"go-dtr/internal/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Feed interfaces cover exactly what one reconciliation run reads from
// each collaborator package.
type (
	ScheduleFeed interface {
		ResolveForEmployee(ctx context.Context, employeeID string) (*reconcile.ShiftSchedule, error)
	}
	PunchFeed interface {
		ListForRange(ctx context.Context, employeeID, from, to string) ([]reconcile.RawPunch, error)
	}
	LocatorFeed interface {
		ListForRange(ctx context.Context, employeeID, from, to string) ([]reconcile.Locator, error)
	}
	LeaveFeed interface {
		ListForRange(ctx context.Context, employeeID, from, to string) ([]reconcile.Leave, error)
	}
	TravelFeed interface {
		ListForRange(ctx context.Context, from, to string) ([]reconcile.Travel, error)
	}
	HolidayFeed interface {
		ListForRange(ctx context.Context, from, to string) ([]reconcile.Holiday, error)
	}
	CdoFeed interface {
		ListForRange(ctx context.Context, employeeID, from, to string) ([]reconcile.CdoUsage, error)
	}
	FixLogFeed interface {
		ListForRange(ctx context.Context, employeeID, from, to string) ([]reconcile.FixLog, error)
	}
	UserResolver interface {
		DtrUserID(ctx context.Context, employeeID string) (string, error)
	}
)

type Feeds struct {
	Schedule ScheduleFeed
	Punches  PunchFeed
	Locators LocatorFeed
	Leaves   LeaveFeed
	Travels  TravelFeed
	Holidays HolidayFeed
	Cdo      CdoFeed
	FixLogs  FixLogFeed
	Users    UserResolver
}

//go:generate mockgen -source=dtr_service.go -destination=mock/dtr_service_mock.go -package=mock
type Service interface {
	GetTimesheet(ctx context.Context, employeeID, from, to string) (TimesheetResponse, error)
}

type service struct {
	feeds  Feeds
	cache  *Cache
	engine *reconcile.Engine
	now    func() time.Time
	logger *zap.Logger
}

func NewService(feeds Feeds, cache *Cache, logger ...*zap.Logger) Service {
	l := zap.L().Named("dtr.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dtr.service")
	}
	return &service{
		feeds:  feeds,
		cache:  cache,
		engine: reconcile.NewEngine(),
		now:    time.Now,
		logger: l,
	}
}

func validRange(from, to string) bool {
	if _, err := time.Parse("2006-01-02", from); err != nil {
		return false
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		return false
	}
	return from <= to
}

func (s *service) GetTimesheet(ctx context.Context, employeeID, from, to string) (TimesheetResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return TimesheetResponse{}, dtrerrors.ErrInvalidEmployeeID
	}
	if !validRange(from, to) {
		return TimesheetResponse{}, dtrerrors.ErrInvalidDateRange
	}

	version := int64(0)
	if s.cache != nil {
		v, err := s.cache.Version(ctx, employeeID)
		if err != nil {
			s.logger.Warn("timesheet cache version read failed",
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
		} else {
			version = v
			if cached, ok := s.cache.GetTimesheet(ctx, employeeID, from, to, version); ok {
				s.logger.Debug("timesheet cache hit",
					zap.String("employee_id", employeeID),
					zap.String("from", from),
					zap.String("to", to),
				)
				return *cached, nil
			}
		}
	}

	in, err := s.gatherInputs(ctx, employeeID, from, to)
	if err != nil {
		return TimesheetResponse{}, err
	}

	days, err := s.engine.Reconcile(in)
	if err != nil {
		if errors.Is(err, reconcile.ErrNoScheduleAssigned) {
			return TimesheetResponse{}, dtrerrors.ErrNoScheduleAssigned
		}
		return TimesheetResponse{}, err
	}

	resp := buildResponse(employeeID, from, to, days)
	if s.cache != nil {
		s.cache.SetTimesheet(ctx, employeeID, from, to, version, resp)
	}

	s.logger.Info("timesheet reconciled",
		zap.String("employee_id", employeeID),
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("days", len(resp.Days)),
	)
	return resp, nil
}

func (s *service) gatherInputs(ctx context.Context, employeeID, from, to string) (reconcile.Inputs, error) {
	in := reconcile.Inputs{
		EmployeeID: employeeID,
		From:       from,
		To:         to,
		Today:      s.now().UTC().Format("2006-01-02"),
	}

	schedule, err := s.feeds.Schedule.ResolveForEmployee(ctx, employeeID)
	if err != nil {
		return in, err
	}
	in.Schedule = schedule
	if schedule == nil {
		// the engine reports the condition, no point fetching feeds
		return in, nil
	}

	userID, err := s.feeds.Users.DtrUserID(ctx, employeeID)
	if err != nil {
		return in, err
	}
	in.UserID = userID

	if in.Punches, err = s.feeds.Punches.ListForRange(ctx, employeeID, from, to); err != nil {
		return in, err
	}
	if in.Locators, err = s.feeds.Locators.ListForRange(ctx, employeeID, from, to); err != nil {
		return in, err
	}
	if in.Leaves, err = s.feeds.Leaves.ListForRange(ctx, employeeID, from, to); err != nil {
		return in, err
	}
	if in.Travels, err = s.feeds.Travels.ListForRange(ctx, from, to); err != nil {
		return in, err
	}
	if in.Holidays, err = s.feeds.Holidays.ListForRange(ctx, from, to); err != nil {
		return in, err
	}
	if in.CdoUsages, err = s.feeds.Cdo.ListForRange(ctx, employeeID, from, to); err != nil {
		return in, err
	}
	if in.FixLogs, err = s.feeds.FixLogs.ListForRange(ctx, employeeID, from, to); err != nil {
		return in, err
	}
	return in, nil
}

func buildResponse(employeeID, from, to string, days []reconcile.DayResult) TimesheetResponse {
	resp := TimesheetResponse{
		EmployeeID: employeeID,
		From:       from,
		To:         to,
		Days:       make([]DayRow, 0, len(days)),
	}

	for _, d := range days {
		row := DayRow{
			Date:        d.Date,
			AmIn:        slotView(d.Slots.AmIn),
			AmOut:       slotView(d.Slots.AmOut),
			PmIn:        slotView(d.Slots.PmIn),
			PmOut:       slotView(d.Slots.PmOut),
			Display: SlotDisplayView{
				AmIn:  d.Display.AmIn,
				AmOut: d.Display.AmOut,
				PmIn:  d.Display.PmIn,
				PmOut: d.Display.PmOut,
			},
			LateMinutes: d.LateMinutes,
			DayCredit:   d.DayCredit,
			Remarks:     make([]RemarkView, 0, len(d.Remarks)),
			Flags: FlagsView{
				IsWeekend:  d.Flags.IsWeekend,
				IsHoliday:  d.Flags.IsHoliday,
				HasLeave:   d.Flags.HasLeave,
				HasTravel:  d.Flags.HasTravel,
				HasLocator: d.Flags.HasLocator,
				HasCdo:     d.Flags.HasCdo,
				IsAbsent:   d.Flags.IsAbsent,
			},
		}
		for _, r := range d.Remarks {
			row.Remarks = append(row.Remarks, RemarkView{
				Type: string(r.Type),
				Text: r.Text,
				Ref:  r.Ref,
			})
		}
		if d.PendingFixLog != nil {
			row.PendingFixLog = &PendingFixLogView{
				AmIn:         d.PendingFixLog.AmIn,
				AmOut:        d.PendingFixLog.AmOut,
				PmIn:         d.PendingFixLog.PmIn,
				PmOut:        d.PendingFixLog.PmOut,
				ApproverName: d.PendingFixLog.ApproverName,
			}
		}

		resp.Totals.LateMinutes += d.LateMinutes
		resp.Totals.DayCredits += d.DayCredit
		if d.Flags.IsAbsent {
			resp.Totals.DaysAbsent++
		}
		resp.Days = append(resp.Days, row)
	}
	return resp
}

func slotView(v reconcile.SlotValue) *SlotView {
	if !v.Filled() {
		return nil
	}
	return &SlotView{Time: v.Time, Provenance: string(v.Provenance)}
}
