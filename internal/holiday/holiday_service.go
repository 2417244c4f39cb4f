package holiday

import (
	"context"
	"time"

	holidayerrors "go-dtr/internal/holiday/errors"
	"go-dtr/internal/reconcile"

	"go.uber.org/zap"
)

type HolidayResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	Date      string `json:"date,omitempty"`
	MonthDay  string `json:"month_day,omitempty"`
	Recurring bool   `json:"recurring"`
}

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]HolidayResponse, error)
	ListForRange(ctx context.Context, from, to string) ([]reconcile.Holiday, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]HolidayResponse, error) {
	holidays, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		entry := HolidayResponse{
			ID:        h.ID.String(),
			Name:      h.Name,
			Category:  h.Category,
			MonthDay:  h.MonthDay,
			Recurring: h.Recurring,
		}
		if h.HolidayDate != nil {
			entry.Date = h.HolidayDate.Format("2006-01-02")
		}
		resp = append(resp, entry)
	}
	return resp, nil
}

func (s *service) ListForRange(ctx context.Context, from, to string) ([]reconcile.Holiday, error) {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, holidayerrors.ErrInvalidDateFormat
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, holidayerrors.ErrInvalidDateFormat
	}

	holidays, err := s.repo.FindForRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	feed := make([]reconcile.Holiday, 0, len(holidays))
	for _, h := range holidays {
		entry := reconcile.Holiday{
			MonthDay:  h.MonthDay,
			Recurring: h.Recurring,
			Name:      h.Name,
			Category:  h.Category,
		}
		if h.HolidayDate != nil {
			entry.Date = h.HolidayDate.Format("2006-01-02")
		}
		feed = append(feed, entry)
	}
	return feed, nil
}
