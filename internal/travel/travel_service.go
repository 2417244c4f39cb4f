package travel

import (
	"context"
	"time"

	"go-dtr/internal/reconcile"
	travelerrors "go-dtr/internal/travel/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=travel_service.go -destination=mock/travel_service_mock.go -package=mock
type Service interface {
	ListForRange(ctx context.Context, from, to string) ([]reconcile.Travel, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("travel.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("travel.service")
	}
	return &service{repo: repo, logger: l}
}

// ListForRange feeds reconciliation with approved orders touching the
// range, participants included so the engine can match the employee.
func (s *service) ListForRange(ctx context.Context, from, to string) ([]reconcile.Travel, error) {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, travelerrors.ErrInvalidDateFormat
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, travelerrors.ErrInvalidDateFormat
	}

	travels, err := s.repo.FindApprovedByRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	feed := make([]reconcile.Travel, 0, len(travels))
	for _, t := range travels {
		entry := reconcile.Travel{
			RefNo:  t.TravelNo,
			Status: reconcile.NormalizeStatus(t.Status),
		}
		for _, d := range t.Dates {
			entry.Dates = append(entry.Dates, d.TravelDate.Format("2006-01-02"))
		}
		for _, p := range t.Participants {
			if p.EmployeeID != nil {
				entry.ParticipantEmployeeIDs = append(entry.ParticipantEmployeeIDs, p.EmployeeID.String())
			}
			if p.DtrUserID != "" {
				entry.ParticipantUserIDs = append(entry.ParticipantUserIDs, p.DtrUserID)
			}
		}
		feed = append(feed, entry)
	}
	return feed, nil
}
