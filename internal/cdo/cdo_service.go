package cdo

import (
	"context"
	"time"

	cdoerrors "go-dtr/internal/cdo/errors"
	"go-dtr/internal/reconcile"

	"go.uber.org/zap"
)

//go:generate mockgen -source=cdo_service.go -destination=mock/cdo_service_mock.go -package=mock
type Service interface {
	ListForRange(ctx context.Context, employeeID, from, to string) ([]reconcile.CdoUsage, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("cdo.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cdo.service")
	}
	return &service{repo: repo, logger: l}
}

// ListForRange feeds reconciliation with approved usages.
func (s *service) ListForRange(ctx context.Context, employeeID, from, to string) ([]reconcile.CdoUsage, error) {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, cdoerrors.ErrInvalidDateFormat
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, cdoerrors.ErrInvalidDateFormat
	}

	usages, err := s.repo.FindApprovedByEmployeeAndRange(ctx, employeeID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	feed := make([]reconcile.CdoUsage, 0, len(usages))
	for _, u := range usages {
		feed = append(feed, reconcile.CdoUsage{
			Date:   u.UseDate.Format("2006-01-02"),
			RefNo:  u.CdoNo,
			Status: reconcile.NormalizeStatus(u.Status),
		})
	}
	return feed, nil
}
