package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"siteapi/internal/model"
	"siteapi/internal/repository"
)

// recentWindow is the trailing window for the recent-contacts count.
const recentWindow = 7 * 24 * time.Hour

// Stats is the dashboard aggregate. Field names match the wire format the
// admin UI consumes.
type Stats struct {
	TotalContacts        int                 `json:"totalContacts"`
	TotalApplications    int                 `json:"totalApplications"`
	RecentContacts       int                 `json:"recentContacts"`
	ContactsByStatus     []model.StatusCount `json:"contactsByStatus"`
	ApplicationsByStatus []model.StatusCount `json:"applicationsByStatus"`
}

// StatsService computes derived counts on demand. Nothing is cached; every
// call recomputes from the current store state.
type StatsService interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type statsService struct {
	repo repository.StatsRepository

	now func() time.Time
}

func NewStatsService(repo repository.StatsRepository) StatsService {
	return &statsService{repo: repo, now: time.Now}
}

// GetStats runs the five independent count queries concurrently and fails as
// a whole if any of them fails.
func (s *statsService) GetStats(ctx context.Context) (*Stats, error) {
	since := s.now().Add(-recentWindow)

	var stats Stats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.repo.CountContacts(ctx)
		stats.TotalContacts = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountApplications(ctx)
		stats.TotalApplications = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountContactsSince(ctx, since)
		stats.RecentContacts = n
		return err
	})
	g.Go(func() error {
		byStatus, err := s.repo.ContactsByStatus(ctx)
		stats.ContactsByStatus = byStatus
		return err
	})
	g.Go(func() error {
		byStatus, err := s.repo.ApplicationsByStatus(ctx)
		stats.ApplicationsByStatus = byStatus
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
