package repository

import (
	"context"
	"time"

	"siteapi/internal/model"
)

// StatsRepository exposes the independent count queries the stats aggregator
// composes. Every call hits the store; nothing is cached.
type StatsRepository interface {
	CountContacts(ctx context.Context) (int, error)
	CountApplications(ctx context.Context) (int, error)
	ContactsByStatus(ctx context.Context) ([]model.StatusCount, error)
	ApplicationsByStatus(ctx context.Context) ([]model.StatusCount, error)
	// CountContactsSince counts contacts created at or after the given instant.
	CountContactsSince(ctx context.Context, since time.Time) (int, error)
}
