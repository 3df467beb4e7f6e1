package repository

import (
	"context"

	"siteapi/internal/model"
)

// OpportunityRepository defines data access for job opportunities.
type OpportunityRepository interface {
	// Create inserts a new opportunity row and returns the server-assigned id.
	Create(ctx context.Context, o *model.JobOpportunity) (int64, error)

	// List returns opportunities newest-first. When publishedOnly is true only
	// rows with is_published = true are returned.
	List(ctx context.Context, publishedOnly bool) ([]model.JobOpportunity, error)

	// Update overwrites every editable column of a row, bumps updated_at and
	// reports rows affected.
	Update(ctx context.Context, id int64, o *model.JobOpportunity) (int64, error)

	// Delete removes a row by id and reports rows affected.
	Delete(ctx context.Context, id int64) (int64, error)

	// TogglePublish flips the published flag in a single statement and returns
	// the new value. Returns sql.ErrNoRows when the id does not exist.
	TogglePublish(ctx context.Context, id int64) (bool, error)
}
