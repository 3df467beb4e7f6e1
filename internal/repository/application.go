package repository

import (
	"context"

	"siteapi/internal/model"
)

// ApplicationRepository defines data access for job applications.
type ApplicationRepository interface {
	// Create inserts a new application row, including the CV path when one was
	// uploaded. Returns the server-assigned id.
	Create(ctx context.Context, a *model.Application) (int64, error)

	// List returns applications newest-first, optionally filtered by status.
	List(ctx context.Context, q ListQuery) ([]model.Application, error)

	// UpdateStatus overwrites the status of a row and reports rows affected.
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)

	// Delete removes a row by id and reports rows affected. The stored CV file
	// is not touched.
	Delete(ctx context.Context, id int64) (int64, error)
}
