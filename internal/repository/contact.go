package repository

import (
	"context"

	"siteapi/internal/model"
)

// ContactRepository defines data access for contact messages.
// No business logic here — strictly persistence operations.
type ContactRepository interface {
	// Create inserts a new contact row. Status and created_at come from the
	// database defaults. Returns the server-assigned id.
	Create(ctx context.Context, c *model.Contact) (int64, error)

	// List returns contacts newest-first, optionally filtered by status,
	// capped at q.Limit rows.
	List(ctx context.Context, q ListQuery) ([]model.Contact, error)

	// UpdateStatus overwrites the status of a row and reports how many rows
	// were affected (0 when the id does not exist).
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)

	// Delete removes a row by id and reports rows affected.
	Delete(ctx context.Context, id int64) (int64, error)
}
