package repository

import (
	"context"

	"siteapi/internal/model"
)

// UserRepository defines data access for admin users using SQL queries only.
type UserRepository interface {
	// FindByUsername returns the user with the given username.
	// Returns sql.ErrNoRows (wrapped or not) when no such user exists.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
