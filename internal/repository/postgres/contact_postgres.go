package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"siteapi/internal/model"
	"siteapi/internal/repository"
)

// ContactPostgres is a PostgreSQL implementation of repository.ContactRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ContactPostgres struct {
	db *sql.DB
}

func NewContactPostgres(db *sql.DB) *ContactPostgres {
	return &ContactPostgres{db: db}
}

var _ repository.ContactRepository = (*ContactPostgres)(nil)

// Create inserts a new contact row. Status and created_at are left to the
// database defaults so submissions always start in the "new" state.
func (r *ContactPostgres) Create(ctx context.Context, c *model.Contact) (int64, error) {
	const q = `
		INSERT INTO contacts (full_name, email, company, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, q,
		c.FullName,
		c.Email,
		c.Company,
		c.Subject,
		c.Message,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// List returns contacts newest-first with an optional status filter.
func (r *ContactPostgres) List(ctx context.Context, pq repository.ListQuery) ([]model.Contact, error) {
	q := `
		SELECT id, full_name, email, company, subject, message, status, created_at
		FROM contacts`
	args := make([]any, 0, 2)
	if pq.Status != "" {
		q += ` WHERE status = $1`
		args = append(args, pq.Status)
	}
	q += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d`, len(args)+1)
	args = append(args, pq.Limit)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Contact, 0)
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(
			&c.ID,
			&c.FullName,
			&c.Email,
			&c.Company,
			&c.Subject,
			&c.Message,
			&c.Status,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus overwrites the status column unconditionally and reports rows
// affected. A missing id is not an error, it affects zero rows.
func (r *ContactPostgres) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	const q = `UPDATE contacts SET status = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, q, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes a contact by id and reports rows affected.
func (r *ContactPostgres) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM contacts WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
