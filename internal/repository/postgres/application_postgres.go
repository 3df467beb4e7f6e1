package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"siteapi/internal/model"
	"siteapi/internal/repository"
)

// ApplicationPostgres is a PostgreSQL implementation of repository.ApplicationRepository.
type ApplicationPostgres struct {
	db *sql.DB
}

func NewApplicationPostgres(db *sql.DB) *ApplicationPostgres {
	return &ApplicationPostgres{db: db}
}

var _ repository.ApplicationRepository = (*ApplicationPostgres)(nil)

func (r *ApplicationPostgres) Create(ctx context.Context, a *model.Application) (int64, error) {
	const q = `
		INSERT INTO applications (first_name, last_name, email, phone, position, message, cv_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, q,
		a.FirstName,
		a.LastName,
		a.Email,
		a.Phone,
		a.Position,
		a.Message,
		a.CVPath,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ApplicationPostgres) List(ctx context.Context, pq repository.ListQuery) ([]model.Application, error) {
	q := `
		SELECT id, first_name, last_name, email, phone, position, message, cv_path, status, created_at
		FROM applications`
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

	items := make([]model.Application, 0)
	for rows.Next() {
		var a model.Application
		if err := rows.Scan(
			&a.ID,
			&a.FirstName,
			&a.LastName,
			&a.Email,
			&a.Phone,
			&a.Position,
			&a.Message,
			&a.CVPath,
			&a.Status,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ApplicationPostgres) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	const q = `UPDATE applications SET status = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, q, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ApplicationPostgres) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM applications WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
