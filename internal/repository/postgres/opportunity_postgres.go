package postgres

import (
	"context"
	"database/sql"

	"siteapi/internal/model"
	"siteapi/internal/repository"
)

// OpportunityPostgres is a PostgreSQL implementation of repository.OpportunityRepository.
type OpportunityPostgres struct {
	db *sql.DB
}

func NewOpportunityPostgres(db *sql.DB) *OpportunityPostgres {
	return &OpportunityPostgres{db: db}
}

var _ repository.OpportunityRepository = (*OpportunityPostgres)(nil)

func (r *OpportunityPostgres) Create(ctx context.Context, o *model.JobOpportunity) (int64, error) {
	const q = `
		INSERT INTO job_opportunities (title, location, contract_type, description, requirements, salary_range, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, q,
		o.Title,
		o.Location,
		o.ContractType,
		o.Description,
		o.Requirements,
		o.SalaryRange,
		o.IsPublished,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *OpportunityPostgres) List(ctx context.Context, publishedOnly bool) ([]model.JobOpportunity, error) {
	q := `
		SELECT id, title, location, contract_type, description, requirements, salary_range, is_published, created_at, updated_at
		FROM job_opportunities`
	if publishedOnly {
		q += ` WHERE is_published = TRUE`
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.JobOpportunity, 0)
	for rows.Next() {
		var o model.JobOpportunity
		if err := rows.Scan(
			&o.ID,
			&o.Title,
			&o.Location,
			&o.ContractType,
			&o.Description,
			&o.Requirements,
			&o.SalaryRange,
			&o.IsPublished,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update overwrites every editable column and bumps updated_at.
func (r *OpportunityPostgres) Update(ctx context.Context, id int64, o *model.JobOpportunity) (int64, error) {
	const q = `
		UPDATE job_opportunities
		SET title = $1, location = $2, contract_type = $3, description = $4,
		    requirements = $5, salary_range = $6, is_published = $7, updated_at = now()
		WHERE id = $8
	`
	res, err := r.db.ExecContext(ctx, q,
		o.Title,
		o.Location,
		o.ContractType,
		o.Description,
		o.Requirements,
		o.SalaryRange,
		o.IsPublished,
		id,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *OpportunityPostgres) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM job_opportunities WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// TogglePublish flips the flag in one statement, so two concurrent toggles on
// the same row serialize at the database instead of losing one flip.
func (r *OpportunityPostgres) TogglePublish(ctx context.Context, id int64) (bool, error) {
	const q = `
		UPDATE job_opportunities
		SET is_published = NOT is_published, updated_at = now()
		WHERE id = $1
		RETURNING is_published
	`
	var published bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&published); err != nil {
		return false, err
	}
	return published, nil
}
