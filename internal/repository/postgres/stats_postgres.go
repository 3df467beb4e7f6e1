package postgres

import (
	"context"
	"database/sql"
	"time"

	"siteapi/internal/model"
	"siteapi/internal/repository"
)

// StatsPostgres is a PostgreSQL implementation of repository.StatsRepository.
// Each method is a single independent query; composition happens in the
// service layer.
type StatsPostgres struct {
	db *sql.DB
}

func NewStatsPostgres(db *sql.DB) *StatsPostgres {
	return &StatsPostgres{db: db}
}

var _ repository.StatsRepository = (*StatsPostgres)(nil)

func (r *StatsPostgres) CountContacts(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM contacts`)
}

func (r *StatsPostgres) CountApplications(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM applications`)
}

func (r *StatsPostgres) CountContactsSince(ctx context.Context, since time.Time) (int, error) {
	const q = `SELECT COUNT(*) FROM contacts WHERE created_at >= $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, since).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *StatsPostgres) ContactsByStatus(ctx context.Context) ([]model.StatusCount, error) {
	return r.groupByStatus(ctx, `SELECT status, COUNT(*) FROM contacts GROUP BY status`)
}

func (r *StatsPostgres) ApplicationsByStatus(ctx context.Context) ([]model.StatusCount, error) {
	return r.groupByStatus(ctx, `SELECT status, COUNT(*) FROM applications GROUP BY status`)
}

func (r *StatsPostgres) count(ctx context.Context, q string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *StatsPostgres) groupByStatus(ctx context.Context, q string) ([]model.StatusCount, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.StatusCount, 0)
	for rows.Next() {
		var sc model.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		items = append(items, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
