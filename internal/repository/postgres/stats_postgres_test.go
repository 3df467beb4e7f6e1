package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"siteapi/internal/model"
)

func TestStatsPostgres_Counts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewStatsPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM contacts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	n, err := repo.CountContacts(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 12, n)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM applications`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err = repo.CountApplications(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	since := time.Now().Add(-7 * 24 * time.Hour)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM contacts WHERE created_at`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err = repo.CountContactsSince(ctx, since)
	assert.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsPostgres_GroupByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewStatsPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT status, (.+) FROM contacts GROUP BY status").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow(model.ContactStatusNew, 8).
			AddRow(model.ContactStatusDone, 4))

	counts, err := repo.ContactsByStatus(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []model.StatusCount{
		{Status: model.ContactStatusNew, Count: 8},
		{Status: model.ContactStatusDone, Count: 4},
	}, counts)

	mock.ExpectQuery("SELECT status, (.+) FROM applications GROUP BY status").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}))

	appCounts, err := repo.ApplicationsByStatus(ctx)

	assert.NoError(t, err)
	assert.NotNil(t, appCounts)
	assert.Len(t, appCounts, 0)

	assert.NoError(t, mock.ExpectationsWereMet())
}
