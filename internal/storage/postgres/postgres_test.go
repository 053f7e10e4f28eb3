package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/siteproof-backend/config"
)

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host: "db", Port: 5433, User: "site", Password: "secret", Name: "siteproof", SSLMode: "require",
	}
	assert.Equal(t, "host=db port=5433 user=site password=secret dbname=siteproof sslmode=require", DSN(cfg))

	cfg.DSN = "postgres://site@db/siteproof"
	assert.Equal(t, "postgres://site@db/siteproof", DSN(cfg))
}

func TestAssignments(t *testing.T) {
	var a Assignments
	assert.Zero(t, a.Len())

	a.Add("name", "Tower")
	a.Add("status", "completed")

	set, args, next := a.Build(int64(7))
	assert.Equal(t, "name = $1, status = $2", set)
	assert.Equal(t, []any{"Tower", "completed", int64(7)}, args)
	assert.Equal(t, 3, next)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_site \\ main`, EscapeLike(`50% off_site \ main`))
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Run("applies migrations in order", func(t *testing.T) {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS projects`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS proofs`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`CREATE INDEX IF NOT EXISTS idx_proofs_project_id`).WillReturnResult(sqlmock.NewResult(0, 0))

		applied, err := Migrate(context.Background(), db)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"migrations/001_create_projects.sql",
			"migrations/002_create_proofs.sql",
			"migrations/003_index_proofs_project_id.sql",
		}, applied)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS projects`).WillReturnError(errors.New("permission denied"))

		_, err := Migrate(context.Background(), db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "001_create_projects.sql")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
