package repomanager

import (
	"context"
	"database/sql"

	"github.com/adventbox/daybox/internal/dbx"
	"github.com/adventbox/daybox/internal/server/migrations"
	"github.com/adventbox/daybox/internal/server/repositories/calendars"
	"github.com/adventbox/daybox/internal/server/repositories/dailyboxes"
	"github.com/adventbox/daybox/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Calendars returns a calendars.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Calendars(db dbx.DBTX) calendars.Repository {
	return calendars.NewPostgresRepository(db)
}

// DailyBoxes returns a dailyboxes.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) DailyBoxes(db dbx.DBTX) dailyboxes.Repository {
	return dailyboxes.NewPostgresRepository(db)
}

// RunMigrations applies the embedded goose migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return err
	}

	return nil
}
