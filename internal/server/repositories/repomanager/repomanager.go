// Package repomanager vends repository implementations and exposes a
// schema migration hook, so services depend on an interface rather than
// concrete storage.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/adventbox/daybox/internal/dbx"
	"github.com/adventbox/daybox/internal/server/repositories/calendars"
	"github.com/adventbox/daybox/internal/server/repositories/dailyboxes"
	"github.com/adventbox/daybox/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Calendars(db dbx.DBTX) calendars.Repository
	DailyBoxes(db dbx.DBTX) dailyboxes.Repository
}
