package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/adventbox/daybox/internal/server/models"
	"github.com/adventbox/daybox/internal/shared"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var createQuery = `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*salt,\s*password_verifier,\s*start_date\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id\s*$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	start := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id"}).AddRow("u-42")
	mock.ExpectQuery(createQuery).
		WithArgs("alice", []byte("salt"), []byte("verifier"), start).
		WillReturnRows(rows)

	u := &models.User{Username: "alice", Salt: []byte("salt"), Verifier: []byte("verifier"), StartDate: start}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "u-42" || got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_DuplicateUsername(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	start := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(createQuery).
		WithArgs("alice", []byte("salt"), []byte("verifier"), start).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.User{
		Username: "alice", Salt: []byte("salt"), Verifier: []byte("verifier"), StartDate: start,
	})
	if !errors.Is(err, shared.ErrorAlreadyExists) {
		t.Fatalf("want shared.ErrorAlreadyExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	start := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(createQuery).
		WithArgs("alice", []byte("salt"), []byte("verifier"), start).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{
		Username: "alice", Salt: []byte("salt"), Verifier: []byte("verifier"), StartDate: start,
	})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

var getQuery = `(?s)^SELECT\s+id,\s*username,\s*salt,\s*password_verifier,\s*start_date\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`

func TestGetUserByLogin_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	start := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "username", "salt", "password_verifier", "start_date"}).
		AddRow("u-1", "alice", []byte("salt"), []byte("ver"), start)
	mock.ExpectQuery(getQuery).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.GetUserByLogin(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetUserByLogin error: %v", err)
	}
	if got.ID != "u-1" || got.Username != "alice" || !got.StartDate.Equal(start) {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetUserByLogin_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getQuery).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByLogin(context.Background(), "ghost")
	if !errors.Is(err, shared.ErrorNotFound) {
		t.Fatalf("want shared.ErrorNotFound, got %v", err)
	}
}
