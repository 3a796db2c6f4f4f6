package dailyboxes

import (
	"context"
	"database/sql"
	"errors"
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

var createQuery = `(?s)^INSERT\s+INTO\s+daily_boxes\s*\(id,\s*calendar_id,\s*box_date,\s*image,\s*video,\s*content,\s*audio,\s*is_open\)`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	date := time.Date(2024, 12, 3, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now)
	mock.ExpectQuery(createQuery).
		WithArgs("box-1", "cal-1", date, "img", "vid", "hello", "aud", false).
		WillReturnRows(rows)

	box := &models.DailyBox{
		ID:         "box-1",
		CalendarID: "cal-1",
		Date:       date,
		Content:    models.Content{Image: "img", Video: "vid", Text: "hello", Audio: "aud"},
	}
	got, err := repo.Create(context.Background(), box)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not populated: %+v", got)
	}
}

func TestCreate_DuplicateDate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	date := time.Date(2024, 12, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(createQuery).
		WithArgs("box-1", "cal-1", date, "", "", "", "", false).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.DailyBox{ID: "box-1", CalendarID: "cal-1", Date: date})
	if !errors.Is(err, shared.ErrorAlreadyExists) {
		t.Fatalf("want shared.ErrorAlreadyExists, got %v", err)
	}
}

var updateQuery = `(?s)^UPDATE\s+daily_boxes\s+SET\s+image\s*=\s*\$1`

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	date := time.Date(2024, 12, 3, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"box_date", "is_open", "created_at", "updated_at"}).
		AddRow(date, true, now, now)
	mock.ExpectQuery(updateQuery).
		WithArgs("img2", "", "revised", "", "box-1", "cal-1").
		WillReturnRows(rows)

	box := &models.DailyBox{
		ID:         "box-1",
		CalendarID: "cal-1",
		Content:    models.Content{Image: "img2", Text: "revised"},
	}
	got, err := repo.Update(context.Background(), box)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !got.Date.Equal(date) || !got.IsOpen {
		t.Fatalf("stored fields not restored: %+v", got)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(updateQuery).
		WithArgs("", "", "", "", "ghost", "cal-1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &models.DailyBox{ID: "ghost", CalendarID: "cal-1"})
	if !errors.Is(err, shared.ErrorNotFound) {
		t.Fatalf("want shared.ErrorNotFound, got %v", err)
	}
}

func TestListByCalendar(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*calendar_id,\s*box_date,\s*image,\s*video,\s*content,\s*audio,\s*is_open,\s*created_at,\s*updated_at\s+FROM\s+daily_boxes`

	d1 := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "calendar_id", "box_date", "image", "video", "content", "audio", "is_open", "created_at", "updated_at"}).
		AddRow("box-1", "cal-1", d1, "", "", "day one", "", false, now, now).
		AddRow("box-2", "cal-1", d2, "", "", "day two", "", true, now, now)
	mock.ExpectQuery(q).
		WithArgs("cal-1").
		WillReturnRows(rows)

	got, err := repo.ListByCalendar(context.Background(), "cal-1")
	if err != nil {
		t.Fatalf("ListByCalendar error: %v", err)
	}
	if len(got) != 2 || got[0].Content.Text != "day one" || !got[1].IsOpen {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListByCalendar_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*FROM\s+daily_boxes`

	mock.ExpectQuery(q).
		WithArgs("cal-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "calendar_id", "box_date", "image", "video", "content", "audio", "is_open", "created_at", "updated_at"}))

	got, err := repo.ListByCalendar(context.Background(), "cal-1")
	if err != nil {
		t.Fatalf("ListByCalendar error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %+v", got)
	}
}
