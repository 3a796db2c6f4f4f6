// Package dailyboxes provides PostgreSQL-backed storage for the per-day
// records of a calendar.
package dailyboxes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/adventbox/daybox/internal/dbx"
	"github.com/adventbox/daybox/internal/server/models"
	"github.com/adventbox/daybox/internal/shared"
)

// PostgresRepository implements daily box storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new daily box row. The ID is assigned by the caller.
func (r *PostgresRepository) Create(ctx context.Context, box *models.DailyBox) (*models.DailyBox, error) {
	query := `
		INSERT INTO daily_boxes (id, calendar_id, box_date, image, video, content, audio, is_open)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		box.ID, box.CalendarID, box.Date,
		box.Content.Image, box.Content.Video, box.Content.Text, box.Content.Audio,
		box.IsOpen,
	).Scan(&box.CreatedAt, &box.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// PostgreSQL unique_violation code is "23505"
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, shared.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return box, nil
}

// Update replaces the stored content of an existing box. Date and is_open
// are left as they are.
func (r *PostgresRepository) Update(ctx context.Context, box *models.DailyBox) (*models.DailyBox, error) {
	query := `
		UPDATE daily_boxes
		SET image = $1, video = $2, content = $3, audio = $4, updated_at = now()
		WHERE id = $5 AND calendar_id = $6
		RETURNING box_date, is_open, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		box.Content.Image, box.Content.Video, box.Content.Text, box.Content.Audio,
		box.ID, box.CalendarID,
	).Scan(&box.Date, &box.IsOpen, &box.CreatedAt, &box.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return box, nil
}

// GetByID fetches a single box scoped to its calendar.
func (r *PostgresRepository) GetByID(ctx context.Context, calendarID string, id string) (*models.DailyBox, error) {
	query := `
		SELECT id, calendar_id, box_date, image, video, content, audio, is_open, created_at, updated_at
		FROM daily_boxes
		WHERE id = $1 AND calendar_id = $2
	`
	box := &models.DailyBox{}
	err := r.db.QueryRowContext(ctx, query, id, calendarID).Scan(
		&box.ID, &box.CalendarID, &box.Date,
		&box.Content.Image, &box.Content.Video, &box.Content.Text, &box.Content.Audio,
		&box.IsOpen, &box.CreatedAt, &box.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return box, nil
}

// ListByCalendar returns all boxes of a calendar ordered by date.
func (r *PostgresRepository) ListByCalendar(ctx context.Context, calendarID string) ([]*models.DailyBox, error) {
	query := `
		SELECT id, calendar_id, box_date, image, video, content, audio, is_open, created_at, updated_at
		FROM daily_boxes
		WHERE calendar_id = $1
		ORDER BY box_date
	`
	rows, err := r.db.QueryContext(ctx, query, calendarID)
	if err != nil {
		return nil, fmt.Errorf("failed to select daily boxes: %w", err)
	}
	defer rows.Close()

	var result []*models.DailyBox
	for rows.Next() {
		var item models.DailyBox
		if err := rows.Scan(
			&item.ID, &item.CalendarID, &item.Date,
			&item.Content.Image, &item.Content.Video, &item.Content.Text, &item.Content.Audio,
			&item.IsOpen, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
