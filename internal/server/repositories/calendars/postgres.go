package calendars

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/adventbox/daybox/internal/dbx"
	"github.com/adventbox/daybox/internal/server/models"
	"github.com/adventbox/daybox/internal/shared"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, calendar *models.Calendar) (*models.Calendar, error) {

	query :=
		`INSERT INTO calendars (user_id, title, start_date)
         VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		calendar.UserID, calendar.Title, calendar.StartDate).Scan(&calendar.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return calendar, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Calendar, error) {
	query :=
		`SELECT id, user_id, title, start_date FROM calendars
		 WHERE id = $1
		 `

	calendar := &models.Calendar{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&calendar.ID, &calendar.UserID, &calendar.Title, &calendar.StartDate)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return calendar, nil
}

func (r *PostgresRepository) GetOwned(ctx context.Context, id string, userID string) (*models.Calendar, error) {
	query :=
		`SELECT id, user_id, title, start_date FROM calendars
		 WHERE id = $1 AND user_id = $2
		 `

	calendar := &models.Calendar{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&calendar.ID, &calendar.UserID, &calendar.Title, &calendar.StartDate)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return calendar, nil
}
