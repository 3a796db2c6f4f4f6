package calendars

import (
	"context"

	"github.com/adventbox/daybox/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, calendar *models.Calendar) (*models.Calendar, error)
	GetByID(ctx context.Context, id string) (*models.Calendar, error)
	GetOwned(ctx context.Context, id string, userID string) (*models.Calendar, error)
}
