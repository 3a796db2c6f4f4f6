package dailyboxes

import (
	"context"

	"github.com/adventbox/daybox/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, box *models.DailyBox) (*models.DailyBox, error)
	Update(ctx context.Context, box *models.DailyBox) (*models.DailyBox, error)
	GetByID(ctx context.Context, calendarID string, id string) (*models.DailyBox, error)
	ListByCalendar(ctx context.Context, calendarID string) ([]*models.DailyBox, error)
}
