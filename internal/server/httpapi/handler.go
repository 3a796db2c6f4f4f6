// Package httpapi exposes the daybox service over HTTP/JSON: account
// registration and login, calendar creation, and the per-day boxes a
// calendar stores, plus presigned upload targets for image assets.
package httpapi

import (
	"context"
	"time"

	"github.com/adventbox/daybox/internal/logging"
	"github.com/adventbox/daybox/internal/server/config"
	"github.com/adventbox/daybox/internal/server/models"
	"github.com/adventbox/daybox/internal/server/services"
)

// UserService is what the auth endpoints need from the business layer.
type UserService interface {
	Register(ctx context.Context, username, password string, startDate time.Time) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.LoginResult, error)
}

// CalendarService is what the calendar endpoints need from the business layer.
type CalendarService interface {
	CreateCalendar(ctx context.Context, userID, title string, startDate time.Time) (*models.Calendar, error)
	CreateDailyBox(ctx context.Context, userID, calendarID string, date time.Time, content models.Content, isOpen bool) (*models.DailyBox, error)
	UpdateDailyBox(ctx context.Context, userID, calendarID, boxID string, content models.Content) (*models.DailyBox, error)
	ListDailyBoxes(ctx context.Context, userID, calendarID string) ([]*models.DailyBox, error)
	PresignUpload(ctx context.Context, userID, calendarID, mimeType string) (*services.UploadTarget, error)
}

// Handler holds the dependencies of all HTTP endpoints.
type Handler struct {
	users     UserService
	calendars CalendarService
	jwtSecret []byte
	limiter   *rateLimiter
	logger    logging.Logger
}

func NewHandler(users UserService, calendars CalendarService, cfg *config.Config, logger logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Handler{
		users:     users,
		calendars: calendars,
		jwtSecret: []byte(cfg.SecretKey),
		limiter:   newRateLimiter(cfg.RequestsPerSecond, cfg.RequestBurst),
		logger:    logger,
	}
}
