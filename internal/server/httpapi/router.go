package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router assembles the public API surface.
//
//	POST /auth/register
//	POST /auth/login
//	POST /calendars
//	POST /calendars/{calendarId}/daily-boxes
//	GET  /calendars/{calendarId}/daily-boxes
//	PUT  /calendars/{calendarId}/daily-boxes/{dailyBoxId}
//	POST /calendars/{calendarId}/daily-boxes/uploads
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Route("/auth", func(r chi.Router) {
		r.Use(h.limiter.middleware)
		r.Post("/register", h.handleRegister)
		r.Post("/login", h.handleLogin)
	})

	r.Route("/calendars", func(r chi.Router) {
		r.Use(h.bearerAuth)
		r.Use(h.limiter.middleware)

		r.Post("/", h.handleCreateCalendar)

		r.Route("/{calendarId}/daily-boxes", func(r chi.Router) {
			r.Post("/", h.handleCreateDailyBox)
			r.Get("/", h.handleListDailyBoxes)
			r.Put("/{dailyBoxId}", h.handleUpdateDailyBox)
			r.Post("/uploads", h.handlePresignUpload)
		})
	})

	return r
}
