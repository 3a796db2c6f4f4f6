package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adventbox/daybox/internal/datex"
	"github.com/adventbox/daybox/internal/server/models"
	"github.com/adventbox/daybox/internal/shared"
)

type createCalendarRequest struct {
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
}

type createCalendarResponse struct {
	CalendarID string `json:"calendarId"`
}

type createDailyBoxRequest struct {
	Date    string         `json:"date"`
	Content models.Content `json:"content"`
	IsOpen  bool           `json:"isOpen"`
}

type updateDailyBoxRequest struct {
	Content models.Content `json:"content"`
}

type presignUploadRequest struct {
	MimeType string `json:"mimeType"`
}

type presignUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
}

// dailyBoxResponse is the wire form of one box. Dates travel as
// "2006-01-02" strings.
type dailyBoxResponse struct {
	DailyBoxID string         `json:"dailyBoxId"`
	Date       string         `json:"date"`
	Content    models.Content `json:"content"`
	IsOpen     bool           `json:"isOpen"`
}

func toDailyBoxResponse(box *models.DailyBox) dailyBoxResponse {
	return dailyBoxResponse{
		DailyBoxID: box.ID,
		Date:       datex.Format(box.Date),
		Content:    box.Content,
		IsOpen:     box.IsOpen,
	}
}

func (h *Handler) handleCreateCalendar(w http.ResponseWriter, r *http.Request) {
	var req createCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, shared.ErrorValidation)
		return
	}

	startDate, err := datex.Parse(req.StartDate)
	if err != nil {
		writeError(w, shared.ErrorValidation)
		return
	}

	calendar, err := h.calendars.CreateCalendar(r.Context(), userIDFromContext(r.Context()), req.Title, startDate)
	if err != nil {
		h.logger.Error(r.Context(), "calendar creation failed", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createCalendarResponse{CalendarID: calendar.ID})
}

func (h *Handler) handleCreateDailyBox(w http.ResponseWriter, r *http.Request) {
	calendarID := chi.URLParam(r, "calendarId")

	var req createDailyBoxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, shared.ErrorValidation)
		return
	}

	date, err := datex.Parse(req.Date)
	if err != nil {
		writeError(w, shared.ErrorValidation)
		return
	}

	box, err := h.calendars.CreateDailyBox(r.Context(), userIDFromContext(r.Context()), calendarID, date, req.Content, req.IsOpen)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDailyBoxResponse(box))
}

func (h *Handler) handleUpdateDailyBox(w http.ResponseWriter, r *http.Request) {
	calendarID := chi.URLParam(r, "calendarId")
	boxID := chi.URLParam(r, "dailyBoxId")

	var req updateDailyBoxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, shared.ErrorValidation)
		return
	}

	box, err := h.calendars.UpdateDailyBox(r.Context(), userIDFromContext(r.Context()), calendarID, boxID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDailyBoxResponse(box))
}

func (h *Handler) handleListDailyBoxes(w http.ResponseWriter, r *http.Request) {
	calendarID := chi.URLParam(r, "calendarId")

	boxes, err := h.calendars.ListDailyBoxes(r.Context(), userIDFromContext(r.Context()), calendarID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]dailyBoxResponse, 0, len(boxes))
	for _, box := range boxes {
		out = append(out, toDailyBoxResponse(box))
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handlePresignUpload(w http.ResponseWriter, r *http.Request) {
	calendarID := chi.URLParam(r, "calendarId")

	var req presignUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, shared.ErrorValidation)
		return
	}

	target, err := h.calendars.PresignUpload(r.Context(), userIDFromContext(r.Context()), calendarID, req.MimeType)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, presignUploadResponse{
		UploadURL: target.UploadURL,
		PublicURL: target.PublicURL,
	})
}
