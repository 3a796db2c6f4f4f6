package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/adventbox/daybox/internal/datex"
	"github.com/adventbox/daybox/internal/shared"
)

type registerRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	StartDate string `json:"startDate"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
	StartDate   string `json:"startDate"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, shared.ErrorValidation)
		return
	}

	startDate, err := datex.Parse(req.StartDate)
	if err != nil {
		writeError(w, shared.ErrorValidation)
		return
	}

	user, err := h.users.Register(r.Context(), req.Username, req.Password, startDate)
	if err != nil {
		h.logger.Warn(r.Context(), "registration failed", "error", err)
		writeError(w, err)
		return
	}

	h.logger.Info(r.Context(), "user registered", "userID", user.ID)
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, shared.ErrorValidation)
		return
	}

	result, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		StartDate:   datex.Format(result.StartDate),
	})
}
