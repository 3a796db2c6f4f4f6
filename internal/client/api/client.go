// Package api implements the HTTP client for the daybox service: login,
// the calendar-scoped daily-box resources, and presigned image uploads.
//
// Create and update are distinct calls on purpose: a record with a known
// identifier is updated at its item endpoint, a record without one is
// created under the collection endpoint.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/adventbox/daybox/internal/client/models"
)

// Client talks to one daybox service. It carries no credential of its
// own; the bearer token is an explicit argument on every authenticated
// call.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a Client for the given base URL, e.g. "http://localhost:3030".
func New(baseURL string) *Client {
	return NewWithTimeout(baseURL, 15*time.Second)
}

// NewWithTimeout builds a Client with an explicit per-request timeout.
func NewWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// LoginRequest is the credential payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult carries the bearer token and the account anchor date.
type LoginResult struct {
	AccessToken string `json:"accessToken"`
	StartDate   string `json:"startDate"`
}

// CreateDailyBoxRequest is the body for creating a record under the
// collection endpoint.
type CreateDailyBoxRequest struct {
	Date    string         `json:"date"`
	Content models.Content `json:"content"`
	IsOpen  bool           `json:"isOpen"`
}

// UpdateDailyBoxRequest is the body for updating a known record; only
// the content travels.
type UpdateDailyBoxRequest struct {
	Content models.Content `json:"content"`
}

// UploadTarget is a presigned destination for an image asset plus the
// public URL the asset will have once uploaded.
type UploadTarget struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
}

// RegisterRequest creates a new account; StartDate is the account
// anchor in YYYY-MM-DD form.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	StartDate string `json:"startDate"`
}

// CreateCalendarRequest opens a new calendar under the account.
type CreateCalendarRequest struct {
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
}

// CreateCalendarResult carries the new calendar's identifier.
type CreateCalendarResult struct {
	CalendarID string `json:"calendarId"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/register", "", req, nil)
}

func (c *Client) CreateCalendar(ctx context.Context, token string, req CreateCalendarRequest) (*CreateCalendarResult, error) {
	out := &CreateCalendarResult{}
	if err := c.doJSON(ctx, http.MethodPost, "/calendars", token, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	out := &LoginResult{}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDailyBox creates a new record under the collection endpoint.
func (c *Client) CreateDailyBox(ctx context.Context, token, calendarID string, req CreateDailyBoxRequest) (*models.DailyBox, error) {
	path := fmt.Sprintf("/calendars/%s/daily-boxes", url.PathEscape(calendarID))
	out := &models.DailyBox{}
	if err := c.doJSON(ctx, http.MethodPost, path, token, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateDailyBox updates the specific record at its item endpoint.
func (c *Client) UpdateDailyBox(ctx context.Context, token, calendarID, dailyBoxID string, req UpdateDailyBoxRequest) (*models.DailyBox, error) {
	path := fmt.Sprintf("/calendars/%s/daily-boxes/%s", url.PathEscape(calendarID), url.PathEscape(dailyBoxID))
	out := &models.DailyBox{}
	if err := c.doJSON(ctx, http.MethodPut, path, token, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDailyBoxes returns all records of a calendar, used for hydration.
func (c *Client) ListDailyBoxes(ctx context.Context, token, calendarID string) ([]models.DailyBox, error) {
	path := fmt.Sprintf("/calendars/%s/daily-boxes", url.PathEscape(calendarID))
	var out []models.DailyBox
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RequestUploadURL asks the service for a presigned destination for an
// image asset of the given MIME type.
func (c *Client) RequestUploadURL(ctx context.Context, token, calendarID, mimeType string) (*UploadTarget, error) {
	path := fmt.Sprintf("/calendars/%s/daily-boxes/uploads", url.PathEscape(calendarID))
	out := &UploadTarget{}
	body := map[string]string{"mimeType": mimeType}
	if err := c.doJSON(ctx, http.MethodPost, path, token, body, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadAsset PUTs raw bytes to a presigned URL.
func (c *Client) UploadAsset(ctx context.Context, uploadURL string, data []byte, mimeType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mimeType)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upload error: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upload rejected with status %d", resp.StatusCode)
	}
	return nil
}

// doJSON issues one JSON request. Non-2xx responses come back as
// *APIError carrying the server's message and status.
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb apiErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err != nil || eb.Message == "" {
			return &APIError{
				Message: http.StatusText(resp.StatusCode),
				Status:  strconv.Itoa(resp.StatusCode),
			}
		}
		return &APIError{Message: eb.Message, Status: eb.statusText()}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}
