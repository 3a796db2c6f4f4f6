// Package models defines the server-side records: accounts, calendars,
// and the daily boxes stored per calendar.
package models

import "time"

// User is a registered account. The plaintext password never reaches
// storage: Verifier is derived from it with a per-user salt.
type User struct {
	ID        string
	Username  string
	Salt      []byte
	Verifier  []byte
	StartDate time.Time
}

// Calendar is one advent calendar owned by a user. StartDate anchors
// day-offset arithmetic for its boxes.
type Calendar struct {
	ID        string
	UserID    string
	Title     string
	StartDate time.Time
}

// Content is the user-authored payload of a daily box.
type Content struct {
	Image string `json:"image"`
	Video string `json:"video"`
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

// DailyBox is one persisted day record of a calendar.
type DailyBox struct {
	ID         string
	CalendarID string
	Date       time.Time
	Content    Content
	IsOpen     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
