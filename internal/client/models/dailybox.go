// Package models defines the daily-box content records handled by the
// client, the guest-mode calendar aggregate, and the in-memory draft a
// day cell edits before submission.
package models

// Content is the persisted payload of one daily box. Every field is a
// plain string; a normalized snapshot never carries absent values.
type Content struct {
	Image string `json:"image"`
	Video string `json:"video"`
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

// DailyBox is one persisted day-cell record, device-local or server-side.
// ID is empty until the record has been created: its presence is what
// tells a submission apart as an update rather than a create.
type DailyBox struct {
	ID      string  `json:"dailyBoxId"`
	Date    string  `json:"date"`
	Content Content `json:"content"`
	IsOpen  bool    `json:"isOpen"`
}
