// Package session models the client's persistence mode. A submission is
// either Guest (everything stays on the device) or Authenticated (a
// bearer session against the remote service); the two are mutually
// exclusive and decided once, where the gateway is built.
package session

import (
	"context"
	"time"

	"github.com/adventbox/daybox/internal/datex"
)

// Session is the authenticated-mode state: the bearer credential and the
// account-level anchor date used for day arithmetic.
type Session struct {
	AccessToken string
	StartDate   time.Time
}

// Mode is the two-variant persistence mode.
type Mode interface {
	mode()
}

// Guest is the unauthenticated mode. The anchor date lives inside each
// device-local calendar aggregate, so Guest itself carries no state.
type Guest struct{}

func (Guest) mode() {}

// Authenticated wraps an explicit Session. No ambient token lookups
// happen past this point.
type Authenticated struct {
	Session Session
}

func (Authenticated) mode() {}

const (
	keyAccessToken = "accessToken"
	keyStartDate   = "startDate"
)

// Load rebuilds the Mode from the metadata cache: a cached token means
// the last login is still in effect, otherwise the client starts as a
// guest.
func Load(ctx context.Context, repo Repository) (Mode, error) {
	token, err := repo.Get(ctx, keyAccessToken)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return Guest{}, nil
	}

	rawDate, err := repo.Get(ctx, keyStartDate)
	if err != nil {
		return nil, err
	}
	startDate, err := datex.Parse(rawDate)
	if err != nil {
		// token without a usable anchor is useless; fall back to guest
		return Guest{}, nil
	}

	return Authenticated{Session: Session{AccessToken: token, StartDate: startDate}}, nil
}

// Save caches a fresh session so a restarted client stays signed in.
func Save(ctx context.Context, repo Repository, s Session) error {
	if err := repo.Set(ctx, keyAccessToken, s.AccessToken); err != nil {
		return err
	}
	return repo.Set(ctx, keyStartDate, datex.Format(s.StartDate))
}

// Clear wipes the cached session; the next Load returns Guest.
func Clear(ctx context.Context, repo Repository) error {
	return repo.Clear(ctx)
}
