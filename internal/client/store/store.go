// Package store is the guest-mode persistence layer: one JSON document
// per calendar id on the local disk, the device-side stand-in for an
// account. Every failure wraps shared.ErrorStorage so submissions can
// surface it to the user instead of crashing.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"github.com/adventbox/daybox/internal/client/models"
	"github.com/adventbox/daybox/internal/shared"
)

// Store reads and writes guest-mode calendar aggregates.
type Store interface {
	// Calendar loads the aggregate for a calendar id. An id that was
	// never written resolves to an empty aggregate, not an error.
	Calendar(calendarID string) (*models.Calendar, error)

	// SaveCalendar writes the aggregate back in one logical step.
	SaveCalendar(calendarID string, cal *models.Calendar) error
}

// DiskStore is the diskv-backed Store used by the CLI.
type DiskStore struct {
	d *diskv.Diskv
}

// Open returns a DiskStore rooted at basePath. The directory is created
// lazily on first write.
func Open(basePath string) *DiskStore {
	return &DiskStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func (s *DiskStore) Calendar(calendarID string) (*models.Calendar, error) {
	if !s.d.Has(calendarID) {
		return &models.Calendar{}, nil
	}

	data, err := s.d.Read(calendarID)
	if err != nil {
		return nil, fmt.Errorf("%w: reading calendar %s: %v", shared.ErrorStorage, calendarID, err)
	}

	cal := &models.Calendar{}
	if err := json.Unmarshal(data, cal); err != nil {
		return nil, fmt.Errorf("%w: decoding calendar %s: %v", shared.ErrorStorage, calendarID, err)
	}
	return cal, nil
}

func (s *DiskStore) SaveCalendar(calendarID string, cal *models.Calendar) error {
	data, err := json.Marshal(cal)
	if err != nil {
		return fmt.Errorf("%w: encoding calendar %s: %v", shared.ErrorStorage, calendarID, err)
	}
	if err := s.d.Write(calendarID, data); err != nil {
		return fmt.Errorf("%w: writing calendar %s: %v", shared.ErrorStorage, calendarID, err)
	}
	return nil
}
