// Package filex contains small filesystem helpers.
package filex

import (
	"fmt"
	"os"
)

// EnsureDir creates the directory (with parents) if it does not exist.
// The directory is private to the current user: guest-mode calendars and
// the cached session token live under it.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o700); err != nil {
		return fmt.Errorf("error creating dir %s: %w", path, err)
	}
	return nil
}
