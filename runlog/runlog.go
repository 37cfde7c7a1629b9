// Package runlog appends one traceability line per print run, so a physical
// receipt can be matched back to the run id and seed that produced it.
package runlog

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Entry describes one completed (or attempted) print run.
type Entry struct {
	Time      time.Time
	RunID     uuid.UUID
	Style     string
	Seed      uint32
	Name      string
	Trait     string
	Archetype string
}

// Format renders the entry as a single log line.
func (e Entry) Format() string {
	line := fmt.Sprintf("%s  %s  style=%s  seed=%d  name=%s  trait=%s",
		e.Time.Format(time.RFC3339), e.RunID, e.Style, e.Seed, e.Name, e.Trait)
	if e.Archetype != "" {
		line += fmt.Sprintf("  archetype=%s", e.Archetype)
	}
	return line + "\n"
}

// Append writes the entry to the log file, creating it if necessary.
func Append(path string, e Entry) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(e.Format()); err != nil {
		return fmt.Errorf("append run log: %w", err)
	}
	return nil
}
