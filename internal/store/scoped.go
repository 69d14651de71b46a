package store

import (
	"time"

	"studytrack/internal/clock"
)

// Scoped is a handle that opens the database for a single call and closes it
// before returning, so no connection outlives an operation.
type Scoped struct {
	Path  string
	Clock clock.Clock
}

func NewScoped(path string, clk clock.Clock) Scoped {
	return Scoped{Path: path, Clock: clk}
}

// Init creates the sessions table if it is missing. Safe to call on every start.
func (h Scoped) Init() error {
	return With(h.Path, h.Clock, func(*Store) error { return nil })
}

func (h Scoped) Record(minutes float64) (*Session, error) {
	var sess *Session
	err := With(h.Path, h.Clock, func(s *Store) error {
		var err error
		sess, err = s.Record(minutes)
		return err
	})
	return sess, err
}

func (h Scoped) SumDurations(since time.Time) (float64, error) {
	var total float64
	err := With(h.Path, h.Clock, func(s *Store) error {
		var err error
		total, err = s.SumDurations(since)
		return err
	})
	return total, err
}

func (h Scoped) ListSessions(limit int) ([]Session, error) {
	var sessions []Session
	err := With(h.Path, h.Clock, func(s *Store) error {
		var err error
		sessions, err = s.ListSessions(limit)
		return err
	})
	return sessions, err
}
