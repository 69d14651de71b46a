package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"studytrack/internal/apperrors"
	"studytrack/internal/clock"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

type Store struct {
	db    *sql.DB
	clock clock.Clock
}

func New(dbPath string, clk clock.Clock) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, storageErr("create data dir", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, storageErr("open database", err)
	}

	s := &Store{db: db, clock: clk}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, storageErr("migrate", err)
	}
	return s, nil
}

// With opens the database, runs fn and closes the database on every return path.
func With(dbPath string, clk clock.Clock, fn func(*Store) error) (err error) {
	s, err := New(dbPath, clk)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = storageErr("close database", cerr)
		}
	}()
	return fn(s)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		date             TEXT,
		duration_minutes REAL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores a session dated today. The duration is stored as given.
func (s *Store) Record(minutes float64) (*Session, error) {
	date := s.clock.Now().Format(DateLayout)
	res, err := s.db.Exec(
		"INSERT INTO sessions (date, duration_minutes) VALUES (?, ?)",
		date, minutes,
	)
	if err != nil {
		return nil, storageErr("insert session", err)
	}
	id, _ := res.LastInsertId()

	log.Debug().Int64("id", id).Str("date", date).Float64("minutes", minutes).Msg("session recorded")
	return &Session{ID: id, Date: date, DurationMinutes: minutes}, nil
}

// SumDurations returns the total minutes of all sessions dated on or after since.
func (s *Store) SumDurations(since time.Time) (float64, error) {
	var total sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT SUM(duration_minutes) FROM sessions WHERE date >= ?",
		since.Format(DateLayout),
	).Scan(&total)
	if err != nil {
		return 0, storageErr("sum durations", err)
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Float64, nil
}

func (s *Store) ListSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		"SELECT id, date, duration_minutes FROM sessions ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, storageErr("list sessions", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			sess    Session
			date    sql.NullString
			minutes sql.NullFloat64
		)
		if err := rows.Scan(&sess.ID, &date, &minutes); err != nil {
			return nil, storageErr("scan session", err)
		}
		sess.Date = date.String
		sess.DurationMinutes = minutes.Float64
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list sessions", err)
	}
	return sessions, nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", apperrors.ErrStorage, op, err)
}
