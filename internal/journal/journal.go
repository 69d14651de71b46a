// Package journal keeps the append-only study journal: one dated line per entry.
package journal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"studytrack/internal/apperrors"
	"studytrack/internal/clock"

	"github.com/rs/zerolog/log"
)

const (
	DateLayout = "02.01.2006"
	Separator  = "  |  "
)

type Journal struct {
	path  string
	clock clock.Clock
}

func New(path string, clk clock.Clock) *Journal {
	return &Journal{path: path, clock: clk}
}

func (j *Journal) Path() string {
	return j.path
}

// FormatEntry renders a journal line without the trailing newline.
// Line breaks inside text are folded into spaces so every entry stays on one line,
// and invalid UTF-8 is replaced so the file stays readable text.
func FormatEntry(day time.Time, text string) string {
	text = strings.ToValidUTF8(text, "\uFFFD")
	text = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(text)
	return day.Format(DateLayout) + Separator + text
}

// Append writes one entry dated today, creating the file if needed.
func (j *Journal) Append(text string) error {
	if err := os.MkdirAll(filepath.Dir(j.path), 0755); err != nil {
		return ioErr("create journal dir", err)
	}

	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return ioErr("open journal", err)
	}

	line := FormatEntry(j.clock.Now(), text)
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return ioErr("write journal", err)
	}
	if err := f.Close(); err != nil {
		return ioErr("close journal", err)
	}

	log.Debug().Str("path", j.path).Int("bytes", len(line)+1).Msg("journal entry appended")
	return nil
}

// ReadAll returns every entry in file order with trailing whitespace removed.
// found is false when the journal file does not exist yet; that is not an error.
func (j *Journal) ReadAll() (lines []string, found bool, err error) {
	f, err := os.Open(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, ioErr("open journal", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRightFunc(line, unicode.IsSpace))
		}
		if errors.Is(err, io.EOF) {
			return lines, true, nil
		}
		if err != nil {
			return nil, true, ioErr("read journal", err)
		}
	}
}

func ioErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", apperrors.ErrIO, op, err)
}
