package journal_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"studytrack/internal/apperrors"
	"studytrack/internal/journal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func TestReadAllMissingFile(t *testing.T) {
	j := journal.New(filepath.Join(t.TempDir(), "study_journal.txt"), &fixedClock{now: time.Now()})

	lines, found, err := j.ReadAll()
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, lines)
}

func TestAppendRoundTrip(t *testing.T) {
	clk := &fixedClock{now: time.Date(2026, 10, 17, 21, 0, 0, 0, time.Local)}
	path := filepath.Join(t.TempDir(), "study_journal.txt")
	j := journal.New(path, clk)

	require.NoError(t, j.Append("goroutines and channels"))

	clk.now = time.Date(2026, 10, 18, 9, 15, 0, 0, time.Local)
	require.NoError(t, j.Append("context cancellation"))

	lines, found, err := j.ReadAll()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{
		"17.10.2026  |  goroutines and channels",
		"18.10.2026  |  context cancellation",
	}, lines)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"17.10.2026  |  goroutines and channels\n18.10.2026  |  context cancellation\n",
		string(raw))
}

func TestAppendKeepsOneEntryPerLine(t *testing.T) {
	clk := &fixedClock{now: time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)}
	j := journal.New(filepath.Join(t.TempDir(), "j.txt"), clk)

	require.NoError(t, j.Append("first line\nsecond line"))

	lines, _, err := j.ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "05.01.2026  |  first line second line", lines[0])
}

func TestReadAllStripsTrailingWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "j.txt")
	require.NoError(t, os.WriteFile(path, []byte("01.02.2026  |  note   \r\n02.02.2026  |  empty  |  \t\n"), 0644))

	lines, found, err := journal.New(path, &fixedClock{}).ReadAll()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"01.02.2026  |  note", "02.02.2026  |  empty  |"}, lines)
}

func TestExistingEmptyFileIsFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "j.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	lines, found, err := journal.New(path, &fixedClock{}).ReadAll()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, lines)
}

func TestAppendToDirectoryIsIOError(t *testing.T) {
	dir := t.TempDir()
	j := journal.New(dir, &fixedClock{now: time.Now()})

	err := j.Append("note")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrIO)
}

func TestFormatEntry(t *testing.T) {
	day := time.Date(2026, 12, 31, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "31.12.2026  |  ", journal.FormatEntry(day, ""))
	assert.Equal(t, "31.12.2026  |  Go | SQL", journal.FormatEntry(day, "Go | SQL"))
}

func TestReadAllLongEntry(t *testing.T) {
	clk := &fixedClock{now: time.Date(2026, 10, 18, 0, 0, 0, 0, time.Local)}
	j := journal.New(filepath.Join(t.TempDir(), "j.txt"), clk)

	long := strings.Repeat("a", 2<<20)
	require.NoError(t, j.Append("short"))
	require.NoError(t, j.Append(long))
	require.NoError(t, j.Append("after"))

	lines, found, err := j.ReadAll()
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, lines, 3)
	assert.Equal(t, "18.10.2026  |  short", lines[0])
	assert.Equal(t, "18.10.2026  |  "+long, lines[1])
	assert.Equal(t, "18.10.2026  |  after", lines[2])
}

func TestReadAllLastLineWithoutNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "j.txt")
	require.NoError(t, os.WriteFile(path, []byte("01.02.2026  |  one\n02.02.2026  |  two"), 0644))

	lines, _, err := journal.New(path, &fixedClock{}).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"01.02.2026  |  one", "02.02.2026  |  two"}, lines)
}

func TestAppendReplacesInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "j.txt")
	clk := &fixedClock{now: time.Date(2026, 10, 18, 0, 0, 0, 0, time.Local)}
	j := journal.New(path, clk)

	// "При" in cp1251
	require.NoError(t, j.Append("note \xcf\xf0\xe8"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, utf8.Valid(raw))

	lines, _, err := j.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"18.10.2026  |  note �"}, lines)
}
