package stats

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"studytrack/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSummer struct {
	minutes float64
	err     error
	since   time.Time
}

func (f *fakeSummer) SumDurations(since time.Time) (float64, error) {
	f.since = since
	return f.minutes, f.err
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		goal  float64
		want  float64
	}{
		{"zero", 0, 12, 0},
		{"half", 6, 12, 50},
		{"exact goal", 50, 50, 100},
		{"far above goal", 1000, 12, 100},
		{"negative hours", -3, 12, 0},
		{"fraction", 1, 500, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Percent(tt.hours, tt.goal), 1e-9)
		})
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		percent float64
		filled  int
	}{
		{0, 0},
		{4.9, 0},
		{5, 1},
		{50, 10},
		{54.9, 10},
		{99.9, 19},
		{100, 20},
	}
	for _, tt := range tests {
		bar := Bar(tt.percent)
		assert.Equal(t, BarLength, utf8.RuneCountInString(bar), "percent %v", tt.percent)
		assert.Equal(t, tt.filled, strings.Count(bar, BarFilled), "percent %v", tt.percent)
		assert.Equal(t, BarLength-tt.filled, strings.Count(bar, BarEmpty), "percent %v", tt.percent)
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.Local)

	t.Run("window per period", func(t *testing.T) {
		for _, g := range Goals() {
			src := &fakeSummer{}
			_, err := Build(src, g.Period, now)
			require.NoError(t, err)
			assert.Equal(t, now.AddDate(0, 0, -g.Days), src.since, g.Period)
		}
	})

	t.Run("minutes become hours", func(t *testing.T) {
		rep, err := Build(&fakeSummer{minutes: 1500}, Month, now)
		require.NoError(t, err)
		assert.Equal(t, 25.0, rep.Hours)
		assert.Equal(t, 50.0, rep.Percent)
		assert.Equal(t, "МЕСЯЦ", rep.Goal.Label)
	})

	t.Run("clamped above goal", func(t *testing.T) {
		rep, err := Build(&fakeSummer{minutes: 1000 * 60}, Week, now)
		require.NoError(t, err)
		assert.Equal(t, 100.0, rep.Percent)
		assert.Equal(t, strings.Repeat(BarFilled, BarLength), rep.Bar())
	})

	t.Run("store error propagates", func(t *testing.T) {
		boom := errors.New("db down")
		_, err := Build(&fakeSummer{err: boom}, Year, now)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("unknown period", func(t *testing.T) {
		_, err := Build(&fakeSummer{}, Period("decade"), now)
		assert.Error(t, err)
	})
}

func TestWeeklyReportEndToEnd(t *testing.T) {
	now := time.Date(2026, 10, 18, 20, 0, 0, 0, time.Local)
	clk := fixedClock{now: now}
	st, err := store.New(filepath.Join(t.TempDir(), "study.db"), clk)
	require.NoError(t, err)
	defer st.Close()

	_, err = st.Record(360)
	require.NoError(t, err)

	rep, err := Build(st, Week, now)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "[НЕДЕЛЯ]")
	assert.Contains(t, out, "6.00 / 12 ч.")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "[ "+strings.Repeat(BarFilled, 10)+strings.Repeat(BarEmpty, 10)+" ]")
}

func TestReportString(t *testing.T) {
	rep := Report{Goal: goals[Year], Hours: 125, Percent: 25}
	assert.Equal(t,
		"[ГОД] 125.00 / 500 ч.\nПрогресс: [ █████--------------- ] 25.0%",
		rep.String())
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("month")
	require.NoError(t, err)
	assert.Equal(t, Month, p)

	_, err = ParsePeriod("fortnight")
	assert.Error(t, err)
}

func TestGoalsOrder(t *testing.T) {
	got := Goals()
	require.Len(t, got, 3)
	assert.Equal(t, []int{12, 50, 500}, []int{got[0].Hours, got[1].Hours, got[2].Hours})
}
