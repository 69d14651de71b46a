package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"studytrack/internal/console"
)

const (
	BarLength = 20
	BarFilled = "█"
	BarEmpty  = "-"
)

// Summer is the read side of the session store.
type Summer interface {
	SumDurations(since time.Time) (float64, error)
}

type Report struct {
	Goal    Goal
	Hours   float64
	Percent float64
}

// Build sums the sessions inside the period window ending at now.
func Build(src Summer, p Period, now time.Time) (Report, error) {
	goal, ok := GetGoal(p)
	if !ok {
		return Report{}, fmt.Errorf("unknown period %q", p)
	}

	since := now.AddDate(0, 0, -goal.Days)
	minutes, err := src.SumDurations(since)
	if err != nil {
		return Report{}, err
	}

	hours := minutes / 60
	return Report{
		Goal:    goal,
		Hours:   hours,
		Percent: Percent(hours, float64(goal.Hours)),
	}, nil
}

// Percent is progress towards goal, clamped to [0, 100].
func Percent(hours, goal float64) float64 {
	p := hours / goal * 100
	return math.Max(0, math.Min(p, 100))
}

// Bar renders a BarLength-wide bar with floor(BarLength*percent/100) filled cells.
func Bar(percent float64) string {
	filled := int(math.Floor(BarLength * percent / 100))
	filled = max(0, min(filled, BarLength))
	return strings.Repeat(BarFilled, filled) + strings.Repeat(BarEmpty, BarLength-filled)
}

func (r Report) Bar() string {
	return Bar(r.Percent)
}

func (r Report) summary() string {
	return fmt.Sprintf("%.2f / %d ч.", r.Hours, r.Goal.Hours)
}

func (r Report) progress() string {
	return fmt.Sprintf("Прогресс: [ %s ] %.1f%%", r.Bar(), r.Percent)
}

// String is the unstyled two-line report.
func (r Report) String() string {
	return fmt.Sprintf("[%s] %s\n%s", r.Goal.Label, r.summary(), r.progress())
}

func (r Report) Render(w io.Writer) error {
	st := console.NewStyles(w)
	_, err := fmt.Fprintf(w, "\n%s %s\n%s\n",
		st.Label.Render("["+r.Goal.Label+"]"),
		r.summary(),
		r.progress(),
	)
	return err
}
