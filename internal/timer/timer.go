package timer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"studytrack/internal/clock"
	"studytrack/internal/console"
	"studytrack/internal/store"
)

type SessionRecorder interface {
	Record(minutes float64) (*store.Session, error)
}

type NoteAppender interface {
	Append(text string) error
}

type Timer struct {
	In      *bufio.Reader
	Out     io.Writer
	Clock   clock.Clock
	Store   SessionRecorder
	Journal NoteAppender
}

type Result struct {
	Minutes float64
	Note    string
	Session *store.Session
}

// Run drives one study session until it is stopped, then records the duration
// and appends the closing note to the journal.
func (t *Timer) Run() (Result, error) {
	st := console.NewStyles(t.Out)

	fmt.Fprintln(t.Out, "\n"+strings.Repeat("=", 30))
	fmt.Fprintln(t.Out, st.Notice.Render("Таймер запущен!"))
	fmt.Fprintln(t.Out, "\nКоманды: [p] - пауза, [r] - продолжить, [s] - стоп")

	tr := Start(t.Clock.Now())
	for tr.State() != Stopped {
		if tr.State() == Running {
			fmt.Fprint(t.Out, "Идет запись.. \nКоманда: ")
		} else {
			fmt.Fprintf(t.Out, "|| НА ПАУЗЕ (всего %.2f мин). Введите 'r' для продолжения или 's' для стопа: ",
				tr.Total().Minutes())
		}

		line, eof, err := console.ReadLine(t.In)
		if err != nil {
			return Result{}, err
		}

		now := t.Clock.Now()
		cmd := strings.ToLower(strings.TrimSpace(line))
		prev := tr.State()
		if tr.Apply(cmd, now) && prev == Paused && tr.State() == Running {
			fmt.Fprintln(t.Out, st.Notice.Render(">> ТАЙМЕР ВОЗОБНОВЛЕН"))
		}
		if eof {
			tr.Stop(now)
		}
	}

	fmt.Fprintln(t.Out, "Что сегодня кодил? Что выучил?")
	note, _, err := console.ReadLine(t.In)
	if err != nil {
		return Result{}, err
	}

	minutes := tr.Total().Seconds() / 60
	sess, err := t.Store.Record(minutes)
	if err != nil {
		return Result{}, err
	}
	if err := t.Journal.Append(note); err != nil {
		return Result{}, err
	}

	fmt.Fprintf(t.Out, "\nСессия завершена! Чистое время: %.2f мин.\n", minutes)
	return Result{Minutes: minutes, Note: note, Session: sess}, nil
}
