// Package menu is the interactive front end: a numbered menu that routes to the
// timer, the progress reports and the journal.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"studytrack/internal/clock"
	"studytrack/internal/config"
	"studytrack/internal/console"
	"studytrack/internal/journal"
	"studytrack/internal/stats"
	"studytrack/internal/store"
	"studytrack/internal/timer"
)

const (
	choiceExit    = "0"
	choiceStart   = "1"
	choiceWeek    = "2"
	choiceMonth   = "3"
	choiceYear    = "4"
	choiceJournal = "5"
)

type App struct {
	in      *bufio.Reader
	out     io.Writer
	clock   clock.Clock
	store   store.Scoped
	journal *journal.Journal
	styles  console.Styles
}

func New(cfg config.Config, in io.Reader, out io.Writer, clk clock.Clock) *App {
	return &App{
		in:      bufio.NewReader(in),
		out:     out,
		clock:   clk,
		store:   store.NewScoped(cfg.DBPath(), clk),
		journal: journal.New(cfg.JournalPath(), clk),
		styles:  console.NewStyles(out),
	}
}

// Run shows the menu until the exit choice is made or input ends.
func (a *App) Run() error {
	if err := a.store.Init(); err != nil {
		return err
	}

	for {
		a.printMenu()
		line, eof, err := console.ReadLine(a.in)
		if err != nil {
			return err
		}

		choice := strings.TrimSpace(line)
		if choice == choiceExit {
			a.farewell()
			return nil
		}
		if err := a.dispatch(choice); err != nil {
			return err
		}
		if eof {
			a.farewell()
			return nil
		}
	}
}

func (a *App) dispatch(choice string) error {
	switch choice {
	case choiceStart:
		_, err := a.StartSession()
		return err
	case choiceWeek:
		return a.Stats(stats.Week)
	case choiceMonth:
		return a.Stats(stats.Month)
	case choiceYear:
		return a.Stats(stats.Year)
	case choiceJournal:
		return a.ReadJournal()
	}
	return nil
}

func (a *App) printMenu() {
	fmt.Fprintln(a.out, a.styles.Title.Render("--- ТРЕКЕР УЧЕБЫ ---"))
	fmt.Fprintln(a.out, "1. Начать учиться")
	fmt.Fprintln(a.out, "2. Статистика за неделю")
	fmt.Fprintln(a.out, "3. Статистика за месяц")
	fmt.Fprintln(a.out, "4. Статистика за год")
	fmt.Fprintln(a.out, "5. Прочитать журнал")
	fmt.Fprintln(a.out, "0. Выход")
	fmt.Fprint(a.out, "\nВыбери действие: ")
}

func (a *App) farewell() {
	fmt.Fprintln(a.out, "Надеюсь, это было продуктивно. ПОКА!")
}

// StartSession runs the timer and persists its result.
func (a *App) StartSession() (timer.Result, error) {
	t := &timer.Timer{
		In:      a.in,
		Out:     a.out,
		Clock:   a.clock,
		Store:   a.store,
		Journal: a.journal,
	}
	return t.Run()
}

func (a *App) Stats(p stats.Period) error {
	rep, err := a.Report(p)
	if err != nil {
		return err
	}
	return rep.Render(a.out)
}

func (a *App) Report(p stats.Period) (stats.Report, error) {
	return stats.Build(a.store, p, a.clock.Now())
}

func (a *App) ReadJournal() error {
	lines, found, err := a.journal.ReadAll()
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(a.out, "Журнал пуст. Проведите учебную сессию!")
		return nil
	}

	fmt.Fprintln(a.out, a.styles.Title.Render("--- Учебный журнал ---"))
	for _, line := range lines {
		fmt.Fprintln(a.out, line)
	}
	return nil
}

func (a *App) AddNote(text string) error {
	return a.journal.Append(text)
}

func (a *App) Sessions(limit int) ([]store.Session, error) {
	return a.store.ListSessions(limit)
}

// Init creates the session table if it is missing.
func (a *App) Init() error {
	return a.store.Init()
}

func (a *App) Paths() (db, journalPath string) {
	return a.store.Path, a.journal.Path()
}
