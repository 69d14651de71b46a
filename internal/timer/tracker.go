package timer

import "time"

type State int

const (
	Running State = iota
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

const (
	CmdPause  = "p"
	CmdResume = "r"
	CmdStop   = "s"
)

// Tracker accumulates running time across pauses. Elapsed time since the last
// mark is folded into total on every transition out of Running.
type Tracker struct {
	state State
	total time.Duration
	mark  time.Time
}

func Start(now time.Time) *Tracker {
	return &Tracker{state: Running, mark: now}
}

func (t *Tracker) State() State {
	return t.state
}

// Total is the accumulated time, not counting the current running stretch.
func (t *Tracker) Total() time.Duration {
	return t.total
}

// Apply handles one command and reports whether the state changed.
// Unknown commands are ignored.
func (t *Tracker) Apply(cmd string, now time.Time) bool {
	switch t.state {
	case Running:
		switch cmd {
		case CmdPause:
			t.fold(now)
			t.state = Paused
			return true
		case CmdStop, "":
			t.fold(now)
			t.state = Stopped
			return true
		}
	case Paused:
		switch cmd {
		case CmdResume:
			t.mark = now
			t.state = Running
			return true
		case CmdStop:
			t.state = Stopped
			return true
		}
	}
	return false
}

// Stop terminates from any state, folding the running stretch if there is one.
func (t *Tracker) Stop(now time.Time) {
	if t.state == Running {
		t.fold(now)
	}
	t.state = Stopped
}

func (t *Tracker) fold(now time.Time) {
	t.total += now.Sub(t.mark)
}
