package session

import "encoding/json"

// State is a game session's position in the lifecycle state machine.
type State int

const (
	Uninitialized State = iota
	Running
	Paused
	Ended
	Cleaned
)

var stateNames = map[State]string{
	Uninitialized: "uninitialized",
	Running:       "running",
	Paused:        "paused",
	Ended:         "ended",
	Cleaned:       "cleaned",
}

var stateFromName = map[string]State{
	"uninitialized": Uninitialized,
	"running":       Running,
	"paused":        Paused,
	"ended":         Ended,
	"cleaned":       Cleaned,
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *State) UnmarshalJSON(data []byte) error {
	var n string
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if v, ok := stateFromName[n]; ok {
		*s = v
	}
	return nil
}

// IsTerminal reports whether only Restart or Cleanup remain valid.
func (s State) IsTerminal() bool {
	return s == Ended || s == Cleaned
}

// Lifecycle tracks the state machine on behalf of a game. Every transition
// method reports whether it changed anything; invalid transitions are no-ops.
type Lifecycle struct {
	state State
}

// State returns the current state.
func (l *Lifecycle) State() State {
	return l.state
}

// Running reports whether the game accepts input and advances ticks.
func (l *Lifecycle) Running() bool {
	return l.state == Running
}

// Begin enters Running from any state except Cleaned.
func (l *Lifecycle) Begin() bool {
	if l.state == Cleaned {
		return false
	}
	l.state = Running
	return true
}

// Pause moves Running to Paused.
func (l *Lifecycle) Pause() bool {
	if l.state != Running {
		return false
	}
	l.state = Paused
	return true
}

// Resume moves Paused to Running.
func (l *Lifecycle) Resume() bool {
	if l.state != Paused {
		return false
	}
	l.state = Running
	return true
}

// End moves Running to Ended.
func (l *Lifecycle) End() bool {
	if l.state != Running {
		return false
	}
	l.state = Ended
	return true
}

// Release moves any state to Cleaned. It returns false if the game was
// already cleaned up.
func (l *Lifecycle) Release() bool {
	if l.state == Cleaned {
		return false
	}
	l.state = Cleaned
	return true
}
