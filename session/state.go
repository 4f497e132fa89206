package session

import "fmt"

// State tracks how far a session got through its single
// request/response cycle.
type State uint8

const (
	StateUnset State = iota
	StateReading
	StateParsing
	StateRouting
	StateReadingFile
	StateWriting
	StateDone
	// The connection was dropped without a response.
	StateFailed
)

var stateNames = [...]string{
	StateUnset:       "Unset",
	StateReading:     "Reading",
	StateParsing:     "Parsing",
	StateRouting:     "Routing",
	StateReadingFile: "ReadingFile",
	StateWriting:     "Writing",
	StateDone:        "Done",
	StateFailed:      "Failed",
}

func (ss State) String() string {
	if int(ss) < len(stateNames) {
		return stateNames[ss]
	}
	return fmt.Sprintf("State(%d)", ss)
}

func (ss State) ReceivedRequest() State {
	if ss == StateReading {
		return StateParsing
	}
	panic("wrong state: " + ss.String())
}

func (ss State) Parsed() State {
	if ss == StateParsing {
		return StateRouting
	}
	panic("wrong state: " + ss.String())
}

// Rejected skips routing and goes straight to writing an error
// response.
func (ss State) Rejected() State {
	if ss == StateParsing {
		return StateWriting
	}
	panic("wrong state: " + ss.String())
}

func (ss State) Routed() State {
	if ss == StateRouting {
		return StateReadingFile
	}
	panic("wrong state: " + ss.String())
}

func (ss State) ReadFile() State {
	if ss == StateReadingFile {
		return StateWriting
	}
	panic("wrong state: " + ss.String())
}

func (ss State) Wrote() State {
	if ss == StateWriting {
		return StateDone
	}
	panic("wrong state: " + ss.String())
}

func (ss State) Failed() State {
	return StateFailed
}

func (ss State) Terminal() bool {
	return ss == StateDone || ss == StateFailed
}
