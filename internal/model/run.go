package model

import "time"

type SymbolState int

const (
	SymbolFetched SymbolState = iota
	SymbolEmpty
	SymbolFailed
)

func (s SymbolState) String() string {
	switch s {
	case SymbolFetched:
		return "fetched"
	case SymbolEmpty:
		return "empty"
	case SymbolFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type SymbolResult struct {
	Symbol   string
	State    SymbolState
	Rows     int
	Close    float64
	HasClose bool
	Err      error
}

type RunOutcome int

const (
	OutcomeNoDataFound RunOutcome = iota
	OutcomeReady
)

func (o RunOutcome) String() string {
	if o == OutcomeReady {
		return "ready"
	}
	return "no data found"
}

type RunResult struct {
	Day     time.Time
	Table   Table
	Outcome RunOutcome
	Symbols []SymbolResult
}

func (r RunResult) Count(state SymbolState) int {
	n := 0
	for _, s := range r.Symbols {
		if s.State == state {
			n++
		}
	}
	return n
}
