package router

import (
	"github.com/fwojciec/docsite"
)

// State is the navigation state of a Router.
type State int

// Navigation states.
const (
	StateIdle State = iota
	StateLoading
	StateRendered
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateError:
		return "error"
	}
	return "unknown"
}

// transitions lists the states reachable from each state. Loading may be
// re-entered when a newer navigation supersedes the current one.
var transitions = map[State][]State{
	StateIdle:     {StateLoading},
	StateLoading:  {StateLoading, StateRendered, StateError},
	StateRendered: {StateLoading},
	StateError:    {StateLoading},
}

// transition moves the router to state to. Callers hold r.mu.
func (r *Router) transition(to State) error {
	for _, s := range transitions[r.state] {
		if s == to {
			r.state = to
			return nil
		}
	}
	return docsite.Errorf(docsite.EINTERNAL, "invalid navigation transition %s -> %s", r.state, to)
}
