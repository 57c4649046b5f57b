package evaluation

import "fmt"

// State represents the outcome of a single check. A check starts
// out pending and moves to exactly one terminal state when its
// chain is evaluated.
type State int

const (
	// StatePending means the check has not been evaluated yet.
	StatePending State = iota
	// StatePassed means the check succeeded.
	StatePassed
	// StateFailed means the check was executed and did not
	// succeed.
	StateFailed
	// StateSkipped means the check was never executed, either
	// because an earlier check in the chain failed or because
	// the enclosing chain itself was skipped.
	StateSkipped
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StatePassed:
		return "passed"
	case StateFailed:
		return "failed"
	case StateSkipped:
		return "skipped"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// MarshalJSON encodes the state as its string form.
func (s State) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON decodes a state from its string form.
func (s *State) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"pending"`:
		*s = StatePending
	case `"passed"`:
		*s = StatePassed
	case `"failed"`:
		*s = StateFailed
	case `"skipped"`:
		*s = StateSkipped
	default:
		return fmt.Errorf("unknown state: %s", data)
	}
	return nil
}
