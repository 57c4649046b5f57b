package evaluation

// Evaluated is one node of an evaluation result tree. It is
// produced fresh on every evaluation and must not be mutated after
// it is returned.
type Evaluated struct {
	// Name is the name of the check that produced this node.
	Name string `json:"name"`

	// State is the terminal state the check reached.
	State State `json:"state"`

	// Rationale explains the outcome.
	Rationale Rationale `json:"rationale"`

	// Children holds the ordered child results for compound
	// checks. It is nil for terminal checks.
	Children []*Evaluated `json:"children,omitempty"`
}

// Counts returns the number of direct children in each terminal
// state.
func (e *Evaluated) Counts() (passed, failed, skipped int) {
	for _, c := range e.Children {
		switch c.State {
		case StatePassed:
			passed++
		case StateFailed:
			failed++
		case StateSkipped:
			skipped++
		}
	}
	return passed, failed, skipped
}

// AllPassed returns true if every direct child passed.
func (e *Evaluated) AllPassed() bool {
	for _, c := range e.Children {
		if c.State != StatePassed {
			return false
		}
	}
	return true
}

// Walk visits this node and every descendant in evaluation order.
func (e *Evaluated) Walk(visit func(node *Evaluated, depth int)) {
	e.walk(visit, 0)
}

func (e *Evaluated) walk(
	visit func(node *Evaluated, depth int),
	depth int,
) {
	visit(e, depth)
	for _, c := range e.Children {
		c.walk(visit, depth+1)
	}
}
