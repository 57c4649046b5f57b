package evaluation

import "fmt"

const (
	compoundExpected = "All children must pass"
	compoundActual   = "Passed: %d, Failed: %d, Skipped: %d"
)

// Compound is an ordered chain of checks evaluated against a
// single subject. A nullity check, if present, is always evaluated
// first; all other checks run in the order they were appended.
// Once any check fails, the remaining checks are recorded as
// skipped without being executed.
//
// A Compound owns its children exclusively and is itself an
// Evaluation, so chains can nest.
type Compound[T any] struct {
	name    string
	notNull Evaluation[T]
	others  []Evaluation[T]
}

// NewCompound creates an empty chain with the given name.
func NewCompound[T any](name string) *Compound[T] {
	return &Compound[T]{name: name}
}

// Name returns the name of the chain.
func (c *Compound[T]) Name() string { return c.name }

// Len returns the number of checks in the chain.
func (c *Compound[T]) Len() int {
	n := len(c.others)
	if c.notNull != nil {
		n++
	}
	return n
}

// Append adds a check to the end of the chain.
func (c *Compound[T]) Append(e Evaluation[T]) {
	c.others = append(c.others, e)
}

// Prepend places a check in the nullity slot, which is evaluated
// before every appended check regardless of when it was added.
// A chain holds at most one such check; a later Prepend replaces
// the earlier one.
func (c *Compound[T]) Prepend(e Evaluation[T]) {
	c.notNull = e
}

// effective returns the checks in evaluation order.
func (c *Compound[T]) effective() []Evaluation[T] {
	chain := make([]Evaluation[T], 0, c.Len())
	if c.notNull != nil {
		chain = append(chain, c.notNull)
	}
	return append(chain, c.others...)
}

// Evaluate runs every check in effective order and returns a fresh
// result tree. The chain itself passes only when every child
// passed; it fails as soon as any child fails.
func (c *Compound[T]) Evaluate(subject T) *Evaluated {
	children := make([]*Evaluated, 0, c.Len())
	failed := false

	for _, e := range c.effective() {
		if failed {
			children = append(children, e.Skip())
			continue
		}

		r := e.Evaluate(subject)
		if r.State == StateFailed {
			failed = true
		}
		children = append(children, r)
	}

	state := StatePassed
	if failed {
		state = StateFailed
	}

	return c.result(state, children)
}

// Skip records the chain and every check in it as skipped.
func (c *Compound[T]) Skip() *Evaluated {
	children := make([]*Evaluated, 0, c.Len())
	for _, e := range c.effective() {
		children = append(children, e.Skip())
	}
	return c.result(StateSkipped, children)
}

func (c *Compound[T]) result(
	state State,
	children []*Evaluated,
) *Evaluated {
	node := &Evaluated{
		Name:     c.name,
		State:    state,
		Children: children,
	}

	passed, failedCount, skipped := node.Counts()
	node.Rationale = Rationale{
		Expected: compoundExpected,
		Actual: fmt.Sprintf(
			compoundActual, passed, failedCount, skipped,
		),
	}
	return node
}
