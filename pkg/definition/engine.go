package definition

import (
	"fmt"
	"sync"

	"digital.vasic.zeal/pkg/evaluation"
)

// nullityType is the one check type that is moved to the front of
// a chain regardless of where it appears.
const nullityType = "not_nil"

// Factory builds an executable check from a definition. It
// returns an error when the definition is malformed (e.g., a
// missing or mistyped expected value).
type Factory func(def Definition) (
	evaluation.Evaluation[any], error,
)

// Engine turns definitions into executable evaluation chains.
type Engine interface {
	// Chain builds a named evaluation chain from the supplied
	// definitions, in order. A "not_nil" definition is placed
	// in the chain's nullity slot so it evaluates first.
	Chain(name string, defs []Definition) (
		*evaluation.Compound[any], error,
	)

	// Evaluate builds a chain from the definitions and runs it
	// against the value.
	Evaluate(name string, defs []Definition, value any) (
		*evaluation.Evaluated, error,
	)

	// Register adds a custom factory for the given check type.
	// Returns an error if the type is already registered.
	Register(defType string, factory Factory) error

	// HasFactory returns true if the given check type has a
	// registered factory.
	HasFactory(defType string) bool
}

// DefaultEngine is the standard Engine implementation. It is safe
// for concurrent use.
type DefaultEngine struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewEngine creates a DefaultEngine with all built-in check
// factories pre-registered.
func NewEngine() *DefaultEngine {
	e := &DefaultEngine{
		factories: make(map[string]Factory),
	}
	e.registerBuiltins()
	return e
}

// Register adds a custom factory for the given check type.
func (e *DefaultEngine) Register(
	defType string,
	factory Factory,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.factories[defType]; exists {
		return fmt.Errorf(
			"check type already registered: %s", defType,
		)
	}

	e.factories[defType] = factory
	return nil
}

// HasFactory returns true if the given check type has a
// registered factory.
func (e *DefaultEngine) HasFactory(defType string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, exists := e.factories[defType]
	return exists
}

// Chain builds a named evaluation chain from the supplied
// definitions.
func (e *DefaultEngine) Chain(
	name string,
	defs []Definition,
) (*evaluation.Compound[any], error) {
	chain := evaluation.NewCompound[any](name)

	for _, def := range defs {
		e.mu.RLock()
		factory, exists := e.factories[def.Type]
		e.mu.RUnlock()

		if !exists {
			return nil, fmt.Errorf(
				"unknown check type: %s", def.Type,
			)
		}

		check, err := factory(def)
		if err != nil {
			return nil, fmt.Errorf(
				"build check %s: %w", def.Type, err,
			)
		}

		if def.Type == nullityType {
			chain.Prepend(check)
		} else {
			chain.Append(check)
		}
	}

	return chain, nil
}

// Evaluate builds a chain from the definitions and runs it
// against the value.
func (e *DefaultEngine) Evaluate(
	name string,
	defs []Definition,
	value any,
) (*evaluation.Evaluated, error) {
	chain, err := e.Chain(name, defs)
	if err != nil {
		return nil, err
	}
	return chain.Evaluate(value), nil
}

// EvaluateAll evaluates grouped definitions against a map of
// named values. Definitions are grouped by Target, each group
// evaluated as its own chain against the matching value. A
// missing target fails that group's chain without failing the
// others.
func (e *DefaultEngine) EvaluateAll(
	name string,
	defs []Definition,
	values map[string]any,
) (*evaluation.Evaluated, error) {
	root := &evaluation.Evaluated{
		Name:  name,
		State: evaluation.StatePassed,
	}

	grouped, order := groupByTarget(defs)
	failed := false

	for _, target := range order {
		value, exists := values[target]
		if !exists {
			failed = true
			root.Children = append(
				root.Children, &evaluation.Evaluated{
					Name:  target,
					State: evaluation.StateFailed,
					Rationale: evaluation.Rationale{
						Expected: "target present",
						Actual: fmt.Sprintf(
							"target not found: %s", target,
						),
					},
				},
			)
			continue
		}

		node, err := e.Evaluate(
			target, grouped[target], value,
		)
		if err != nil {
			return nil, err
		}
		if node.State == evaluation.StateFailed {
			failed = true
		}
		root.Children = append(root.Children, node)
	}

	if failed {
		root.State = evaluation.StateFailed
	}

	passed, failedCount, skipped := root.Counts()
	root.Rationale = evaluation.Rationale{
		Expected: "All children must pass",
		Actual: fmt.Sprintf(
			"Passed: %d, Failed: %d, Skipped: %d",
			passed, failedCount, skipped,
		),
	}
	return root, nil
}

func groupByTarget(
	defs []Definition,
) (map[string][]Definition, []string) {
	grouped := make(map[string][]Definition)
	order := make([]string, 0)

	for _, def := range defs {
		if _, seen := grouped[def.Target]; !seen {
			order = append(order, def.Target)
		}
		grouped[def.Target] = append(grouped[def.Target], def)
	}
	return grouped, order
}
