// Package definition provides a declarative counterpart to the
// fluent expression builder: checks described as data (type,
// expected value, message), an extensible engine that turns them
// into executable evaluation chains, and rule banks loaded from
// JSON or YAML files.
package definition

// Definition describes a single check to evaluate against a
// value.
type Definition struct {
	// Type is the check type (e.g., "contains", "not_empty",
	// "min_length").
	Type string `json:"type"`

	// Target is the name of the value to check when evaluating
	// against a map of named values.
	Target string `json:"target,omitempty"`

	// Value is the expected value for single-value checks.
	Value any `json:"value,omitempty"`

	// Values holds expected values for multi-value checks
	// (e.g., "contains_any").
	Values []any `json:"values,omitempty"`

	// Message is a human-readable hint shown on failure.
	Message string `json:"message,omitempty"`
}

// RuleSet is a named, ordered list of check definitions that are
// evaluated as one chain.
type RuleSet struct {
	// Name identifies the rule set within its bank.
	Name string `json:"name"`

	// Checks are the definitions evaluated in order.
	Checks []Definition `json:"checks"`
}
