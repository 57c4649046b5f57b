package report

import (
	"time"

	"github.com/google/uuid"

	"digital.vasic.zeal/pkg/evaluation"
)

// Summary aggregates the outcome of one evaluation run: the
// overall state plus terminal check counts across the whole tree.
type Summary struct {
	// ID uniquely identifies this summary.
	ID string `json:"id"`

	// GeneratedAt is when the summary was built.
	GeneratedAt time.Time `json:"generated_at"`

	// Name is the name of the evaluated expression.
	Name string `json:"name"`

	// State is the overall state of the evaluation.
	State evaluation.State `json:"state"`

	// TotalChecks is the number of terminal checks in the tree.
	TotalChecks int `json:"total_checks"`

	// Passed is the number of terminal checks that passed.
	Passed int `json:"passed"`

	// Failed is the number of terminal checks that failed.
	Failed int `json:"failed"`

	// Skipped is the number of terminal checks that were
	// skipped.
	Skipped int `json:"skipped"`
}

// BuildSummary creates a summary from an evaluated tree. Counts
// cover terminal checks only; compound nodes contribute their
// children, not themselves.
func BuildSummary(root *evaluation.Evaluated) *Summary {
	s := &Summary{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now(),
	}
	if root == nil {
		return s
	}

	s.Name = root.Name
	s.State = root.State

	root.Walk(func(node *evaluation.Evaluated, _ int) {
		if len(node.Children) > 0 {
			return
		}
		s.TotalChecks++
		switch node.State {
		case evaluation.StatePassed:
			s.Passed++
		case evaluation.StateFailed:
			s.Failed++
		case evaluation.StateSkipped:
			s.Skipped++
		}
	})

	return s
}

// PassRate returns the fraction of terminal checks that passed,
// or zero for an empty summary.
func (s *Summary) PassRate() float64 {
	if s.TotalChecks == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.TotalChecks)
}
