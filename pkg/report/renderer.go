// Package report renders evaluated expression trees as indented
// text or JSON, and aggregates them into run summaries.
package report

import (
	"io"

	"digital.vasic.zeal/pkg/evaluation"
)

// Renderer defines the interface for rendering evaluation result
// trees.
type Renderer interface {
	// Render produces the serialized form of a result tree.
	Render(root *evaluation.Evaluated) ([]byte, error)

	// Write renders a result tree to the given writer.
	Write(w io.Writer, root *evaluation.Evaluated) error
}
