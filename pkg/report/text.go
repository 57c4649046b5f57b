package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"digital.vasic.zeal/pkg/evaluation"
)

// ErrNilResult is returned when a renderer receives a nil tree.
var ErrNilResult = errors.New("result tree must not be nil")

// TextRenderer renders a result tree as an indented, human
// readable listing, one check per line.
type TextRenderer struct {
	// Color enables ANSI-colored state labels. Output is
	// automatically uncolored when not writing to a terminal.
	Color bool

	// Indent is the indentation applied per tree level. Two
	// spaces when empty.
	Indent string
}

// NewTextRenderer creates a plain (uncolored) text renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// NewColorTextRenderer creates a text renderer with colored
// state labels.
func NewColorTextRenderer() *TextRenderer {
	return &TextRenderer{Color: true}
}

// Render produces the text form of a result tree.
func (r *TextRenderer) Render(
	root *evaluation.Evaluated,
) ([]byte, error) {
	if root == nil {
		return nil, ErrNilResult
	}

	var buf bytes.Buffer
	root.Walk(func(node *evaluation.Evaluated, depth int) {
		r.writeNode(&buf, node, depth)
	})
	return buf.Bytes(), nil
}

// Write renders a result tree to the given writer.
func (r *TextRenderer) Write(
	w io.Writer,
	root *evaluation.Evaluated,
) error {
	out, err := r.Render(root)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func (r *TextRenderer) writeNode(
	buf *bytes.Buffer,
	node *evaluation.Evaluated,
	depth int,
) {
	indent := r.Indent
	if indent == "" {
		indent = "  "
	}

	fmt.Fprintf(
		buf, "%s[%s] %s",
		strings.Repeat(indent, depth),
		r.state(node.State), node.Name,
	)

	if node.State != evaluation.StateSkipped {
		fmt.Fprintf(
			buf, " (expected: %s, actual: %s)",
			node.Rationale.Expected, node.Rationale.Actual,
		)
		if node.Rationale.Hint != "" {
			fmt.Fprintf(buf, " hint: %s", node.Rationale.Hint)
		}
	}

	buf.WriteByte('\n')
}

func (r *TextRenderer) state(s evaluation.State) string {
	if !r.Color {
		return s.String()
	}

	switch s {
	case evaluation.StatePassed:
		return color.GreenString(s.String())
	case evaluation.StateFailed:
		return color.RedString(s.String())
	case evaluation.StateSkipped:
		return color.YellowString(s.String())
	}
	return s.String()
}
