package report

import (
	"encoding/json"
	"io"

	"digital.vasic.zeal/pkg/evaluation"
)

// JSONRenderer renders a result tree as JSON.
type JSONRenderer struct {
	// Pretty enables indented output.
	Pretty bool
}

// NewJSONRenderer creates a compact JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render produces the JSON form of a result tree.
func (r *JSONRenderer) Render(
	root *evaluation.Evaluated,
) ([]byte, error) {
	if root == nil {
		return nil, ErrNilResult
	}
	if r.Pretty {
		return json.MarshalIndent(root, "", "  ")
	}
	return json.Marshal(root)
}

// Write renders a result tree to the given writer.
func (r *JSONRenderer) Write(
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
