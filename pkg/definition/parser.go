package definition

import "strings"

// Parse parses a compact check string of the form "type:value"
// into a Definition. If no colon is present the entire string is
// treated as the type and the value is left unset.
//
// Examples:
//
//	"contains:func"  -> {Type: "contains", Value: "func"}
//	"not_empty"      -> {Type: "not_empty"}
//	"min_length:100" -> {Type: "min_length", Value: "100"}
func Parse(s string) Definition {
	parts := strings.SplitN(s, ":", 2)

	def := Definition{Type: parts[0]}
	if len(parts) > 1 {
		def.Value = parts[1]
	}
	return def
}

// ParseAll parses multiple compact check strings in order.
func ParseAll(specs ...string) []Definition {
	defs := make([]Definition, 0, len(specs))
	for _, s := range specs {
		defs = append(defs, Parse(s))
	}
	return defs
}
