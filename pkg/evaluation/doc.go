// Package evaluation contains the core check model for zeal:
// terminal (single) checks, compound (ordered) check chains, and the
// immutable result trees produced when a chain is evaluated against
// a subject.
//
// A compound chain keeps two buckets: an optional nullity check that
// is always evaluated first, and an insertion-ordered list of all
// other checks. Once any check fails, the remaining checks in the
// chain are recorded as skipped without being executed.
package evaluation
