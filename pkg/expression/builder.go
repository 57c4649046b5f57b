package expression

import "digital.vasic.zeal/pkg/evaluation"

// chain owns the subject and the compound check list shared by the
// concrete expression types.
type chain[T any] struct {
	subject T
	checks  *evaluation.Compound[T]
}

func newChain[T any](subject T, name string) chain[T] {
	return chain[T]{
		subject: subject,
		checks:  evaluation.NewCompound[T](name),
	}
}

func (c *chain[T]) evaluate() *evaluation.Evaluated {
	return c.checks.Evaluate(c.subject)
}

// newCheck starts a builder for a check whose test assumes a
// non-nil subject.
func (c *chain[T]) newCheck(
	test func(subject T) bool,
) *checkBuilder[T] {
	return &checkBuilder[T]{chain: c, test: test}
}

// newNullableCheck starts a builder for a check whose test
// tolerates a nil subject.
func (c *chain[T]) newNullableCheck(
	test func(subject T) bool,
) *checkBuilder[T] {
	return &checkBuilder[T]{
		chain:    c,
		test:     test,
		nullable: true,
	}
}

// checkBuilder assembles a single terminal check and appends it to
// the chain.
type checkBuilder[T any] struct {
	chain    *chain[T]
	test     func(subject T) bool
	nullable bool
	name     string
	reason   evaluation.Reason[T]
}

func (b *checkBuilder[T]) named(name string) *checkBuilder[T] {
	b.name = name
	return b
}

func (b *checkBuilder[T]) expected(s string) *checkBuilder[T] {
	b.reason.Expected = func(T) string { return s }
	return b
}

func (b *checkBuilder[T]) actual(
	f evaluation.Formatter[T],
) *checkBuilder[T] {
	b.reason.Actual = f
	return b
}

func (b *checkBuilder[T]) hint(s string) *checkBuilder[T] {
	b.reason.Hint = func(T) string { return s }
	return b
}

func (b *checkBuilder[T]) build() *evaluation.Terminal[T] {
	name := b.name
	if name == "" {
		name = "<unnamed>"
	}
	if b.nullable {
		return evaluation.NewNullableTerminal(
			name, b.test, b.reason,
		)
	}
	return evaluation.NewTerminal(name, b.test, b.reason)
}

// append adds the check to the end of the chain.
func (b *checkBuilder[T]) append() {
	b.chain.checks.Append(b.build())
}

// prepend places the check in the nullity slot so it is evaluated
// before every other check.
func (b *checkBuilder[T]) prepend() {
	b.chain.checks.Prepend(b.build())
}
