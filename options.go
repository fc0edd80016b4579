package cfgnorm

// An Option modifies the behaviour of a transformation or generation entry
// point.
type Option func(c *config)

type config struct {
	ruleLimit      int
	unfoldLimit    int
	expansionLimit int
	trace          func(pass string, g *Grammar)
}

func newConfig(opts []Option) *config {
	c := &config{
		ruleLimit:      10000,
		unfoldLimit:    256,
		expansionLimit: 1 << 20,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) tracef(pass string, g *Grammar) {
	if c.trace != nil {
		c.trace(pass, g)
	}
}

// WithRuleLimit caps the number of productions any single non-terminal may
// accumulate during a transformation. Exceeding it aborts with a
// ResourceError.
func WithRuleLimit(n int) Option {
	return func(c *config) { c.ruleLimit = n }
}

// WithUnfoldLimit bounds the number of head-unfolding rounds. Exhausting it
// aborts with an InvariantError.
func WithUnfoldLimit(n int) Option {
	return func(c *config) { c.unfoldLimit = n }
}

// WithExpansionLimit caps the number of sentential forms the word generator
// may expand. Exceeding it aborts with a ResourceError.
func WithExpansionLimit(n int) Option {
	return func(c *config) { c.expansionLimit = n }
}

// WithTrace installs a callback invoked with the grammar state after each
// transformation pass.
func WithTrace(fn func(pass string, g *Grammar)) Option {
	return func(c *config) { c.trace = fn }
}
