package cfgnorm

import (
	"strings"

	"golang.org/x/exp/slices"
)

// freshLetters is the prefix alphabet for generated non-terminal names. E is
// reserved by the text format for epsilon and never used.
const freshLetters = "ABCDFGHIJKLMNOPQRSTUVWXYZ"

// Grammar is a context-free grammar: a start symbol, a set of non-terminals
// and, for each non-terminal, an ordered list of productions.
//
// Non-terminals are tracked in insertion order and every transformation
// iterates in that order, so transformed grammars are reproducible
// byte-for-byte.
type Grammar struct {
	start string
	order []string
	index map[string]bool
	rules map[string][]Production
}

// New returns a grammar with the given start symbol and no productions.
func New(start string) *Grammar {
	g := &Grammar{
		index: map[string]bool{},
		rules: map[string][]Production{},
	}
	g.SetStart(start)
	return g
}

// Start returns the grammar's start symbol.
func (g *Grammar) Start() string { return g.start }

// SetStart designates name as the start symbol, registering it as a
// non-terminal if needed.
func (g *Grammar) SetStart(name string) {
	g.Add(name)
	g.start = name
}

// Add registers a non-terminal name. Adding an existing name is a no-op.
func (g *Grammar) Add(name string) {
	if g.index[name] {
		return
	}
	g.index[name] = true
	g.order = append(g.order, name)
}

// Contains reports whether name is a registered non-terminal.
func (g *Grammar) Contains(name string) bool { return g.index[name] }

// NonTerminals returns the non-terminal names in insertion order.
func (g *Grammar) NonTerminals() []string {
	return append([]string{}, g.order...)
}

// Productions returns the productions of the given non-terminal, in order.
func (g *Grammar) Productions(name string) []Production {
	return g.rules[name]
}

// AddProduction appends a production to lhs, registering lhs and any
// non-terminals the production references. Duplicate productions within a
// non-terminal are discarded.
func (g *Grammar) AddProduction(lhs string, p Production) {
	g.Add(lhs)
	for _, s := range p {
		if s.Kind == NonTerminal {
			g.Add(s.Name)
		}
	}
	key := p.String()
	for _, q := range g.rules[lhs] {
		if q.String() == key {
			return
		}
	}
	g.rules[lhs] = append(g.rules[lhs], p)
}

// defined reports whether name appears as the left-hand side of any rule.
func (g *Grammar) defined(name string) bool {
	_, ok := g.rules[name]
	return ok
}

// remove deletes a non-terminal and its rule list. Productions elsewhere that
// reference it are left to the caller.
func (g *Grammar) remove(name string) {
	if !g.index[name] {
		return
	}
	delete(g.index, name)
	delete(g.rules, name)
	for i, n := range g.order {
		if n == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// Fresh registers and returns a new non-terminal name that does not collide
// with the current set. Names are drawn digit-major (A0, B0, ..., Z0, A1,
// ...), skipping the reserved E prefix.
func (g *Grammar) Fresh() (string, error) {
	return g.fresh("")
}

// fresh is Fresh with the requesting pass named in the exhaustion error.
func (g *Grammar) fresh(pass string) (string, error) {
	for d := '0'; d <= '9'; d++ {
		for _, l := range freshLetters {
			name := string(l) + string(d)
			if !g.index[name] {
				g.Add(name)
				return name, nil
			}
		}
	}
	return "", &ResourceError{Pass: pass, Message: "non-terminal namespace exhausted"}
}

// Clone returns a deep copy of the grammar.
func (g *Grammar) Clone() *Grammar {
	out := &Grammar{
		start: g.start,
		order: append([]string{}, g.order...),
		index: make(map[string]bool, len(g.index)),
		rules: make(map[string][]Production, len(g.rules)),
	}
	for name := range g.index {
		out.index[name] = true
	}
	for name, prods := range g.rules {
		cp := make([]Production, len(prods))
		for i, p := range prods {
			cp[i] = p.clone()
		}
		out.rules[name] = cp
	}
	return out
}

// String returns the grammar in the textual rule format written by Write.
func (g *Grammar) String() string {
	var out strings.Builder
	_ = Write(&out, g)
	return out.String()
}

// size is the cleanup fixpoint measure: non-terminal count plus total
// production count.
func (g *Grammar) size() int {
	n := len(g.order)
	for _, nt := range g.order {
		n += len(g.rules[nt])
	}
	return n
}

// setProductions replaces the rule list of name, deduplicating while
// preserving first-occurrence order.
func (g *Grammar) setProductions(name string, prods []Production) {
	g.Add(name)
	seen := make(map[string]bool, len(prods))
	out := make([]Production, 0, len(prods))
	for _, p := range prods {
		key := p.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	g.rules[name] = out
}

// checkRuleLimit enforces the configured guard on rule-list growth, naming
// the pass that tripped it.
func (g *Grammar) checkRuleLimit(pass string, limit int) error {
	for _, nt := range g.order {
		if len(g.rules[nt]) > limit {
			return &ResourceError{Pass: pass, Message: "non-terminal " + nt + " exceeds the production limit"}
		}
	}
	return nil
}

// Terminals returns the sorted set of terminal letters appearing in any
// production.
func (g *Grammar) Terminals() []string {
	set := map[string]bool{}
	for _, nt := range g.order {
		for _, p := range g.rules[nt] {
			for _, s := range p {
				if s.Kind == Terminal {
					set[s.Name] = true
				}
			}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
