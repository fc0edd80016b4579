package cfgnorm

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Generate enumerates every terminal word of length at most n derivable from
// the grammar's start symbol, sorted lexicographically and deduplicated. The
// empty word appears as an empty string when derivable. n < 0 yields an
// empty list.
//
// The traversal bounds each sentential form by the minimum length of what it
// can still derive, counting nullable non-terminals as zero. On normalized
// grammars this bound alone ends the search; on a raw grammar where nullable
// non-terminals let a form grow without adding length, it does not. The
// expansion budget (see WithExpansionLimit) bounds the work on every grammar;
// exceeding it returns a ResourceError.
func Generate(g *Grammar, n int, opts ...Option) ([]string, error) {
	cfg := newConfig(opts)
	if n < 0 {
		return []string{}, nil
	}

	nullable := nullableSet(g)

	type form struct {
		prefix string
		suffix Production
	}
	words := map[string]bool{}
	seen := map[string]bool{}
	stack := []form{{suffix: Production{NT(g.start)}}}
	budget := cfg.expansionLimit

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Shift leading terminals into the prefix and drop epsilons.
		i := 0
		prefix := f.prefix
		for i < len(f.suffix) {
			s := f.suffix[i]
			if s.Kind == Terminal {
				prefix += s.Name
				i++
				continue
			}
			if s.Kind == Epsilon {
				i++
				continue
			}
			break
		}
		suffix := f.suffix[i:]

		if len(suffix) == 0 {
			if len(prefix) <= n {
				words[prefix] = true
			}
			continue
		}
		if len(prefix)+minLength(suffix, nullable) > n {
			continue
		}
		key := prefix + "\x00" + suffix.String()
		if seen[key] {
			continue
		}
		seen[key] = true

		head := suffix[0]
		for _, p := range g.rules[head.Name] {
			if budget--; budget < 0 {
				return nil, &ResourceError{Pass: "GENERATE", Message: "expansion budget exhausted"}
			}
			expansion := p
			if p.IsEpsilon() {
				expansion = nil
			}
			stack = append(stack, form{prefix: prefix, suffix: concat(expansion, suffix[1:])})
		}
	}

	out := make([]string, 0, len(words))
	for w := range words {
		out = append(out, w)
	}
	slices.Sort(out)
	return out, nil
}

// nullableSet computes the non-terminals that can derive the empty word.
func nullableSet(g *Grammar) map[string]bool {
	nullable := map[string]bool{}
	for {
		changed := false
		for _, nt := range g.order {
			if nullable[nt] {
				continue
			}
			for _, p := range g.rules[nt] {
				if productionNullable(p, nullable) {
					nullable[nt] = true
					changed = true
					break
				}
			}
		}
		if !changed {
			return nullable
		}
	}
}

// minLength is a lower bound on the length of any terminal word derivable
// from the sentential form: terminals count one, nullable non-terminals may
// vanish, all other non-terminals must produce at least one letter.
func minLength(p Production, nullable map[string]bool) int {
	n := 0
	for _, s := range p {
		switch s.Kind {
		case Terminal:
			n++
		case NonTerminal:
			if !nullable[s.Name] {
				n++
			}
		}
	}
	return n
}

// FormatWords renders a generated word list one word per line, the empty
// word as a blank line.
func FormatWords(words []string) string {
	var out strings.Builder
	for _, w := range words {
		out.WriteString(w)
		out.WriteByte('\n')
	}
	return out.String()
}
