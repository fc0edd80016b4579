package cfgnorm

// ToCNF returns a grammar in Chomsky normal form deriving the same language
// as g. Every production of the result is either two non-terminals, a single
// terminal, or the epsilon production on the start symbol when the language
// contains the empty word. The input grammar is not modified.
func ToCNF(g *Grammar, opts ...Option) (*Grammar, error) {
	cfg := newConfig(opts)
	out := g.Clone()

	if err := ensureFreshStart(out, "START"); err != nil {
		return nil, err
	}
	cfg.tracef("START", out)

	if err := liftTerminals(out, "TERM", false); err != nil {
		return nil, err
	}
	cfg.tracef("TERM", out)

	if err := binarize(out, "BIN"); err != nil {
		return nil, err
	}
	cfg.tracef("BIN", out)

	eliminateEpsilon(out)
	if err := out.checkRuleLimit("DEL", cfg.ruleLimit); err != nil {
		return nil, err
	}
	cfg.tracef("DEL", out)

	eliminateUnits(out)
	if err := out.checkRuleLimit("UNIT", cfg.ruleLimit); err != nil {
		return nil, err
	}
	cfg.tracef("UNIT", out)

	out.Cleanup()
	cfg.tracef("CLEANUP", out)

	if err := checkCNF(out); err != nil {
		return nil, err
	}
	return out, nil
}

// checkCNF verifies the Chomsky normal form postcondition.
func checkCNF(g *Grammar) error {
	for _, nt := range g.NonTerminals() {
		for _, p := range g.Productions(nt) {
			switch {
			case p.IsEpsilon():
				if nt != g.Start() {
					return invariantErrorf("CNF", "epsilon production on %s", nt)
				}
			case len(p) == 1:
				if p[0].Kind != Terminal {
					return invariantErrorf("CNF", "unit production %s on %s", p, nt)
				}
			case len(p) == 2:
				if p[0].Kind != NonTerminal || p[1].Kind != NonTerminal {
					return invariantErrorf("CNF", "mixed pair %s on %s", p, nt)
				}
			default:
				return invariantErrorf("CNF", "production %s on %s has %d symbols", p, nt, len(p))
			}
		}
	}
	return nil
}
