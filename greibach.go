package cfgnorm

// ToGNF returns a grammar in Greibach normal form deriving the same language
// as g. Every production of the result starts with a terminal followed by
// zero or more non-terminals, except the epsilon production on the start
// symbol when the language contains the empty word. The input grammar is not
// modified.
func ToGNF(g *Grammar, opts ...Option) (*Grammar, error) {
	cfg := newConfig(opts)
	out := g.Clone()

	if err := ensureFreshStart(out, "START"); err != nil {
		return nil, err
	}
	cfg.tracef("START", out)

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

	if err := eliminateLeftRecursion(out, cfg); err != nil {
		return nil, err
	}
	cfg.tracef("LEFTREC", out)

	if err := unfoldHeads(out, cfg); err != nil {
		return nil, err
	}
	cfg.tracef("UNFOLD", out)

	if err := liftTerminals(out, "LIFT", true); err != nil {
		return nil, err
	}
	cfg.tracef("LIFT", out)

	out.Cleanup()
	cfg.tracef("CLEANUP", out)

	if err := checkGNF(out); err != nil {
		return nil, err
	}
	return out, nil
}

// eliminateLeftRecursion removes direct and indirect left recursion using the
// ordered substitution scheme: for each non-terminal A_i in registration
// order, productions beginning with an earlier A_j (j < i) are replaced by
// the expansion of A_j's productions, then direct recursion on A_i is
// rewritten through a fresh tail non-terminal.
//
// The grammar must already be free of epsilon productions (other than on the
// start, which never appears on a right-hand side) and unit productions.
func eliminateLeftRecursion(g *Grammar, cfg *config) error {
	names := g.NonTerminals()
	pos := map[string]int{}
	for i, n := range names {
		pos[n] = i
	}
	for i, ai := range names {
		for {
			changed := false
			var out []Production
			for _, p := range g.rules[ai] {
				if len(p) > 0 && p[0].Kind == NonTerminal {
					if j, ok := pos[p[0].Name]; ok && j < i {
						for _, q := range g.rules[p[0].Name] {
							out = append(out, concat(q, p[1:]))
						}
						changed = true
						continue
					}
				}
				out = append(out, p)
			}
			g.setProductions(ai, out)
			if !changed {
				break
			}
			if err := g.checkRuleLimit("LEFTREC", cfg.ruleLimit); err != nil {
				return err
			}
		}
		if err := removeDirectLeftRecursion(g, ai); err != nil {
			return err
		}
		if err := g.checkRuleLimit("LEFTREC", cfg.ruleLimit); err != nil {
			return err
		}
	}
	return nil
}

// removeDirectLeftRecursion rewrites A -> A alpha | beta as A -> beta A' |
// beta and A' -> alpha A' | alpha for a fresh A'. With no epsilon rules in
// play the rewrite preserves the language exactly.
func removeDirectLeftRecursion(g *Grammar, name string) error {
	var alphas, betas []Production
	for _, p := range g.rules[name] {
		if len(p) > 0 && p[0].Kind == NonTerminal && p[0].Name == name {
			alphas = append(alphas, p[1:].clone())
		} else {
			betas = append(betas, p)
		}
	}
	if len(alphas) == 0 {
		return nil
	}
	if len(betas) == 0 {
		// Pure left recursion derives nothing; cleanup removes the remains.
		g.rules[name] = nil
		return nil
	}
	tail, err := g.fresh("LEFTREC")
	if err != nil {
		return err
	}
	var out []Production
	for _, b := range betas {
		out = append(out, concat(b, Production{NT(tail)}), b)
	}
	g.setProductions(name, out)
	var tails []Production
	for _, a := range alphas {
		tails = append(tails, concat(a, Production{NT(tail)}), a)
	}
	g.setProductions(tail, tails)
	return nil
}

// unfoldHeads repeatedly replaces a leading non-terminal with each of its
// productions until every production starts with a terminal. Left recursion
// having been eliminated, the process terminates; the configured round bound
// guards against a regression.
func unfoldHeads(g *Grammar, cfg *config) error {
	for round := 0; ; round++ {
		if round >= cfg.unfoldLimit {
			return invariantErrorf("UNFOLD", "no convergence after %d rounds", round)
		}
		changed := false
		for _, nt := range g.NonTerminals() {
			var out []Production
			for _, p := range g.rules[nt] {
				if len(p) == 0 || p[0].Kind != NonTerminal {
					out = append(out, p)
					continue
				}
				changed = true
				for _, q := range g.rules[p[0].Name] {
					head := q
					if q.IsEpsilon() {
						head = nil
					}
					v := concat(head, p[1:])
					if len(v) == 0 {
						v = Production{Eps()}
					}
					out = append(out, v)
				}
			}
			g.setProductions(nt, out)
		}
		if err := g.checkRuleLimit("UNFOLD", cfg.ruleLimit); err != nil {
			return err
		}
		if !changed {
			return nil
		}
	}
}

// checkGNF verifies the Greibach normal form postcondition.
func checkGNF(g *Grammar) error {
	for _, nt := range g.NonTerminals() {
		for _, p := range g.Productions(nt) {
			if p.IsEpsilon() {
				if nt != g.Start() {
					return invariantErrorf("GNF", "epsilon production on %s", nt)
				}
				continue
			}
			if len(p) == 0 || p[0].Kind != Terminal {
				return invariantErrorf("GNF", "production %s on %s does not start with a terminal", p, nt)
			}
			for _, s := range p[1:] {
				if s.Kind != NonTerminal {
					return invariantErrorf("GNF", "production %s on %s has a non-head terminal", p, nt)
				}
			}
		}
	}
	return nil
}
