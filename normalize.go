package cfgnorm

// Passes shared by the Chomsky and Greibach pipelines. Each pass mutates the
// grammar it is given; the pipelines operate on a clone so callers never see
// partial results.

// ensureFreshStart introduces a new start symbol S' with the single
// production S' -> S, guaranteeing the start never appears on a right-hand
// side of later rewrites.
func ensureFreshStart(g *Grammar, pass string) error {
	old := g.start
	fresh, err := g.fresh(pass)
	if err != nil {
		return err
	}
	g.rules[fresh] = []Production{{NT(old)}}
	g.start = fresh
	return nil
}

// liftTerminals replaces terminal symbols inside long productions with
// carrier non-terminals T_a having the single rule T_a -> a. When skipHead is
// true the first symbol of each production is left alone, as Greibach form
// requires a terminal head.
//
// An existing non-terminal whose sole production is exactly the single
// terminal is reused as the carrier rather than minting a fresh one.
func liftTerminals(g *Grammar, pass string, skipHead bool) error {
	carrier := map[string]string{}
	for _, nt := range g.NonTerminals() {
		prods := g.rules[nt]
		if len(prods) == 1 && len(prods[0]) == 1 && prods[0][0].Kind == Terminal {
			t := prods[0][0].Name
			if _, ok := carrier[t]; !ok {
				carrier[t] = nt
			}
		}
	}
	for _, nt := range g.NonTerminals() {
		prods := g.rules[nt]
		out := make([]Production, 0, len(prods))
		for _, p := range prods {
			if len(p) < 2 {
				out = append(out, p)
				continue
			}
			q := p.clone()
			for i, s := range q {
				if s.Kind != Terminal {
					continue
				}
				if skipHead && i == 0 {
					continue
				}
				name, ok := carrier[s.Name]
				if !ok {
					var err error
					name, err = g.fresh(pass)
					if err != nil {
						return err
					}
					g.rules[name] = []Production{{T(s.Name)}}
					carrier[s.Name] = name
				}
				q[i] = NT(name)
			}
			out = append(out, q)
		}
		g.setProductions(nt, out)
	}
	return nil
}

// binarize splits productions longer than two symbols into chains of
// two-symbol productions. One fresh non-terminal is shared per distinct
// right-tail across the whole grammar.
func binarize(g *Grammar, pass string) error {
	cache := map[string]string{}
	for _, nt := range g.NonTerminals() {
		prods := g.rules[nt]
		out := make([]Production, 0, len(prods))
		for _, p := range prods {
			q, err := binarizeProduction(g, pass, cache, p)
			if err != nil {
				return err
			}
			out = append(out, q)
		}
		g.setProductions(nt, out)
	}
	return nil
}

func binarizeProduction(g *Grammar, pass string, cache map[string]string, p Production) (Production, error) {
	if len(p) <= 2 {
		return p, nil
	}
	tail := p[1:].clone()
	key := Production(tail).String()
	name, ok := cache[key]
	if !ok {
		var err error
		name, err = g.fresh(pass)
		if err != nil {
			return nil, err
		}
		// Register before recursing so shared sub-tails resolve to it.
		cache[key] = name
		q, err := binarizeProduction(g, pass, cache, tail)
		if err != nil {
			return nil, err
		}
		g.rules[name] = []Production{q}
	}
	return Production{p[0], NT(name)}, nil
}

// eliminateEpsilon removes epsilon productions from every non-terminal other
// than the start. Each production is expanded into the set of variants with
// every combination of nullable non-terminals omitted; variants that become
// empty are dropped. The start keeps (or gains) a single trailing epsilon
// production when it is nullable.
func eliminateEpsilon(g *Grammar) {
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
			break
		}
	}
	for _, nt := range g.NonTerminals() {
		var out []Production
		for _, p := range g.rules[nt] {
			if p.IsEpsilon() {
				continue
			}
			for _, v := range expandNullable(p, nullable) {
				if len(v) > 0 {
					out = append(out, v)
				}
			}
		}
		if nt == g.start && nullable[nt] {
			out = append(out, Production{Eps()})
		}
		g.setProductions(nt, out)
	}
}

func productionNullable(p Production, nullable map[string]bool) bool {
	for _, s := range p {
		switch s.Kind {
		case Epsilon:
		case NonTerminal:
			if !nullable[s.Name] {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// expandNullable returns every variant of p with each nullable non-terminal
// either kept or omitted.
func expandNullable(p Production, nullable map[string]bool) []Production {
	variants := []Production{{}}
	for _, s := range p {
		if s.Kind == NonTerminal && nullable[s.Name] {
			next := make([]Production, 0, len(variants)*2)
			for _, v := range variants {
				next = append(next, v.clone(), append(v.clone(), s))
			}
			variants = next
		} else {
			for i := range variants {
				variants[i] = append(variants[i], s)
			}
		}
	}
	return variants
}

// eliminateUnits removes unit productions (A -> B) by replacing each with the
// non-unit productions of every non-terminal reachable through unit chains.
func eliminateUnits(g *Grammar) {
	for _, nt := range g.NonTerminals() {
		visited := map[string]bool{nt: true}
		queue := []string{nt}
		var out []Production
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, p := range g.rules[cur] {
				if p.IsUnit() {
					if target := p[0].Name; !visited[target] {
						visited[target] = true
						queue = append(queue, target)
					}
					continue
				}
				out = append(out, p)
			}
		}
		g.setProductions(nt, out)
	}
}
