package cfgnorm

// Cleanup removes useless structure from the grammar in place: non-terminals
// with no productions, non-productive non-terminals (those deriving no
// terminal string) and non-terminals unreachable from the start symbol.
// Productions mentioning a removed non-terminal are removed with it.
//
// The three sub-passes run to a joint fixpoint. The start symbol always
// survives; if the language is empty it remains registered with an empty
// rule list so the grammar keeps a well-defined start.
//
// Cleanup is idempotent.
func (g *Grammar) Cleanup() {
	for {
		before := g.size()
		g.removeEmpty()
		g.removeNonProductive()
		g.removeUnreachable()
		if g.size() == before {
			break
		}
	}
	// Keep the start as a sentinel even when everything else is gone.
	g.Add(g.start)
	if g.rules[g.start] == nil {
		g.rules[g.start] = []Production{}
	}
}

// removeEmpty drops non-terminals with no productions and every production
// referencing them, repeating until stable.
func (g *Grammar) removeEmpty() {
	for {
		var empty []string
		for _, nt := range g.order {
			if len(g.rules[nt]) == 0 {
				empty = append(empty, nt)
			}
		}
		if len(empty) == 0 {
			return
		}
		dead := map[string]bool{}
		for _, nt := range empty {
			dead[nt] = true
			g.remove(nt)
		}
		g.dropReferencing(dead)
	}
}

// removeNonProductive drops non-terminals that cannot derive any terminal
// string, computed as the fixpoint of "has a production over terminals,
// epsilon and already-productive non-terminals".
func (g *Grammar) removeNonProductive() {
	productive := map[string]bool{}
	for {
		changed := false
		for _, nt := range g.order {
			if productive[nt] {
				continue
			}
			for _, p := range g.rules[nt] {
				ok := true
				for _, s := range p {
					if s.Kind == NonTerminal && !productive[s.Name] {
						ok = false
						break
					}
				}
				if ok {
					productive[nt] = true
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}
	dead := map[string]bool{}
	for _, nt := range g.NonTerminals() {
		if !productive[nt] {
			dead[nt] = true
			g.remove(nt)
		}
	}
	if len(dead) > 0 {
		g.dropReferencing(dead)
	}
}

// removeUnreachable drops non-terminals not reachable from the start symbol
// through the productions of reachable non-terminals.
func (g *Grammar) removeUnreachable() {
	reachable := map[string]bool{}
	if g.index[g.start] {
		reachable[g.start] = true
	}
	queue := []string{g.start}
	for len(queue) > 0 {
		nt := queue[0]
		queue = queue[1:]
		for _, p := range g.rules[nt] {
			for _, s := range p {
				if s.Kind == NonTerminal && !reachable[s.Name] {
					reachable[s.Name] = true
					queue = append(queue, s.Name)
				}
			}
		}
	}
	for _, nt := range g.NonTerminals() {
		if !reachable[nt] {
			g.remove(nt)
		}
	}
}

// dropReferencing removes every production containing a non-terminal in dead.
func (g *Grammar) dropReferencing(dead map[string]bool) {
	for _, nt := range g.order {
		kept := g.rules[nt][:0]
		for _, p := range g.rules[nt] {
			ok := true
			for _, s := range p {
				if s.Kind == NonTerminal && dead[s.Name] {
					ok = false
					break
				}
			}
			if ok {
				kept = append(kept, p)
			}
		}
		g.rules[nt] = kept
	}
}
