package cfgnorm

import (
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slices"
)

// Write renders the grammar in the rule format accepted by Read: the start
// symbol's line first, then the remaining non-terminals sorted by name.
// Non-terminals without productions are omitted, so an empty language writes
// nothing at all.
func Write(w io.Writer, g *Grammar) error {
	names := g.NonTerminals()
	slices.Sort(names)
	ordered := make([]string, 0, len(names))
	ordered = append(ordered, g.Start())
	for _, n := range names {
		if n != g.Start() {
			ordered = append(ordered, n)
		}
	}
	for _, name := range ordered {
		prods := g.Productions(name)
		if len(prods) == 0 {
			continue
		}
		alts := make([]string, len(prods))
		for i, p := range prods {
			alts[i] = p.String()
		}
		if _, err := io.WriteString(w, name+" : "+strings.Join(alts, " | ")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes the grammar to the named file, creating or truncating it.
func WriteFile(path string, g *Grammar) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
