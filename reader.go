package cfgnorm

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The rule format is line oriented: each non-blank line is
//
//	LHS : ALT | ALT | ...
//
// where LHS is a non-terminal (an uppercase letter other than E, optional
// whitespace, then a digit) and each alternative is a sequence of terminals
// (single lowercase letters), non-terminals and E for epsilon. The first
// line names the start symbol.

var ruleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "NonTerm", Pattern: `[A-DF-Z][ \t]*[0-9]`},
	{Name: "Terminal", Pattern: `[a-z]`},
	{Name: "Epsilon", Pattern: `E`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Pipe", Pattern: `\|`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

type ruleLine struct {
	LHS  string     `@NonTerm ":"`
	Alts []*altNode `@@ ( "|" @@ )*`
}

type altNode struct {
	Symbols []*symNode `@@+`
}

type symNode struct {
	NonTerm  string `  @NonTerm`
	Terminal string `| @Terminal`
	Epsilon  bool   `| @Epsilon`
}

var ruleParser = participle.MustBuild[ruleLine](
	participle.Lexer(ruleLexer),
	participle.Elide("Whitespace"),
)

// Read parses a grammar from r. The returned grammar has been
// reference-checked and cleaned: every right-hand-side non-terminal is
// defined by some rule, and useless non-terminals are already removed.
//
// Input with no rules denotes the empty language, mirroring Write, which
// emits nothing for a grammar whose start has no productions.
func Read(r io.Reader) (*Grammar, error) {
	var g *Grammar
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		rule, err := ruleParser.ParseString("", text)
		if err != nil {
			return nil, classifyParseError(line, err)
		}
		lhs := canonicalName(rule.LHS)
		if g == nil {
			g = New(lhs)
		}
		for _, alt := range rule.Alts {
			g.AddProduction(lhs, alt.production())
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if g == nil {
		g = New("A0")
	}
	if err := referenceCheck(g); err != nil {
		return nil, err
	}
	g.Cleanup()
	return g, nil
}

// ReadFile parses the grammar in the named file.
func ReadFile(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// production converts a parsed alternative into a Production. E symbols
// inside a longer alternative contribute nothing; an alternative consisting
// only of E collapses to the epsilon production.
func (a *altNode) production() Production {
	var p Production
	for _, s := range a.Symbols {
		switch {
		case s.NonTerm != "":
			p = append(p, NT(canonicalName(s.NonTerm)))
		case s.Terminal != "":
			p = append(p, T(s.Terminal))
		}
	}
	if len(p) == 0 {
		return Production{Eps()}
	}
	return p
}

// canonicalName strips the whitespace the lexer tolerates between a
// non-terminal's letter and digit, so "A 1" and "A1" name the same symbol.
func canonicalName(tok string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, tok)
}

func classifyParseError(line int, err error) error {
	var lerr *lexer.Error
	if errors.As(err, &lerr) {
		return &LexError{Line: line, Message: lerr.Message()}
	}
	var perr participle.Error
	if errors.As(err, &perr) {
		return &StructError{Line: line, Message: perr.Message()}
	}
	return &StructError{Line: line, Message: err.Error()}
}

// referenceCheck reports the first right-hand-side non-terminal that no rule
// defines.
func referenceCheck(g *Grammar) error {
	for _, nt := range g.NonTerminals() {
		for _, p := range g.Productions(nt) {
			for _, s := range p {
				if s.Kind == NonTerminal && !g.defined(s.Name) {
					return &ReferenceError{Name: s.Name, LHS: nt}
				}
			}
		}
	}
	return nil
}
