package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/cfgnorm/cfgnorm"
)

var cli struct {
	Grammar   string `arg:"" required:"" type:"existingfile" help:"Grammar file to transform (must end in .general)."`
	RuleLimit int    `help:"Abort when any non-terminal accumulates more than this many productions." default:"10000"`
	Trace     bool   `help:"Dump the grammar after each transformation pass."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Description("Rewrite a context-free grammar into Chomsky and Greibach normal forms."),
		kong.UsageOnError(),
	)
	if !strings.HasSuffix(cli.Grammar, ".general") {
		ctx.Fatalf("%s: grammar files must have the .general extension", cli.Grammar)
	}
	ctx.FatalIfErrorf(run(ctx))
}

func run(ctx *kong.Context) error {
	g, err := cfgnorm.ReadFile(cli.Grammar)
	if err != nil {
		return err
	}

	opts := []cfgnorm.Option{cfgnorm.WithRuleLimit(cli.RuleLimit)}
	if cli.Trace {
		opts = append(opts, cfgnorm.WithTrace(func(pass string, g *cfgnorm.Grammar) {
			rules := map[string][]string{}
			for _, nt := range g.NonTerminals() {
				for _, p := range g.Productions(nt) {
					rules[nt] = append(rules[nt], p.String())
				}
			}
			fmt.Fprintf(os.Stderr, "%s: %s\n", pass, repr.String(rules, repr.Indent("  ")))
		}))
	}

	base := strings.TrimSuffix(cli.Grammar, ".general")

	cnf, err := cfgnorm.ToCNF(g, opts...)
	if err != nil {
		return fmt.Errorf("chomsky: %w", err)
	}
	if err := cfgnorm.WriteFile(base+".chomsky", cnf); err != nil {
		return err
	}
	ctx.Printf("wrote %s.chomsky", base)

	gnf, err := cfgnorm.ToGNF(g, opts...)
	if err != nil {
		return fmt.Errorf("greibach: %w", err)
	}
	if err := cfgnorm.WriteFile(base+".greibach", gnf); err != nil {
		return err
	}
	ctx.Printf("wrote %s.greibach", base)
	return nil
}
