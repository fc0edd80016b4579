package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cfgnorm/cfgnorm"
)

var cli struct {
	Length  int    `arg:"" required:"" help:"Maximum word length to enumerate."`
	Grammar string `arg:"" required:"" type:"existingfile" help:"Grammar file to enumerate."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Description("List every word of a context-free grammar's language up to a length bound."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(run())
}

func run() error {
	g, err := cfgnorm.ReadFile(cli.Grammar)
	if err != nil {
		return err
	}
	words, err := cfgnorm.Generate(g, cli.Length)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		fmt.Fprintf(os.Stderr, "no words of length at most %d\n", cli.Length)
		return nil
	}
	fmt.Print(cfgnorm.FormatWords(words))
	return nil
}
