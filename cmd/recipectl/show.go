package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"pedietcalc/internal/report"
)

// showCmd prints the summary of a shared recipe.
type showCmd struct {
	raw bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "print the breakdown of a share link" }
func (*showCmd) Usage() string {
	return `recipectl show [-raw] <link|token>

  Decodes a share link, or a bare token, and prints the recipe breakdown.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print markdown without terminal styling")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return failf(subcommands.ExitUsageError, "show expects exactly one link or token")
	}

	summary, err := openSummary(f.Arg(0), "")
	if err != nil {
		return failf(subcommands.ExitFailure, "Error reading recipe: %v", err)
	}

	if err := printMarkdown(report.Markdown(summary), c.raw); err != nil {
		return failf(subcommands.ExitFailure, "Error rendering summary: %v", err)
	}
	return subcommands.ExitSuccess
}

func printMarkdown(doc string, raw bool) error {
	if raw {
		_, err := fmt.Fprint(stdout, doc)
		return err
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}
	out, err := renderer.Render(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(stdout, out)
	return err
}
