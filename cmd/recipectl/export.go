package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"pedietcalc/internal/report"
)

// exportCmd writes the spreadsheet for a shared recipe.
type exportCmd struct {
	output string
	base   string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the recipe workbook of a share link" }
func (*exportCmd) Usage() string {
	return `recipectl export -o <file.xlsx> [-base <url>] <link|token>

  Decodes a share link, or a bare token, and saves the recipe workbook.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "recipe.xlsx", "output workbook path")
	f.StringVar(&c.base, "base", "", "page the link in the workbook points to (defaults to PUBLIC_BASE_URL)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return failf(subcommands.ExitUsageError, "export expects exactly one link or token")
	}
	if strings.TrimSpace(c.output) == "" {
		return failf(subcommands.ExitUsageError, "export needs an output path")
	}

	base := c.base
	if strings.TrimSpace(base) == "" {
		base = defaultBaseURL()
	}
	summary, err := openSummary(f.Arg(0), base)
	if err != nil {
		return failf(subcommands.ExitFailure, "Error reading recipe: %v", err)
	}

	if err := report.SaveWorkbook(c.output, summary); err != nil {
		return failf(subcommands.ExitFailure, "Error writing workbook: %v", err)
	}
	fmt.Fprintf(stdout, "wrote %s\n", c.output)
	return subcommands.ExitSuccess
}
