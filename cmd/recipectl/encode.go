package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"

	"pedietcalc/internal/recipe"
	"pedietcalc/internal/report"
)

// encodeCmd turns a CSV ingredient list into a share link.
type encodeCmd struct {
	name string
	base string
}

func (*encodeCmd) Name() string     { return "encode" }
func (*encodeCmd) Synopsis() string { return "build a share link from a CSV ingredient list" }
func (*encodeCmd) Usage() string {
	return `recipectl encode [-name <name>] [-base <url>] [file]

  Reads rows of name,protein,fat,net_carbs,servings from file, or from
  standard input when no file is given, and prints the share link. A header
  row starting with "name" is skipped. Missing servings default to 1.
`
}

func (c *encodeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "recipe name")
	f.StringVar(&c.base, "base", "", "page the link points to (defaults to PUBLIC_BASE_URL)")
}

func (c *encodeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		return failf(subcommands.ExitUsageError, "encode takes at most one file")
	}

	in := stdin
	if f.NArg() == 1 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			return failf(subcommands.ExitFailure, "Error opening %s: %v", f.Arg(0), err)
		}
		defer file.Close()
		in = file
	}

	items, err := readIngredients(in)
	if err != nil {
		return failf(subcommands.ExitFailure, "Error reading ingredients: %v", err)
	}

	token, err := recipe.Encode(items, c.name)
	if err != nil {
		return failf(subcommands.ExitFailure, "Error encoding recipe: %v", err)
	}

	base := c.base
	if strings.TrimSpace(base) == "" {
		base = defaultBaseURL()
	}
	fmt.Fprintln(stdout, report.ShareLink(base, token))
	return subcommands.ExitSuccess
}

// readIngredients parses CSV rows into ledger rows numbered from 0.
func readIngredients(r io.Reader) ([]recipe.Ingredient, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var items []recipe.Ingredient
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 1 && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "name") {
			continue
		}
		if len(record) > 5 {
			return nil, fmt.Errorf("line %d: expected at most 5 columns, got %d", line, len(record))
		}

		item := recipe.EmptyIngredient(len(items))
		for idx, field := range recipe.Fields {
			if idx >= len(record) {
				break
			}
			field.Set(&item, strings.TrimSpace(record[idx]))
		}
		if strings.TrimSpace(item.Servings) == "" {
			item.Servings = recipe.DefaultServings
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, errors.New("no ingredient rows")
	}
	return items, nil
}
