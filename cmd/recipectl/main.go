package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/google/subcommands"

	"pedietcalc/internal/config"
	"pedietcalc/internal/recipe"
	"pedietcalc/internal/report"
)

const fallbackBaseURL = "http://localhost:8080/"

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin  io.Reader = os.Stdin

	loadConfigFunc = config.Load
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&encodeCmd{}, "links")
	c.Register(&showCmd{}, "links")
	c.Register(&exportCmd{}, "links")
}

// defaultBaseURL is the page share links point to when -base is not given.
func defaultBaseURL() string {
	cfg, err := loadConfigFunc()
	if err != nil || strings.TrimSpace(cfg.Share.BaseURL) == "" {
		return fallbackBaseURL
	}
	return cfg.Share.BaseURL
}

// openSummary decodes a share link or bare token into a printable summary.
func openSummary(value, baseURL string) (report.Summary, error) {
	token := report.TokenFromLink(value)
	if token == "" {
		return report.Summary{}, errors.New("no recipe found in link")
	}
	decoded, err := recipe.Decode(token)
	if err != nil {
		return report.Summary{}, err
	}
	return report.Build(recipe.FromRecipe(decoded), baseURL)
}

func failf(status subcommands.ExitStatus, format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(stderr, format+"\n", args...)
	return status
}
