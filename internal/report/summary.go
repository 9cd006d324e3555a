package report

import (
	"fmt"
	"strings"

	"pedietcalc/internal/recipe"
)

// Line is one printed ingredient row.
type Line struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	PerServing recipe.Macros `json:"per_serving"`
	Servings   float64       `json:"servings"`
	InRecipe   recipe.Macros `json:"in_recipe"`
	Ratio      string        `json:"ratio"`
}

// Summary is the static breakdown rendered by the print view, the markdown
// summary and the spreadsheet export.
type Summary struct {
	Title  string        `json:"title"`
	Lines  []Line        `json:"ingredients"`
	Totals recipe.Macros `json:"totals"`
	Ratio  string        `json:"ratio"`
	Token  string        `json:"token,omitempty"`
	Link   string        `json:"link,omitempty"`
}

// Build captures the current state of a calculator. baseURL, when not empty,
// is combined with the share token to produce a full link.
func Build(c *recipe.Calculator, baseURL string) (Summary, error) {
	rows := c.Rows()
	lines := make([]Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, Line{
			ID:         row.ID,
			Name:       row.Name,
			PerServing: row.PerServing,
			Servings:   row.Servings,
			InRecipe:   row.Total,
			Ratio:      row.Ratio(),
		})
	}

	token, err := c.Token()
	if err != nil {
		return Summary{}, fmt.Errorf("encode share token: %w", err)
	}

	s := Summary{
		Title:  c.Title(),
		Lines:  lines,
		Totals: c.Totals(),
		Ratio:  c.Ratio(),
		Token:  token,
	}
	if strings.TrimSpace(baseURL) != "" {
		s.Link = ShareLink(baseURL, token)
	}
	return s, nil
}

// ShareLink appends the recipe fragment to baseURL, dropping any fragment the
// base already carries.
func ShareLink(baseURL, token string) string {
	base, _, _ := strings.Cut(strings.TrimSpace(baseURL), "#")
	return base + recipe.FragmentFor(token)
}

// TokenFromLink accepts either a full share link or a bare token.
func TokenFromLink(value string) string {
	value = strings.TrimSpace(value)
	if _, fragment, ok := strings.Cut(value, "#"); ok {
		if token, found := recipe.TokenFromFragment(fragment); found {
			return token
		}
		return ""
	}
	if token, found := recipe.TokenFromFragment(value); found {
		return token
	}
	return value
}

// Triple formats macros the way the print layout shows them.
func Triple(m recipe.Macros) string {
	return fmt.Sprintf("P %s / F %s / C %s",
		recipe.FormatNumber(m.Protein),
		recipe.FormatNumber(m.Fat),
		recipe.FormatNumber(m.NetCarbs),
	)
}

// Grams formats a single quantity followed by its unit.
func Grams(value float64) string {
	return recipe.FormatNumber(value) + " g"
}
