package report

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"pedietcalc/internal/recipe"
)

// Markdown renders the summary as a markdown document.
func Markdown(s Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(s.Title)
	if s.Link != "" {
		doc.PlainText("Share link: " + s.Link)
	}

	rows := make([][]string, 0, len(s.Lines))
	for _, line := range s.Lines {
		rows = append(rows, []string{
			line.Name,
			Triple(line.PerServing),
			recipe.FormatNumber(line.Servings),
			Triple(line.InRecipe),
			line.Ratio,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Ingredient", "Per serving (g)", "Servings used", "In recipe (g)", "P:E ratio"},
		Rows:   rows,
	})

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Header: []string{"Total protein", "Total fat", "Total net carbs", "P:E ratio"},
		Rows: [][]string{{
			Grams(s.Totals.Protein),
			Grams(s.Totals.Fat),
			Grams(s.Totals.NetCarbs),
			s.Ratio,
		}},
	})

	return doc.String()
}
