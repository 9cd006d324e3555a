package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"pedietcalc/internal/recipe"
	"pedietcalc/internal/report"
	"pedietcalc/internal/views/components"
)

// PrintReport renders the static breakdown of a recipe for printing.
func PrintReport(s report.Summary) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Raw(`<section class="print-report"><h1>`)
		hw.Text(s.Title)
		hw.Raw("</h1><table><thead><tr>")
		for _, heading := range []string{"Ingredient", "Per serving (g)", "Servings used", "In recipe (g)", "P:E ratio"} {
			hw.Raw("<th>")
			hw.Text(heading)
			hw.Raw("</th>")
		}
		hw.Raw("</tr></thead><tbody>")
		for _, line := range s.Lines {
			hw.Raw("<tr>")
			for _, cell := range []string{
				line.Name,
				report.Triple(line.PerServing),
				recipe.FormatNumber(line.Servings),
				report.Triple(line.InRecipe),
				line.Ratio,
			} {
				hw.Raw("<td>")
				hw.Text(cell)
				hw.Raw("</td>")
			}
			hw.Raw("</tr>")
		}
		hw.Raw(`</tbody></table><div class="print-report__totals">`)
		hw.Render(ctx, components.Stat("div", "Total protein", Grams(s.Totals.Protein)))
		hw.Render(ctx, components.Stat("div", "Total fat", Grams(s.Totals.Fat)))
		hw.Render(ctx, components.Stat("div", "Total net carbs", Grams(s.Totals.NetCarbs)))
		hw.Render(ctx, components.Stat("div", "P:E ratio", s.Ratio))
		hw.Raw("</div>")
		if s.Link != "" {
			hw.Raw(`<p class="screen-only"><a`)
			hw.URLAttr("href", s.Link)
			hw.Raw(">Back to the calculator</a></p>")
		}
		hw.Raw(`<p class="screen-only"><button class="primary" onclick="window.print()">Print</button></p>`)
		hw.Raw("</section>")
		return hw.Err()
	})
}
