package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"pedietcalc/internal/recipe"
	"pedietcalc/internal/views/components"
	"pedietcalc/internal/views/theme"
)

// Element ids targeted by htmx swaps.
const (
	WorkspaceID   = "workspace"
	IngredientsID = "ingredients"
	TotalsID      = "totals"
	ShareID       = "share-link"
)

// RequestQueue makes every request that edits the recipe wait for the one in
// flight, so the session is never read and written by two edits at once.
const RequestQueue = "#" + WorkspaceID + ":queue all"

// CalculatorPage renders the page body. The workspace itself is fetched once
// the page has loaded so the server can read the address-bar fragment.
func CalculatorPage(th theme.WorkspaceTheme) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Raw(`<section class="app__header screen-only"><h1>P:E Diet Recipe Calculator</h1>`)
		hw.Raw("<p>The P:E Diet favours protein over energy, where energy is fat plus net carbs. ")
		hw.Raw("Enter the per-serving macros from each food label and the number of servings ")
		hw.Raw("you use; the calculator totals protein, fat and net carbs and reports the ")
		hw.Raw("protein to energy ratio of the whole recipe.</p>")
		hw.Render(ctx, themePicker(th))
		hw.Raw("</section>")
		hw.Raw("<div")
		hw.Attr("id", WorkspaceID)
		hw.Attr("hx-post", "/recipe/restore")
		hw.Attr("hx-trigger", "load")
		hw.Attr("hx-swap", "outerHTML")
		hw.Raw(`><p class="muted">Loading recipe…</p></div>`)
		return hw.Err()
	})
}

func themePicker(th theme.WorkspaceTheme) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Raw(`<form class="theme-picker" hx-post="/preferences/theme" hx-trigger="change" hx-swap="none">`)
		hw.Raw(`<label><span>Theme</span><select name="theme">`)
		for _, opt := range theme.Options() {
			hw.Raw("<option")
			hw.Attr("value", opt.Value)
			hw.BoolAttr("selected", opt.Value == th.Key)
			hw.Raw(">")
			hw.Text(opt.Label)
			hw.Raw("</option>")
		}
		hw.Raw("</select></label></form>")
		return hw.Err()
	})
}

// Workspace renders the editable recipe: name, actions, one card per row,
// totals and the share link.
func Workspace(s WorkspaceSnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Raw("<div")
		hw.Attr("id", WorkspaceID)
		hw.Attr("class", "workspace")
		hw.Raw(">")

		hw.Raw(`<label class="recipe-name-field screen-only"><span>Recipe name (optional)</span><input`)
		hw.Attr("class", "recipe-name-input")
		hw.Attr("type", "text")
		hw.Attr("name", "name")
		hw.Attr("placeholder", "e.g. High-protein chili")
		hw.Attr("value", s.Name)
		hw.Attr("hx-post", "/recipe/name")
		hw.Attr("hx-trigger", "input changed delay:300ms")
		hw.Attr("hx-sync", RequestQueue)
		hw.Attr("hx-swap", "none")
		hw.Raw("></label>")

		hw.Raw(`<section class="app__actions screen-only"><div class="button-row">`)
		hw.Raw("<button")
		hw.Attr("class", "primary")
		hw.Attr("hx-post", "/recipe/ingredients")
		hw.Attr("hx-sync", RequestQueue)
		hw.Attr("hx-target", "#"+WorkspaceID)
		hw.Attr("hx-swap", "outerHTML")
		hw.Raw(">+ Add food</button>")
		hw.Raw(`<a class="secondary" href="/recipe/print" target="_blank">Print recipe</a>`)
		hw.Raw(`<a class="secondary" href="/recipe/summary.md" target="_blank">Markdown</a>`)
		hw.Raw(`<a class="secondary" href="/recipe/export.xlsx">Spreadsheet</a>`)
		hw.Raw("</div></section>")

		hw.Raw("<section")
		hw.Attr("id", IngredientsID)
		hw.Attr("class", "app__ingredients screen-only")
		hw.Raw(">")
		for _, card := range s.Cards {
			hw.Render(ctx, IngredientCard(card, s.CanRemove))
		}
		hw.Raw("</section>")

		hw.Render(ctx, TotalsPanel(s.Totals, s.Ratio, false))
		hw.Render(ctx, SharePanel(s.ShareLink, false))
		hw.Raw("</div>")
		return hw.Err()
	})
}

// IngredientCard renders the inputs and derived totals of one row.
func IngredientCard(card CardSnapshot, canRemove bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		item := card.Ingredient
		endpoint := IngredientEndpoint(item.ID)
		hw := components.NewWriter(w)
		hw.Raw("<article")
		hw.Attr("id", IngredientDOMID(item.ID))
		hw.Attr("class", "ingredient-card")
		hw.Attr("data-ingredient-id", strconv.Itoa(item.ID))
		hw.Raw(`><div class="card__header"><input`)
		hw.Attr("id", FieldDOMID(item.ID, recipe.FieldName))
		hw.Attr("class", "text-input")
		hw.Attr("type", "text")
		hw.Attr("name", "value")
		hw.Attr("placeholder", "Ingredient name")
		hw.Attr("value", item.Name)
		hw.Attr("hx-post", endpoint)
		hw.Attr("hx-trigger", "input changed delay:250ms")
		hw.Attr("hx-vals", `{"field":"`+string(recipe.FieldName)+`"}`)
		hw.Attr("hx-sync", RequestQueue)
		hw.Attr("hx-swap", "none")
		hw.Raw("><button")
		hw.Attr("class", "ghost")
		hw.Attr("hx-delete", endpoint)
		hw.Attr("hx-sync", RequestQueue)
		hw.Attr("hx-target", "#"+WorkspaceID)
		hw.Attr("hx-swap", "outerHTML")
		hw.BoolAttr("disabled", !canRemove)
		hw.Raw(">Remove</button></div>")

		hw.Raw(`<div class="card__grid">`)
		for _, field := range recipe.Fields {
			if field == recipe.FieldName {
				continue
			}
			hw.Render(ctx, components.Field(components.NumberField{
				ID:        FieldDOMID(item.ID, field),
				Label:     field.Label(),
				Value:     field.Get(item),
				Endpoint:  endpoint,
				FieldName: string(field),
				Mode:      inputMode(field),
				Sync:      RequestQueue,
			}))
		}
		hw.Raw("</div>")
		hw.Render(ctx, RowSummary(card.Row, false))
		hw.Raw("</article>")
		return hw.Err()
	})
}

// RowSummary renders the in-recipe macros of a row. With oob set it is meant
// to be swapped out of band into an existing card.
func RowSummary(row recipe.RowSnapshot, oob bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Raw("<div")
		hw.Attr("id", RowSummaryDOMID(row.ID))
		hw.Attr("class", "card__summary")
		if oob {
			hw.Attr("hx-swap-oob", "true")
		}
		hw.Raw("><p>Protein: ")
		hw.Text(Grams(row.Total.Protein))
		hw.Raw("</p><p>Fat: ")
		hw.Text(Grams(row.Total.Fat))
		hw.Raw("</p><p>Net carbs: ")
		hw.Text(Grams(row.Total.NetCarbs))
		hw.Raw("</p><p>P:E ratio: ")
		hw.Text(row.Ratio())
		hw.Raw("</p></div>")
		return hw.Err()
	})
}

// TotalsPanel renders the recipe-wide macros and ratio.
func TotalsPanel(totals recipe.Macros, ratio string, oob bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Raw("<section")
		hw.Attr("id", TotalsID)
		hw.Attr("class", "app__summary screen-only")
		if oob {
			hw.Attr("hx-swap-oob", "true")
		}
		hw.Raw("><h2>Totals</h2><ul>")
		hw.Render(ctx, components.Stat("li", "Total protein", Grams(totals.Protein)))
		hw.Render(ctx, components.Stat("li", "Total fat", Grams(totals.Fat)))
		hw.Render(ctx, components.Stat("li", "Total net carbs", Grams(totals.NetCarbs)))
		hw.Render(ctx, components.Stat("li", "P:E ratio", ratio))
		hw.Raw("</ul></section>")
		return hw.Err()
	})
}

// SharePanel renders the link that reopens the current recipe.
func SharePanel(link string, oob bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Raw("<p")
		hw.Attr("id", ShareID)
		hw.Attr("class", "share screen-only")
		if oob {
			hw.Attr("hx-swap-oob", "true")
		}
		hw.Raw(">")
		if link != "" {
			hw.Raw("<span>Share this recipe: </span><a")
			hw.URLAttr("href", link)
			hw.Raw(">")
			hw.Text(link)
			hw.Raw("</a>")
		}
		hw.Raw("</p>")
		return hw.Err()
	})
}

// FieldUpdate is the response to a single field edit: the edited row's
// summary, the totals and the share link, all swapped out of band so the
// input being typed into is left alone.
func FieldUpdate(row recipe.RowSnapshot, totals recipe.Macros, ratio, link string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Render(ctx, RowSummary(row, true))
		hw.Render(ctx, TotalsPanel(totals, ratio, true))
		hw.Render(ctx, SharePanel(link, true))
		return hw.Err()
	})
}
