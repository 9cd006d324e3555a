package pages

import (
	"pedietcalc/internal/recipe"
	"pedietcalc/models"
)

// CardSnapshot pairs the editable text of a row with its derived numbers.
type CardSnapshot struct {
	Ingredient recipe.Ingredient
	Row        recipe.RowSnapshot
}

// WorkspaceSnapshot aggregates everything the calculator workspace renders.
type WorkspaceSnapshot struct {
	Name      string
	Cards     []CardSnapshot
	CanRemove bool
	Totals    recipe.Macros
	Ratio     string
	ShareLink string
	Theme     string
}

// NewWorkspaceSnapshot reads the calculator in ledger order.
func NewWorkspaceSnapshot(c *recipe.Calculator, shareLink, theme string) WorkspaceSnapshot {
	items := c.Ingredients()
	cards := make([]CardSnapshot, 0, len(items))
	for _, item := range items {
		row, ok := c.Row(item.ID)
		if !ok {
			row = recipe.Snapshot(item)
		}
		cards = append(cards, CardSnapshot{Ingredient: item, Row: row})
	}
	return WorkspaceSnapshot{
		Name:      c.Name(),
		Cards:     cards,
		CanRemove: c.CanRemove(),
		Totals:    c.Totals(),
		Ratio:     c.Ratio(),
		ShareLink: shareLink,
		Theme:     models.NormalizeTheme(theme),
	}
}

// EmptyWorkspaceSnapshot returns the workspace of a fresh calculator.
func EmptyWorkspaceSnapshot() WorkspaceSnapshot {
	return NewWorkspaceSnapshot(recipe.FromRecipe(recipe.Recipe{}), "", models.DefaultTheme)
}
