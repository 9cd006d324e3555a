package pages

import (
	"fmt"

	"pedietcalc/internal/recipe"
)

// IngredientDOMID is the element id of an ingredient card.
func IngredientDOMID(id int) string {
	return fmt.Sprintf("ingredient-%d", id)
}

// RowSummaryDOMID is the element id of a card's derived totals.
func RowSummaryDOMID(id int) string {
	return fmt.Sprintf("ingredient-%d-summary", id)
}

// FieldDOMID is the element id of one input on a card.
func FieldDOMID(id int, field recipe.Field) string {
	return fmt.Sprintf("ingredient-%d-%s", id, field)
}

// IngredientEndpoint is the resource path of one row.
func IngredientEndpoint(id int) string {
	return fmt.Sprintf("/recipe/ingredients/%d", id)
}

// Grams renders a quantity followed by its unit.
func Grams(value float64) string {
	return recipe.FormatNumber(value) + " g"
}

func inputMode(field recipe.Field) string {
	if field == recipe.FieldName {
		return ""
	}
	return "decimal"
}
