package recipe

import "strings"

// DefaultServings is the serving count given to freshly minted rows.
const DefaultServings = "1"

// Ingredient is one row of the recipe ledger. Quantities are kept as the text
// the user typed so partial input such as "1." survives editing; they are
// sanitized whenever they are read.
type Ingredient struct {
	ID       int
	Name     string
	Protein  string
	Fat      string
	NetCarbs string
	Servings string
}

// EmptyIngredient returns a blank row carrying the provided identifier.
func EmptyIngredient(id int) Ingredient {
	return Ingredient{ID: id, Servings: DefaultServings}
}

// PerServing returns the sanitized per-serving macros of the row.
func (i Ingredient) PerServing() Macros {
	return Macros{
		Protein:  ParseQuantity(i.Protein),
		Fat:      ParseQuantity(i.Fat),
		NetCarbs: ParseQuantity(i.NetCarbs),
	}
}

// ServingsUsed returns the sanitized serving count of the row.
func (i Ingredient) ServingsUsed() float64 {
	return ParseQuantity(i.Servings)
}

// DisplayName falls back to a placeholder label for unnamed rows.
func (i Ingredient) DisplayName() string {
	if strings.TrimSpace(i.Name) == "" {
		return "Unnamed ingredient"
	}
	return i.Name
}

// Field names an editable column of an ingredient row.
type Field string

const (
	FieldName     Field = "name"
	FieldProtein  Field = "protein"
	FieldFat      Field = "fat"
	FieldNetCarbs Field = "net_carbs"
	FieldServings Field = "servings"
)

// Fields lists the editable columns in display order.
var Fields = []Field{FieldName, FieldProtein, FieldFat, FieldNetCarbs, FieldServings}

// ParseField resolves a transport-level field name.
func ParseField(value string) (Field, bool) {
	field := Field(strings.ToLower(strings.TrimSpace(value)))
	switch field {
	case FieldName, FieldProtein, FieldFat, FieldNetCarbs, FieldServings:
		return field, true
	case "netcarbs", "net-carbs":
		return FieldNetCarbs, true
	default:
		return "", false
	}
}

// Label is the human readable caption used by input forms.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Ingredient name"
	case FieldProtein:
		return "Protein (g per serving)"
	case FieldFat:
		return "Fat (g per serving)"
	case FieldNetCarbs:
		return "Net carbs (g per serving)"
	case FieldServings:
		return "Servings used in recipe"
	default:
		return string(f)
	}
}

// Get returns the raw text stored for the field.
func (f Field) Get(i Ingredient) string {
	switch f {
	case FieldName:
		return i.Name
	case FieldProtein:
		return i.Protein
	case FieldFat:
		return i.Fat
	case FieldNetCarbs:
		return i.NetCarbs
	case FieldServings:
		return i.Servings
	default:
		return ""
	}
}

// Set stores raw text into the field. Unknown fields are ignored.
func (f Field) Set(i *Ingredient, value string) {
	switch f {
	case FieldName:
		i.Name = value
	case FieldProtein:
		i.Protein = value
	case FieldFat:
		i.Fat = value
	case FieldNetCarbs:
		i.NetCarbs = value
	case FieldServings:
		i.Servings = value
	}
}

// Macros is a protein/fat/net-carb tuple in grams.
type Macros struct {
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	NetCarbs float64 `json:"net_carbs"`
}

// Add returns the element-wise sum.
func (m Macros) Add(other Macros) Macros {
	return Macros{
		Protein:  m.Protein + other.Protein,
		Fat:      m.Fat + other.Fat,
		NetCarbs: m.NetCarbs + other.NetCarbs,
	}
}

// Scale multiplies every component by factor.
func (m Macros) Scale(factor float64) Macros {
	return Macros{
		Protein:  m.Protein * factor,
		Fat:      m.Fat * factor,
		NetCarbs: m.NetCarbs * factor,
	}
}

// Energy is fat plus net carbs, the denominator of the P:E ratio.
func (m Macros) Energy() float64 {
	return m.Fat + m.NetCarbs
}
