package recipe

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedToken reports a token that is not unpadded base64url.
	ErrMalformedToken = errors.New("recipe: malformed token")
	// ErrMalformedPayload reports decoded bytes that are not a recipe payload.
	ErrMalformedPayload = errors.New("recipe: malformed payload")
)

var tokenEncoding = base64.RawURLEncoding.Strict()

// Recipe is a named list of ingredients, the unit that travels in share links.
type Recipe struct {
	Name        string
	Ingredients []Ingredient
}

// The payload layout is shared with links created by earlier releases and
// must stay stable.
type recipePayload struct {
	Name        *string             `json:"name,omitempty"`
	Ingredients []ingredientPayload `json:"ingredients"`
}

type ingredientPayload struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	NetCarbs float64 `json:"net_carbs"`
	Servings float64 `json:"servings"`
}

// Decoding goes through pointers so absent or null fields can be told apart
// from zero values.
type incomingRecipe struct {
	Name        *string               `json:"name"`
	Ingredients *[]incomingIngredient `json:"ingredients"`
}

type incomingIngredient struct {
	ID       *uint64  `json:"id"`
	Name     *string  `json:"name"`
	Protein  *float64 `json:"protein"`
	Fat      *float64 `json:"fat"`
	NetCarbs *float64 `json:"net_carbs"`
	Servings *float64 `json:"servings"`
}

// Keys are matched exactly; encoding/json alone would also accept "NAME" or
// "Net_Carbs". Keys that do not match are ignored like any unknown key.
func (r *incomingRecipe) UnmarshalJSON(data []byte) error {
	return decodeExact(data, map[string]any{
		"name":        &r.Name,
		"ingredients": &r.Ingredients,
	})
}

func (p *incomingIngredient) UnmarshalJSON(data []byte) error {
	return decodeExact(data, map[string]any{
		"id":        &p.ID,
		"name":      &p.Name,
		"protein":   &p.Protein,
		"fat":       &p.Fat,
		"net_carbs": &p.NetCarbs,
		"servings":  &p.Servings,
	})
}

func decodeExact(data []byte, targets map[string]any) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errors.New("expected an object")
	}
	for key, raw := range fields {
		target, ok := targets[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// Encode serializes the rows and recipe name into a URL-safe token. Numeric
// fields are sanitized before encoding so a shared link carries numbers rather
// than whatever text was being typed. A blank name is omitted.
func Encode(items []Ingredient, name string) (string, error) {
	payload := recipePayload{
		Ingredients: make([]ingredientPayload, 0, len(items)),
	}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		payload.Name = &trimmed
	}
	for _, item := range items {
		id := item.ID
		if id < 0 {
			id = 0
		}
		payload.Ingredients = append(payload.Ingredients, ingredientPayload{
			ID:       uint64(id),
			Name:     item.Name,
			Protein:  ParseQuantity(item.Protein),
			Fat:      ParseQuantity(item.Fat),
			NetCarbs: ParseQuantity(item.NetCarbs),
			Servings: ParseQuantity(item.Servings),
		})
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode recipe: %w", err)
	}
	return tokenEncoding.EncodeToString(raw), nil
}

// Decode restores a recipe from a token produced by Encode. Decoded numbers
// become editable text; values that would display as zero become empty
// fields. A recipe without ingredients gains a single empty row with id 0.
func Decode(token string) (Recipe, error) {
	if strings.ContainsAny(token, "\r\n") {
		return Recipe{}, fmt.Errorf("%w: line break in token", ErrMalformedToken)
	}
	raw, err := tokenEncoding.DecodeString(token)
	if err != nil {
		return Recipe{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	var incoming incomingRecipe
	if err := json.Unmarshal(raw, &incoming); err != nil {
		return Recipe{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if incoming.Ingredients == nil {
		return Recipe{}, fmt.Errorf("%w: missing ingredients", ErrMalformedPayload)
	}

	result := Recipe{Ingredients: make([]Ingredient, 0, len(*incoming.Ingredients))}
	if incoming.Name != nil {
		result.Name = *incoming.Name
	}
	for idx, entry := range *incoming.Ingredients {
		item, err := entry.ingredient()
		if err != nil {
			return Recipe{}, fmt.Errorf("%w: ingredient %d: %v", ErrMalformedPayload, idx, err)
		}
		result.Ingredients = append(result.Ingredients, item)
	}
	if len(result.Ingredients) == 0 {
		result.Ingredients = append(result.Ingredients, EmptyIngredient(0))
	}
	return result, nil
}

func (p incomingIngredient) ingredient() (Ingredient, error) {
	switch {
	case p.ID == nil:
		return Ingredient{}, errors.New("missing id")
	case p.Name == nil:
		return Ingredient{}, errors.New("missing name")
	case p.Protein == nil:
		return Ingredient{}, errors.New("missing protein")
	case p.Fat == nil:
		return Ingredient{}, errors.New("missing fat")
	case p.NetCarbs == nil:
		return Ingredient{}, errors.New("missing net_carbs")
	case p.Servings == nil:
		return Ingredient{}, errors.New("missing servings")
	}
	const maxID = uint64(^uint(0) >> 1)
	if *p.ID >= maxID {
		return Ingredient{}, fmt.Errorf("id %d out of range", *p.ID)
	}
	return Ingredient{
		ID:       int(*p.ID),
		Name:     *p.Name,
		Protein:  FormatInputValue(*p.Protein),
		Fat:      FormatInputValue(*p.Fat),
		NetCarbs: FormatInputValue(*p.NetCarbs),
		Servings: FormatInputValue(*p.Servings),
	}, nil
}
