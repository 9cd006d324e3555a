package recipe

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	items := []Ingredient{
		{ID: 0, Name: "Chicken breast", Protein: "31", Fat: "3.6", NetCarbs: "0", Servings: "2"},
		{ID: 3, Name: "", Protein: "1.", Fat: "-2", NetCarbs: "abc", Servings: "0.333"},
	}

	token, err := Encode(items, "  Lean bowl  ")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if strings.ContainsAny(token, "+/=") {
		t.Fatalf("expected url-safe unpadded token, got %q", token)
	}

	decoded, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if decoded.Name != "Lean bowl" {
		t.Fatalf("expected trimmed name, got %q", decoded.Name)
	}
	if len(decoded.Ingredients) != len(items) {
		t.Fatalf("expected %d ingredients, got %d", len(items), len(decoded.Ingredients))
	}

	for i, original := range items {
		got := decoded.Ingredients[i]
		if got.ID != original.ID || got.Name != original.Name {
			t.Fatalf("row %d identity mismatch: %+v vs %+v", i, got, original)
		}
		for _, field := range []Field{FieldProtein, FieldFat, FieldNetCarbs, FieldServings} {
			want := FormatNumber(ParseQuantity(field.Get(original)))
			have := FormatNumber(ParseQuantity(field.Get(got)))
			if want != have {
				t.Fatalf("row %d %s = %s, want %s", i, field, have, want)
			}
		}
	}

	if decoded.Ingredients[1].Fat != "" {
		t.Fatalf("expected sanitized zero to decode as empty text, got %q", decoded.Ingredients[1].Fat)
	}
	if decoded.Ingredients[0].Protein != "31.00" {
		t.Fatalf("expected two decimal text, got %q", decoded.Ingredients[0].Protein)
	}
}

func TestEncodeOmitsBlankName(t *testing.T) {
	t.Parallel()

	token, err := Encode([]Ingredient{EmptyIngredient(0)}, "  ")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("decode token: %v", err)
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if _, ok := payload["name"]; ok {
		t.Fatalf("expected name to be omitted: %s", raw)
	}

	decoded, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if decoded.Name != "" {
		t.Fatalf("expected empty name, got %q", decoded.Name)
	}
}

func TestEncodeUsesStableFieldNames(t *testing.T) {
	t.Parallel()

	token, err := Encode([]Ingredient{{ID: 1, Name: "x", Protein: "1", Fat: "2", NetCarbs: "3", Servings: "4"}}, "r")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	raw, _ := base64.RawURLEncoding.DecodeString(token)
	want := `{"name":"r","ingredients":[{"id":1,"name":"x","protein":1,"fat":2,"net_carbs":3,"servings":4}]}`
	if string(raw) != want {
		t.Fatalf("payload = %s, want %s", raw, want)
	}
}

func TestDecodeAcceptsNullName(t *testing.T) {
	t.Parallel()

	token := base64.RawURLEncoding.EncodeToString([]byte(`{"name":null,"ingredients":[{"id":2,"name":"oats","protein":13.2,"fat":6.5,"net_carbs":58.7,"servings":0.5}]}`))
	decoded, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if decoded.Name != "" {
		t.Fatalf("expected empty name, got %q", decoded.Name)
	}
	got := decoded.Ingredients[0]
	if got.ID != 2 || got.Protein != "13.20" || got.NetCarbs != "58.70" || got.Servings != "0.50" {
		t.Fatalf("unexpected ingredient: %+v", got)
	}
}

func TestDecodeEmptyIngredientsInsertsDefaultRow(t *testing.T) {
	t.Parallel()

	token := base64.RawURLEncoding.EncodeToString([]byte(`{"name":"Empty","ingredients":[]}`))
	decoded, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(decoded.Ingredients) != 1 || decoded.Ingredients[0] != EmptyIngredient(0) {
		t.Fatalf("expected a single empty row, got %+v", decoded.Ingredients)
	}
}

func TestDecodeFailures(t *testing.T) {
	t.Parallel()

	enc := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"invalid base64", "not-valid-base64!!", ErrMalformedToken},
		{"padded base64", base64.URLEncoding.EncodeToString([]byte(`{"ingredients": []}`)), ErrMalformedToken},
		{"not json", enc("hello"), ErrMalformedPayload},
		{"missing ingredients", enc(`{"name":"x"}`), ErrMalformedPayload},
		{"null ingredients", enc(`{"ingredients":null}`), ErrMalformedPayload},
		{"wrong type", enc(`{"ingredients":{}}`), ErrMalformedPayload},
		{"missing field", enc(`{"ingredients":[{"id":0,"name":"","protein":1,"fat":1,"servings":1}]}`), ErrMalformedPayload},
		{"negative id", enc(`{"ingredients":[{"id":-1,"name":"","protein":1,"fat":1,"net_carbs":1,"servings":1}]}`), ErrMalformedPayload},
		{"string number", enc(`{"ingredients":[{"id":0,"name":"","protein":"1","fat":1,"net_carbs":1,"servings":1}]}`), ErrMalformedPayload},
		{"id without successor", enc(`{"ingredients":[{"id":9223372036854775807,"name":"","protein":1,"fat":1,"net_carbs":1,"servings":1}]}`), ErrMalformedPayload},
		{"uppercase keys", enc(`{"INGREDIENTS":[{"id":0,"name":"","protein":1,"fat":1,"net_carbs":1,"servings":1}]}`), ErrMalformedPayload},
		{"uppercase field", enc(`{"ingredients":[{"id":0,"name":"","protein":1,"fat":1,"NET_CARBS":1,"servings":1}]}`), ErrMalformedPayload},
		{"null entry", enc(`{"ingredients":[null]}`), ErrMalformedPayload},
		{"trailing bits", withTrailingBits(enc(`{"ingredients":[] }`)), ErrMalformedToken},
		{"line break", enc(`{"ingredients":[]}`)[:8] + "\n" + enc(`{"ingredients":[]}`)[8:], ErrMalformedToken},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(tt.token)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Decode(%q) error = %v, want %v", tt.token, err, tt.want)
			}
		})
	}
}

// withTrailingBits sets an unused low bit in the final character of an
// unpadded token.
func withTrailingBits(token string) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	last := strings.IndexByte(alphabet, token[len(token)-1])
	return token[:len(token)-1] + string(alphabet[last|1])
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	t.Parallel()

	token := base64.RawURLEncoding.EncodeToString([]byte(`{"version":2,"Name":"ignored","ingredients":[{"id":3,"name":"Egg","protein":13,"fat":10,"net_carbs":1,"servings":2,"note":"x"}]}`))
	got, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Name != "" {
		t.Fatalf("expected differently cased name key to be ignored, got %q", got.Name)
	}
	if len(got.Ingredients) != 1 || got.Ingredients[0].ID != 3 || got.Ingredients[0].NetCarbs != "1" {
		t.Fatalf("unexpected ingredients %+v", got.Ingredients)
	}
}

func TestSubThresholdValueDecodesToEmptyField(t *testing.T) {
	t.Parallel()

	items := []Ingredient{{ID: 0, Protein: "0.001", Servings: "3"}}
	if got := RowTotals(items[0]).Protein; !approx(got, 0.003) {
		t.Fatalf("expected live total to keep 0.003, got %v", got)
	}

	token, err := Encode(items, "")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if decoded.Ingredients[0].Protein != "" {
		t.Fatalf("expected decoded text to snap to empty, got %q", decoded.Ingredients[0].Protein)
	}
	if decoded.Ingredients[0].Servings != "3.00" {
		t.Fatalf("expected servings 3.00, got %q", decoded.Ingredients[0].Servings)
	}
}
