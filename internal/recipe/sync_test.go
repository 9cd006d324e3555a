package recipe

import (
	"errors"
	"testing"
)

type fakeLocation struct {
	fragment string
	writes   []string
	replaces []bool
}

func (f *fakeLocation) Fragment() string { return f.fragment }

func (f *fakeLocation) SetFragment(fragment string, replace bool) {
	f.fragment = fragment
	f.writes = append(f.writes, fragment)
	f.replaces = append(f.replaces, replace)
}

func TestTokenFromFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fragment string
		token    string
		ok       bool
	}{
		{"#recipe=abc", "abc", true},
		{"recipe=abc", "abc", true},
		{"#recipe=", "", true},
		{"#other=abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		token, ok := TokenFromFragment(tt.fragment)
		if token != tt.token || ok != tt.ok {
			t.Fatalf("TokenFromFragment(%q) = (%q, %t), want (%q, %t)", tt.fragment, token, ok, tt.token, tt.ok)
		}
	}
}

func TestBridgePushWritesOnlyOnChange(t *testing.T) {
	t.Parallel()

	loc := &fakeLocation{}
	bridge := NewBridge(loc)
	items := []Ingredient{{ID: 0, Protein: "10", Servings: "1"}}

	if !bridge.Push(items, "Soup") {
		t.Fatal("expected first push to write")
	}
	if bridge.Push(items, "Soup") {
		t.Fatal("expected identical push to be skipped")
	}
	if len(loc.writes) != 1 {
		t.Fatalf("expected one write, got %d", len(loc.writes))
	}
	if !loc.replaces[0] {
		t.Fatal("expected fragment to be replaced without a history entry")
	}

	items[0].Protein = "10.0"
	if bridge.Push(items, "Soup") {
		t.Fatal("expected text-only change with equal numbers to produce the same fragment")
	}

	items[0].Protein = "11"
	if !bridge.Push(items, "Soup") {
		t.Fatal("expected changed value to write")
	}

	token, ok := TokenFromFragment(loc.fragment)
	if !ok {
		t.Fatalf("expected recipe fragment, got %q", loc.fragment)
	}
	decoded, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if decoded.Name != "Soup" || decoded.Ingredients[0].Protein != "11.00" {
		t.Fatalf("unexpected decoded state: %+v", decoded)
	}
}

func TestBridgeLoad(t *testing.T) {
	t.Parallel()

	token, err := Encode([]Ingredient{{ID: 5, Name: "tuna", Protein: "25", Servings: "1"}}, "Salad")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	loc := &fakeLocation{fragment: FragmentFor(token)}
	ledger, name := NewBridge(loc).Load()
	if name != "Salad" {
		t.Fatalf("expected name Salad, got %q", name)
	}
	items := ledger.Items()
	if len(items) != 1 || items[0].ID != 5 || items[0].Name != "tuna" {
		t.Fatalf("unexpected rows: %+v", items)
	}
	if ledger.NextID() != 6 {
		t.Fatalf("expected next id 6, got %d", ledger.NextID())
	}
	if len(loc.writes) != 0 {
		t.Fatal("expected Load not to write the fragment")
	}
}

func TestBridgeLoadFallsBackToDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		hookErr  bool
	}{
		{"no fragment", "", false},
		{"foreign fragment", "#section-2", false},
		{"invalid token", "#recipe=not-valid-base64!!", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var hookErr error
			bridge := NewBridge(&fakeLocation{fragment: tt.fragment})
			bridge.OnDecodeError(func(err error) { hookErr = err })

			ledger, name := bridge.Load()
			if name != "" {
				t.Fatalf("expected empty name, got %q", name)
			}
			items := ledger.Items()
			if len(items) != 1 || items[0] != EmptyIngredient(0) {
				t.Fatalf("expected default ledger, got %+v", items)
			}
			if tt.hookErr && !errors.Is(hookErr, ErrMalformedToken) {
				t.Fatalf("expected decode error hook to receive ErrMalformedToken, got %v", hookErr)
			}
			if !tt.hookErr && hookErr != nil {
				t.Fatalf("expected no decode error, got %v", hookErr)
			}
		})
	}
}

func TestNilLocationBridge(t *testing.T) {
	t.Parallel()

	bridge := NewBridge(nil)
	if bridge.Push([]Ingredient{EmptyIngredient(0)}, "") {
		t.Fatal("expected push without a location to be a no-op")
	}
	ledger, name := bridge.Load()
	if ledger.Len() != 1 || name != "" {
		t.Fatal("expected default state without a location")
	}
}
