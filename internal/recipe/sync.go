package recipe

import "strings"

// FragmentPrefix introduces a share token in the address-bar fragment.
const FragmentPrefix = "#recipe="

// Location is the slice of the host's address bar the calculator relies on.
type Location interface {
	// Fragment returns the current fragment including the leading '#', or
	// an empty string when there is none.
	Fragment() string
	// SetFragment replaces the fragment. When replace is true the host must
	// not create a new history entry.
	SetFragment(fragment string, replace bool)
}

// FragmentFor builds the fragment carrying token.
func FragmentFor(token string) string {
	return FragmentPrefix + token
}

// TokenFromFragment extracts the share token from a fragment. The leading
// '#' is optional.
func TokenFromFragment(fragment string) (string, bool) {
	trimmed := strings.TrimPrefix(fragment, "#")
	token, ok := strings.CutPrefix(trimmed, "recipe=")
	if !ok {
		return "", false
	}
	return token, true
}

// Bridge keeps the address-bar fragment in step with the ledger. It writes
// only when the encoded fragment differs from the current one, so repeated
// pushes of the same state never touch the host.
type Bridge struct {
	location Location
	onError  func(error)
}

// NewBridge binds a bridge to a host location. A nil location makes every
// push a no-op and every load fall back to the default recipe.
func NewBridge(location Location) *Bridge {
	return &Bridge{location: location}
}

// OnDecodeError installs a hook invoked with the reason a fragment could not
// be decoded. The bridge still falls back to the default recipe.
func (b *Bridge) OnDecodeError(fn func(error)) {
	b.onError = fn
}

// Push encodes the current state and writes it to the fragment when it has
// changed. It reports whether the host was updated.
func (b *Bridge) Push(items []Ingredient, name string) bool {
	if b.location == nil {
		return false
	}
	token, err := Encode(items, name)
	if err != nil {
		return false
	}
	target := FragmentFor(token)
	if b.location.Fragment() == target {
		return false
	}
	b.location.SetFragment(target, true)
	return true
}

// Load reads the fragment once and seeds a ledger from it. Any absence or
// decode failure yields a ledger with one empty row and an empty name.
func (b *Bridge) Load() (*Ledger, string) {
	if b.location == nil {
		return NewLedger(), ""
	}
	token, ok := TokenFromFragment(b.location.Fragment())
	if !ok {
		return NewLedger(), ""
	}
	decoded, err := Decode(token)
	if err != nil {
		if b.onError != nil {
			b.onError(err)
		}
		return NewLedger(), ""
	}
	return RestoreLedger(decoded.Ingredients, 0), decoded.Name
}
