package handlers

import (
	"net/http"
	"strings"

	"pedietcalc/internal/recipe"
)

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
}

// htmxLocation is the browser address bar as seen through htmx: the current
// URL arrives in HX-Current-URL and fragment changes are answered with
// HX-Replace-Url, or HX-Push-Url when a history entry is wanted.
type htmxLocation struct {
	base     string
	fragment string
	header   http.Header
}

var _ recipe.Location = (*htmxLocation)(nil)

func newHTMXLocation(w http.ResponseWriter, r *http.Request) *htmxLocation {
	base, fragment, found := strings.Cut(r.Header.Get("HX-Current-URL"), "#")
	loc := &htmxLocation{base: base, header: w.Header()}
	if found {
		loc.fragment = "#" + fragment
	}
	return loc
}

func (l *htmxLocation) Fragment() string {
	return l.fragment
}

func (l *htmxLocation) SetFragment(fragment string, replace bool) {
	l.fragment = fragment
	target := l.base + fragment
	if replace {
		l.header.Set("HX-Replace-Url", target)
		return
	}
	l.header.Set("HX-Push-Url", target)
}

// shareLink is the absolute link reopening token.
func (l *htmxLocation) shareLink(token string) string {
	base := l.base
	if base == "" {
		base = publicBaseURL
	}
	if base == "" {
		base = "/"
	}
	return base + recipe.FragmentFor(token)
}
