package handlers

import (
	"net/http"

	templpkg "github.com/a-h/templ"

	"pedietcalc/internal/views/layout"
	"pedietcalc/internal/views/pages"
	"pedietcalc/internal/views/theme"
)

const pageTitle = "P:E Diet Recipe Calculator"

// Home renders the calculator page. The workspace is restored by a follow-up
// request once the browser can report the address-bar fragment.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	th := theme.Resolve(sessionTheme(r))
	var component templpkg.Component
	if isHTMX(r) {
		component = pages.CalculatorPage(th)
	} else {
		component = layout.Page(pageTitle, th, pages.CalculatorPage(th))
	}
	renderComponent(w, r, component)
}
