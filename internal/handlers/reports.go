package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	applog "pedietcalc/internal/log"
	"pedietcalc/internal/recipe"
	"pedietcalc/internal/report"
	"pedietcalc/internal/views/layout"
	"pedietcalc/internal/views/pages"
	"pedietcalc/internal/views/theme"
)

const workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// summaryCalculator picks the recipe a read-only report describes: the link or
// token in the recipe query parameter, otherwise the session's working recipe.
func summaryCalculator(r *http.Request) (*recipe.Calculator, error) {
	if raw := strings.TrimSpace(r.URL.Query().Get("recipe")); raw != "" {
		decoded, err := recipe.Decode(report.TokenFromLink(raw))
		if err != nil {
			return nil, err
		}
		return recipe.FromRecipe(decoded), nil
	}
	if state, ok := sessionState(r); ok {
		return recipe.Resume(state, nil), nil
	}
	return recipe.FromRecipe(recipe.Recipe{}), nil
}

func buildSummary(w http.ResponseWriter, r *http.Request) (report.Summary, bool) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return report.Summary{}, false
	}

	c, err := summaryCalculator(r)
	if err != nil {
		applog.Debug(r.Context(), "rejecting undecodable recipe parameter", "error", err)
		if errors.Is(err, recipe.ErrMalformedToken) || errors.Is(err, recipe.ErrMalformedPayload) {
			http.Error(w, "The recipe link could not be read.", http.StatusBadRequest)
			return report.Summary{}, false
		}
		http.Error(w, "We were unable to read the recipe.", http.StatusInternalServerError)
		return report.Summary{}, false
	}

	s, err := report.Build(c, requestBaseURL(r))
	if err != nil {
		applog.Error(r.Context(), "failed to build recipe summary", "error", err)
		http.Error(w, "We were unable to summarise the recipe. Please try again.", http.StatusInternalServerError)
		return report.Summary{}, false
	}
	return s, true
}

// PrintRecipe renders the static print layout of a recipe.
func PrintRecipe(w http.ResponseWriter, r *http.Request) {
	s, ok := buildSummary(w, r)
	if !ok {
		return
	}
	th := theme.Resolve(sessionTheme(r))
	renderComponent(w, r, layout.Page(s.Title, th, pages.PrintReport(s)))
}

// RecipeSummary returns the recipe breakdown as JSON.
func RecipeSummary(w http.ResponseWriter, r *http.Request) {
	s, ok := buildSummary(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, s)
}

// RecipeMarkdown returns the recipe breakdown as a markdown document.
func RecipeMarkdown(w http.ResponseWriter, r *http.Request) {
	s, ok := buildSummary(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	if _, err := w.Write([]byte(report.Markdown(s))); err != nil {
		applog.Error(r.Context(), "failed to write markdown summary", "error", err)
	}
}

// ExportWorkbook returns the recipe breakdown as an xlsx download.
func ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	s, ok := buildSummary(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteWorkbook(&buf, s); err != nil {
		applog.Error(r.Context(), "failed to build workbook", "error", err)
		http.Error(w, "We were unable to export the recipe. Please try again.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", workbookContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(s.Title)))
	if _, err := buf.WriteTo(w); err != nil {
		applog.Error(r.Context(), "failed to stream workbook", "error", err)
	}
}

// requestBaseURL is the page share links point at: the configured public
// URL, else the address this request reached.
func requestBaseURL(r *http.Request) string {
	if publicBaseURL != "" {
		return publicBaseURL
	}
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	if r.Host == "" {
		return "/"
	}
	return scheme + "://" + r.Host + "/"
}

func exportFilename(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	name := strings.TrimSuffix(b.String(), "-")
	if name == "" {
		name = "recipe"
	}
	return name + ".xlsx"
}
