package handlers

import (
	"net/http"

	applog "pedietcalc/internal/log"
	"pedietcalc/internal/recipe"
	"pedietcalc/internal/views/pages"
	"pedietcalc/models"
)

func sessionState(r *http.Request) (recipe.State, bool) {
	if sessionManager == nil {
		return recipe.State{}, false
	}
	state, ok := sessionManager.Get(r.Context(), sessionRecipeKey).(recipe.State)
	return state, ok
}

func sessionTheme(r *http.Request) string {
	if sessionManager == nil {
		return models.DefaultTheme
	}
	return models.NormalizeTheme(sessionManager.GetString(r.Context(), sessionThemeKey))
}

// openCalculator seeds a calculator from the page fragment, logging tokens
// that could not be decoded.
func openCalculator(r *http.Request, loc recipe.Location) *recipe.Calculator {
	bridge := recipe.NewBridge(loc)
	bridge.OnDecodeError(func(err error) {
		applog.Warn(r.Context(), "discarding undecodable recipe fragment", "error", err)
	})
	return recipe.Open(bridge)
}

// loadCalculator resumes the session's working recipe. A session that has
// expired falls back to the fragment the page still carries.
func loadCalculator(r *http.Request, loc recipe.Location) *recipe.Calculator {
	if state, ok := sessionState(r); ok {
		return recipe.Resume(state, loc)
	}
	applog.Debug(r.Context(), "no recipe in session, reading page fragment")
	return openCalculator(r, loc)
}

func saveCalculator(r *http.Request, c *recipe.Calculator) {
	if sessionManager == nil {
		return
	}
	sessionManager.Put(r.Context(), sessionRecipeKey, c.State())
}

func shareLinkFor(r *http.Request, loc *htmxLocation, c *recipe.Calculator) string {
	token, err := c.Token()
	if err != nil {
		applog.Error(r.Context(), "failed to encode share token", "error", err)
		return ""
	}
	return loc.shareLink(token)
}

func renderWorkspace(w http.ResponseWriter, r *http.Request, loc *htmxLocation, c *recipe.Calculator) {
	snapshot := pages.NewWorkspaceSnapshot(c, shareLinkFor(r, loc, c), sessionTheme(r))
	renderComponent(w, r, pages.Workspace(snapshot))
}
