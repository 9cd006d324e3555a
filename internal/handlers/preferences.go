package handlers

import (
	"net/http"
	"strings"

	applog "pedietcalc/internal/log"
	"pedietcalc/internal/views/theme"
)

type preferencesResponse struct {
	Theme string `json:"theme"`
}

// UpdatePreferences stores the display theme in the visitor's session.
func UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		applog.Debug(r.Context(), "preferences update with unsupported method", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse preferences form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	themeValue := strings.TrimSpace(r.FormValue("theme"))
	themeConfig, ok := theme.Lookup(themeValue)
	if !ok {
		applog.Debug(r.Context(), "received invalid theme selection", "value", themeValue)
		http.Error(w, "invalid theme selection", http.StatusBadRequest)
		return
	}

	if sessionManager == nil {
		applog.Debug(r.Context(), "session manager not configured; skipping preference persistence")
	} else {
		sessionManager.Put(r.Context(), sessionThemeKey, themeConfig.Key)
	}

	if isHTMX(r) {
		w.Header().Set("HX-Refresh", "true")
	}
	writeJSON(w, r, http.StatusOK, preferencesResponse{Theme: themeConfig.Key})
}
