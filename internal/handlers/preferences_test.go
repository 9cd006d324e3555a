package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"pedietcalc/models"
)

func TestUpdatePreferencesStoresTheme(t *testing.T) {
	client := newTestClient(t, "")

	rr := client.do(http.MethodPost, "/preferences/theme", url.Values{"theme": {" Contrast "}})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if rr.Header().Get("HX-Refresh") != "true" {
		t.Fatal("expected htmx clients to be asked to refresh")
	}
	var resp preferencesResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Theme != models.ThemeHighContrast {
		t.Fatalf("expected contrast theme, got %q", resp.Theme)
	}

	page := client.page("/")
	if !strings.Contains(page.Body.String(), `data-theme="contrast"`) {
		t.Fatalf("expected stored theme on the next page: %s", page.Body.String())
	}
}

func TestUpdatePreferencesRejectsInvalidInput(t *testing.T) {
	client := newTestClient(t, "")

	if rr := client.do(http.MethodPost, "/preferences/theme", url.Values{"theme": {"sepia"}}); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	if rr := client.do(http.MethodGet, "/preferences/theme", nil); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rr.Code)
	}
}

func TestUpdatePreferencesWithoutSessionManager(t *testing.T) {
	withTestSessionManager(t)
	sessionManager = nil

	req := httptest.NewRequest(http.MethodPost, "/preferences/theme", strings.NewReader("theme=midnight"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	UpdatePreferences(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if rr.Header().Get("HX-Refresh") != "" {
		t.Fatal("plain requests should not receive htmx headers")
	}
}
