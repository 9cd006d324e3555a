package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/alexedwards/scs/v2"
)

func withTestSessionManager(t *testing.T) *scs.SessionManager {
	t.Helper()
	originalSM, originalDB, originalBase := sessionManager, database, publicBaseURL
	sm := scs.New()
	sessionManager = sm
	database = nil
	publicBaseURL = ""
	t.Cleanup(func() {
		sessionManager = originalSM
		database = originalDB
		publicBaseURL = originalBase
	})
	return sm
}

func testRoutes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", Home)
	mux.HandleFunc("/recipe/restore", Restore)
	mux.HandleFunc("/recipe/ingredients", IngredientResource)
	mux.HandleFunc("/recipe/ingredients/", IngredientResource)
	mux.HandleFunc("/recipe/name", UpdateName)
	mux.HandleFunc("/recipe/print", PrintRecipe)
	mux.HandleFunc("/recipe/summary", RecipeSummary)
	mux.HandleFunc("/recipe/summary.md", RecipeMarkdown)
	mux.HandleFunc("/recipe/export.xlsx", ExportWorkbook)
	mux.HandleFunc("/preferences/theme", UpdatePreferences)
	return mux
}

// testClient plays the browser: it keeps the session cookie and follows the
// URL htmx would show after each response.
type testClient struct {
	t          *testing.T
	handler    http.Handler
	cookies    []*http.Cookie
	currentURL string
}

func newTestClient(t *testing.T, currentURL string) *testClient {
	t.Helper()
	sm := withTestSessionManager(t)
	return &testClient{t: t, handler: SerializeSessionWrites(sm.LoadAndSave(testRoutes())), currentURL: currentURL}
}

func (c *testClient) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("HX-Request", "true")
	if c.currentURL != "" {
		req.Header.Set("HX-Current-URL", c.currentURL)
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)

	if set := rr.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}
	if next := rr.Header().Get("HX-Replace-Url"); next != "" {
		c.currentURL = next
	}
	return rr
}

// page issues a plain browser navigation, without htmx headers.
func (c *testClient) page(target string) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)
	return rr
}

func parseHTML(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rr.Body.String()))
	if err != nil {
		t.Fatalf("parse response html: %v", err)
	}
	return doc
}

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if isHTMX(req) {
		t.Fatal("expected false when no HTMX headers present")
	}
	req.Header.Set("HX-Request", "true")
	if !isHTMX(req) {
		t.Fatal("expected true when HX-Request header present")
	}
}

func TestHTMXLocation(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/recipe/restore", nil)
	req.Header.Set("HX-Current-URL", "http://example.test/app?x=1#recipe=abc")
	rr := httptest.NewRecorder()
	loc := newHTMXLocation(rr, req)

	if loc.Fragment() != "#recipe=abc" {
		t.Fatalf("Fragment() = %q", loc.Fragment())
	}

	loc.SetFragment("#recipe=def", true)
	if got := rr.Header().Get("HX-Replace-Url"); got != "http://example.test/app?x=1#recipe=def" {
		t.Fatalf("HX-Replace-Url = %q", got)
	}
	if rr.Header().Get("HX-Push-Url") != "" {
		t.Fatal("replace must not push a history entry")
	}
	if loc.Fragment() != "#recipe=def" {
		t.Fatalf("expected fragment to follow the last write, got %q", loc.Fragment())
	}

	loc.SetFragment("#recipe=ghi", false)
	if got := rr.Header().Get("HX-Push-Url"); got != "http://example.test/app?x=1#recipe=ghi" {
		t.Fatalf("HX-Push-Url = %q", got)
	}
	if got := loc.shareLink("tok"); got != "http://example.test/app?x=1#recipe=tok" {
		t.Fatalf("shareLink() = %q", got)
	}
}

func TestHTMXLocationWithoutCurrentURL(t *testing.T) {
	withTestSessionManager(t)
	ConfigureSharing(" https://pe.example/ ")

	loc := newHTMXLocation(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	if loc.Fragment() != "" {
		t.Fatalf("expected empty fragment, got %q", loc.Fragment())
	}
	if got := loc.shareLink("tok"); got != "https://pe.example/#recipe=tok" {
		t.Fatalf("shareLink() = %q", got)
	}

	ConfigureSharing("")
	if got := loc.shareLink("tok"); got != "/#recipe=tok" {
		t.Fatalf("shareLink() = %q", got)
	}
}
