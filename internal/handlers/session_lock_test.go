package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"pedietcalc/internal/report"
)

func TestConcurrentEditsAllSurvive(t *testing.T) {
	client := newTestClient(t, "http://example.test/")
	client.do(http.MethodPost, "/recipe/restore", nil)
	if len(client.cookies) == 0 {
		t.Fatal("expected restore to start a session")
	}

	edits := []url.Values{
		{"field": {"name"}, "value": {"Egg"}},
		{"field": {"protein"}, "value": {"13"}},
		{"field": {"fat"}, "value": {"10"}},
		{"field": {"net_carbs"}, "value": {"1"}},
		{"field": {"servings"}, "value": {"3"}},
	}
	const adds = 3

	send := func(method, target string, form url.Values) {
		var body *strings.Reader
		if form != nil {
			body = strings.NewReader(form.Encode())
		} else {
			body = strings.NewReader("")
		}
		req := httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-Current-URL", client.currentURL)
		for _, cookie := range client.cookies {
			req.AddCookie(cookie)
		}
		rr := httptest.NewRecorder()
		client.handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Errorf("%s %s: status %d", method, target, rr.Code)
		}
	}

	var wg sync.WaitGroup
	for _, form := range edits {
		wg.Add(1)
		go func(form url.Values) {
			defer wg.Done()
			send(http.MethodPost, "/recipe/ingredients/0", form)
		}(form)
	}
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			send(http.MethodPost, "/recipe/ingredients", nil)
		}()
	}
	wg.Wait()

	rr := client.do(http.MethodGet, "/recipe/summary", nil)
	var s report.Summary
	if err := json.Unmarshal(rr.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if len(s.Lines) != 1+adds {
		t.Fatalf("expected %d rows, got %d", 1+adds, len(s.Lines))
	}
	first := s.Lines[0]
	if first.Name != "Egg" || first.Servings != 3 {
		t.Fatalf("lost an edit on row 0: %+v", first)
	}
	if first.PerServing.Protein != 13 || first.PerServing.Fat != 10 || first.PerServing.NetCarbs != 1 {
		t.Fatalf("lost a macro edit on row 0: %+v", first.PerServing)
	}
	seen := make(map[int]bool, len(s.Lines))
	for _, line := range s.Lines {
		if seen[line.ID] {
			t.Fatalf("duplicate id %d in %+v", line.ID, s.Lines)
		}
		seen[line.ID] = true
	}
}

func TestSessionLocksReleaseEntries(t *testing.T) {
	t.Parallel()

	locks := &sessionLocks{locks: make(map[string]*sessionLock)}
	unlock := locks.lock("a")

	acquired := make(chan struct{})
	go func() {
		release := locks.lock("a")
		close(acquired)
		release()
	}()

	otherDone := make(chan struct{})
	go func() {
		locks.lock("b")()
		close(otherDone)
	}()
	<-otherDone

	select {
	case <-acquired:
		t.Fatal("second holder acquired the lock while the first still held it")
	default:
	}

	unlock()
	<-acquired

	locks.mu.Lock()
	defer locks.mu.Unlock()
	if len(locks.locks) != 0 {
		t.Fatalf("expected no lock entries after release, got %d", len(locks.locks))
	}
}

func TestSerializeSessionWritesPassesReadsThrough(t *testing.T) {
	sm := withTestSessionManager(t)

	var calls int
	handler := SerializeSessionWrites(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	req := httptest.NewRequest(http.MethodGet, "/recipe/summary", nil)
	req.AddCookie(&http.Cookie{Name: sm.Cookie.Name, Value: "token"})
	handler.ServeHTTP(httptest.NewRecorder(), req)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/recipe/ingredients", nil))

	if calls != 2 {
		t.Fatalf("expected both requests to reach the handler, got %d", calls)
	}
}
