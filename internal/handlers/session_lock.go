package handlers

import (
	"net/http"
	"sync"
)

// sessionLocks hands out one mutex per session token. Entries are dropped
// once no request holds or waits on them.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

var writeLocks = &sessionLocks{locks: make(map[string]*sessionLock)}

func (s *sessionLocks) lock(token string) func() {
	s.mu.Lock()
	entry, ok := s.locks[token]
	if !ok {
		entry = &sessionLock{}
		s.locks[token] = entry
	}
	entry.refs++
	s.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		s.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(s.locks, token)
		}
		s.mu.Unlock()
	}
}

// SerializeSessionWrites runs requests that may change a session one at a
// time per session cookie. It must wrap the session manager's LoadAndSave so
// the session is loaded after the lock is taken and committed before it is
// released. Reads pass through.
func SerializeSessionWrites(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sessionManager == nil || r.Method == http.MethodGet || r.Method == http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}
		cookie, err := r.Cookie(sessionManager.Cookie.Name)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}
		unlock := writeLocks.lock(cookie.Value)
		defer unlock()
		next.ServeHTTP(w, r)
	})
}
