package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sozercan/web-data-gen/internal/form"
)

const sessionCookie = "wdg_session"

type session struct {
	holder   *form.Holder
	lastSeen time.Time
}

// sessionStore keeps one form per browser, in memory only.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// get returns the holder for id, creating a fresh one (and a new id) when
// id is unknown or expired.
func (s *sessionStore) get(id string) (string, *form.Holder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if sess, ok := s.sessions[id]; ok && !s.expired(sess, now) {
		sess.lastSeen = now
		return id, sess.holder
	}

	s.sweep(now)
	id = uuid.NewString()
	sess := &session{holder: form.NewHolder(), lastSeen: now}
	s.sessions[id] = sess
	return id, sess.holder
}

func (s *sessionStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *sessionStore) expired(sess *session, now time.Time) bool {
	if s.ttl <= 0 || sess.holder.Outcome().Pending() {
		return false
	}
	return now.Sub(sess.lastSeen) > s.ttl
}

func (s *sessionStore) sweep(now time.Time) {
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
		}
	}
}

type holderContextKey struct{}

func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(sessionCookie); err == nil {
			id = c.Value
		}

		newID, holder := s.sessions.get(id)
		if newID != id {
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    newID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), holderContextKey{}, holder)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func holderFrom(r *http.Request) *form.Holder {
	h, _ := r.Context().Value(holderContextKey{}).(*form.Holder)
	return h
}
