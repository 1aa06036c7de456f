package main

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"psp.com/discussion-picker/backend/internal/pool"
	"psp.com/discussion-picker/backend/internal/questionbank"
)

var errSessionNotFound = errors.New("session not found")

// session is one classroom draw: a pool over the selected weeks.
type session struct {
	ID       string
	Weeks    []string
	Created  time.Time
	pool     *pool.Locked[questionbank.Question]
	lastSeen time.Time
}

type sessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*session
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{ttl: ttl, sessions: map[string]*session{}}
}

// create sweeps idle sessions, then registers a new one over qs.
func (s *sessionStore) create(weeks []string, qs []questionbank.Question, opts ...pool.Option) *session {
	t := now()
	sess := &session{
		ID:       uuid.NewString(),
		Weeks:    weeks,
		Created:  t,
		pool:     pool.NewLocked(qs, opts...),
		lastSeen: t,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, old := range s.sessions {
		if t.Sub(old.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
	s.sessions[sess.ID] = sess
	return sess
}

// get returns a live session and marks it used.
func (s *sessionStore) get(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, errSessionNotFound
	}
	t := now()
	if t.Sub(sess.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, errSessionNotFound
	}
	sess.lastSeen = t
	return sess, nil
}

func (s *sessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
