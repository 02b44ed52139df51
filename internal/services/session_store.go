package services

import (
	"fmt"
	"sync"
	"time"

	apperrors "cashflow/internal/errors"
	"cashflow/internal/game"
	"cashflow/internal/logger"
	"cashflow/internal/uuid"
)

// session is one player's game. mu serializes every action on it.
type session struct {
	mu       sync.Mutex
	id       string
	state    *game.State
	won      bool
	lastSeen time.Time
}

// replace swaps in a new state and recomputes the win flag.
func (s *session) replace(state *game.State) {
	s.state = state
	s.won = state.CheckWin()
}

// settle marks the session won the first time the state satisfies the win condition.
func (s *session) settle() {
	if s.won || !s.state.CheckWin() {
		return
	}
	s.won = true
	sum := s.state.Summarize()
	logger.ForSession(s.id).Infow("game won",
		"month", s.state.Month,
		"passive_income", sum.PassiveIncome,
		"fixed_expenses", sum.FixedExpenses,
	)
}

// SessionStore holds the live game sessions in memory.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	now      func() time.Time
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// create registers state under a fresh session id.
func (s *SessionStore) create(state *game.State) string {
	sess := &session{id: uuid.New(), lastSeen: s.now()}
	sess.replace(state)

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	return sess.id
}

// do runs fn with exclusive access to the session.
func (s *SessionStore) do(id string, fn func(sess *session) error) error {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return apperrors.WithMessage(apperrors.ErrSessionNotFound, fmt.Sprintf("Game session %s not found", id))
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen = s.now()
	return fn(sess)
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes sessions that have not been used for longer than idle and
// returns how many were removed. Sessions busy with a request are kept.
func (s *SessionStore) Sweep(idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if !sess.mu.TryLock() {
			continue
		}
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
		sess.mu.Unlock()
	}
	return removed
}
