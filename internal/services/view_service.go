package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ViewService keeps one ViewState per visitor session. Sessions idle for
// longer than the TTL are dropped by Sweep
type ViewService struct {
	projects *ProjectService
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	state    *ViewState
	lastSeen time.Time
}

// NewViewService creates a new ViewService
func NewViewService(ps *ProjectService, ttl time.Duration, logger *zap.Logger) *ViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ViewService{
		projects: ps,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// NewSession creates a fresh ViewState and returns it with its session id
func (s *ViewService) NewSession() (string, *ViewState) {
	id := uuid.NewString()
	state := NewViewState(s.projects.GetAll())

	s.mu.Lock()
	s.sessions[id] = &session{state: state, lastSeen: s.now()}
	s.mu.Unlock()

	s.logger.Debug("Session created", zap.String("session", id))
	return id, state
}

// Lookup returns the ViewState for id and marks the session as seen
func (s *ViewService) Lookup(id string) (*ViewState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess.state, true
}

// Discard drops a session
func (s *ViewService) Discard(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions
func (s *ViewService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep evicts sessions idle for at least the TTL and returns how many
func (s *ViewService) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	evicted := 0
	for id, sess := range s.sessions {
		if !sess.lastSeen.After(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	s.mu.Unlock()

	if evicted > 0 {
		s.logger.Debug("Sessions evicted", zap.Int("count", evicted))
	}
	return evicted
}

// Run sweeps every interval until ctx is done
func (s *ViewService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
