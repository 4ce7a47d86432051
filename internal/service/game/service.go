package game

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/pkg/uid"
	"github.com/rs/zerolog"
)

// PresenterFactory builds the presenter a new session reports to.
type PresenterFactory func(sessionID string) Presenter

// Session is one independent board. All access goes through its mutex.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu           sync.Mutex
	controller   *Controller
	lastActivity time.Time
	now          func() time.Time
}

func (s *Session) Play(column int) (Outcome, Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActivity = s.now()
	outcome, err := s.controller.Play(column)
	return outcome, s.controller.Snapshot(), err
}

func (s *Session) Restart() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActivity = s.now()
	s.controller.Restart()
	return s.controller.Snapshot()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.Snapshot()
}

func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// SessionInfo summarises a live session for listings.
type SessionInfo struct {
	SessionID    string           `json:"sessionId"`
	State        domain.GameState `json:"state"`
	MoveCount    int              `json:"moveCount"`
	StartedAt    string           `json:"startedAt"`
	LastActivity string           `json:"lastActivity"`
}

// SessionManager manages active game sessions
type SessionManager struct {
	sessions   map[string]*Session // sessionID → Session
	mu         sync.RWMutex
	presenters PresenterFactory
	log        zerolog.Logger
	now        func() time.Time
}

func NewSessionManager(presenters PresenterFactory, logger zerolog.Logger) *SessionManager {
	return &SessionManager{
		sessions:   make(map[string]*Session),
		presenters: presenters,
		log:        logger.With().Str("component", "session").Logger(),
		now:        time.Now,
	}
}

func (sm *SessionManager) CreateSession() *Session {
	id := uid.GenerateSessionID()

	var presenter Presenter
	if sm.presenters != nil {
		presenter = sm.presenters(id)
	}

	now := sm.now()
	session := &Session{
		ID:           id,
		CreatedAt:    now,
		controller:   NewController(presenter, sm.log.With().Str("session", id).Logger()),
		lastActivity: now,
		now:          sm.now,
	}

	sm.mu.Lock()
	sm.sessions[id] = session
	sm.mu.Unlock()

	sm.log.Info().Str("session", id).Msg("created session")
	return session
}

func (sm *SessionManager) GetSession(id string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[id]
	return session, exists
}

func (sm *SessionManager) RemoveSession(id string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[id]; !exists {
		return fmt.Errorf("session %s not found", id)
	}

	delete(sm.sessions, id)
	sm.log.Info().Str("session", id).Msg("removed session")
	return nil
}

// ActiveSessions lists the live sessions, oldest first.
func (sm *SessionManager) ActiveSessions() []SessionInfo {
	sm.mu.RLock()
	sessions := make([]*Session, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		sessions = append(sessions, s)
	}
	sm.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
		}
		return sessions[i].ID < sessions[j].ID
	})

	infos := make([]SessionInfo, 0, len(sessions))
	for _, s := range sessions {
		snap := s.Snapshot()
		infos = append(infos, SessionInfo{
			SessionID:    s.ID,
			State:        snap.State,
			MoveCount:    snap.Placed,
			StartedAt:    s.CreatedAt.Format(time.RFC3339),
			LastActivity: s.LastActivity().Format(time.RFC3339),
		})
	}
	return infos
}

// CleanupIdleSessions drops every session without activity for longer than
// maxIdle and returns how many were removed.
func (sm *SessionManager) CleanupIdleSessions(maxIdle time.Duration) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	now := sm.now()
	for id, session := range sm.sessions {
		if now.Sub(session.LastActivity()) > maxIdle {
			delete(sm.sessions, id)
			count++
		}
	}

	if count > 0 {
		sm.log.Info().Int("removed", count).Msg("memory cleanup: removed idle sessions")
	}
	return count
}
