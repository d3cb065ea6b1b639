// Package session manages save-file load sessions.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scansector/backend/internal/models"
	"github.com/scansector/backend/internal/save"
)

// MaxSessions limits retained sessions to bound memory use.
const MaxSessions = 10

// SessionMaxAge is how long to keep completed sessions before cleanup.
const SessionMaxAge = 30 * time.Minute

// ErrLoadInFlight is returned when a load is requested while another one
// is still running. At most one load may be in flight at a time; callers
// must wait for the prior one to resolve.
var ErrLoadInFlight = errors.New("a load is already in progress")

// Manager handles active load sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState
}

// sessionState holds session metadata and, once complete, the extracted
// system list. The list is immutable after the load finishes; a new load
// produces a new session rather than mutating this one.
type sessionState struct {
	session      *models.LoadSession
	systems      []models.System
	lastAccessed time.Time
}

// NewManager creates a new session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*sessionState),
	}
}

// StartLoad begins loading a save file in the background. It fails with
// ErrLoadInFlight if another session is still pending or loading.
func (m *Manager) StartLoad(fileID, filePath string) (*models.LoadSession, error) {
	m.mu.Lock()
	for _, state := range m.sessions {
		switch state.session.Status {
		case models.SessionStatusPending, models.SessionStatusLoading:
			m.mu.Unlock()
			return nil, ErrLoadInFlight
		}
	}

	m.evictIfNeededLocked()

	sessionID := uuid.New().String()
	sess := models.NewLoadSession(sessionID, fileID)
	sess.Status = models.SessionStatusLoading

	m.sessions[sessionID] = &sessionState{
		session:      sess,
		lastAccessed: time.Now(),
	}
	m.mu.Unlock()

	go m.runLoad(sessionID, filePath)

	return copySession(sess), nil
}

// runLoad executes the synchronous load pipeline to completion or
// failure. There is no mid-load cancellation.
func (m *Manager) runLoad(sessionID, filePath string) {
	defer func() {
		if r := recover(); r != nil {
			m.failSession(sessionID, fmt.Sprintf("load panicked: %v", r))
		}
	}()

	start := time.Now()

	systems, stats, err := save.Load(filePath)
	if err != nil {
		m.failSession(sessionID, err.Error())
		return
	}

	objectCount := 0
	for _, sys := range systems {
		objectCount += len(sys.Objects)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.sessions[sessionID]
	if !ok {
		return
	}
	state.systems = systems
	state.session.Status = models.SessionStatusComplete
	state.session.SystemCount = len(systems)
	state.session.ObjectCount = objectCount
	state.session.SystemsSkipped = stats.SystemsSkipped
	state.session.ObjectsSkipped = stats.ObjectsSkipped
	state.session.ProcessingTimeMs = time.Since(start).Milliseconds()
}

func (m *Manager) failSession(sessionID, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.sessions[sessionID]; ok {
		state.session.Status = models.SessionStatusError
		state.session.Error = msg
	}
}

// GetSession returns a snapshot of the session metadata.
func (m *Manager) GetSession(id string) (*models.LoadSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	state.lastAccessed = time.Now()
	return copySession(state.session), true
}

// Systems returns the sorted system list of a completed session.
func (m *Manager) Systems(id string) ([]models.System, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[id]
	if !ok || state.session.Status != models.SessionStatusComplete {
		return nil, false
	}
	state.lastAccessed = time.Now()
	return state.systems, true
}

// System returns one system of a completed session by its index in the
// sorted list.
func (m *Manager) System(id string, index int) (*models.System, bool) {
	systems, ok := m.Systems(id)
	if !ok || index < 0 || index >= len(systems) {
		return nil, false
	}
	return &systems[index], true
}

// CleanupOldSessions drops sessions not accessed within maxAge. Sessions
// with a load still running are never dropped.
func (m *Manager) CleanupOldSessions(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	cutoff := time.Now().Add(-maxAge)
	for id, state := range m.sessions {
		if state.session.Status == models.SessionStatusLoading ||
			state.session.Status == models.SessionStatusPending {
			continue
		}
		if state.lastAccessed.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// evictIfNeededLocked drops the oldest finished sessions once the map is
// at capacity. Caller holds m.mu.
func (m *Manager) evictIfNeededLocked() {
	for len(m.sessions) >= MaxSessions {
		var oldestID string
		var oldest time.Time
		for id, state := range m.sessions {
			if state.session.Status == models.SessionStatusLoading ||
				state.session.Status == models.SessionStatusPending {
				continue
			}
			if oldestID == "" || state.lastAccessed.Before(oldest) {
				oldestID = id
				oldest = state.lastAccessed
			}
		}
		if oldestID == "" {
			return
		}
		delete(m.sessions, oldestID)
	}
}

func copySession(s *models.LoadSession) *models.LoadSession {
	c := *s
	return &c
}
