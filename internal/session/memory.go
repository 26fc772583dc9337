package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"prdforge/internal/logging"
)

// MemoryStore keeps sessions in a process map. State does not survive a
// restart; that is the documented lifetime of a session.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	seed     Seed
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(seed Seed) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		seed:     seed,
	}
}

// Create makes a new session keyed by a fresh uuid.
func (m *MemoryStore) Create(problemStatement string, docs []ContextDocument, scoringCriteria string) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:                uuid.NewString(),
		ProblemStatement:  problemStatement,
		ContextDocuments:  docs,
		SystemPrompt:      m.seed.SystemPrompt(problemStatement, docs),
		ScoringCriteria:   scoringCriteria,
		Sections:          m.seed.Sections(),
		CompletedSections: make(map[int]string),
		Status:            StatusInProgress,
		CreatedAt:         now,
		LastUpdated:       now,
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	logging.Session("created session id=%s sections=%d context_docs=%d",
		sess.ID, len(sess.Sections), len(docs))
	return sess.Clone(), nil
}

// Get returns a copy of the session.
func (m *MemoryStore) Get(id string) (*Session, error) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess.Clone(), nil
}

// Update applies mutate under the store lock and refreshes LastUpdated.
func (m *MemoryStore) Update(id string, mutate func(*Session)) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	mutate(sess)
	sess.LastUpdated = time.Now()
	logging.SessionDebug("updated session id=%s status=%s", sess.ID, sess.Status)
	return sess.Clone(), nil
}

// SetSectionContent writes the latest accepted section content.
func (m *MemoryStore) SetSectionContent(id string, sectionID int, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	sess.CompletedSections[sectionID] = content
	sess.LastUpdated = time.Now()
	logging.SessionDebug("stored section content id=%s section=%d len=%d", id, sectionID, len(content))
	return nil
}

// Close is a no-op for the memory backend.
func (m *MemoryStore) Close() error { return nil }
