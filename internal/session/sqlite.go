package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"prdforge/internal/logging"
)

// SQLiteStore persists sessions to SQLite so a run can survive process
// restarts. Same contract as MemoryStore; selected by configuration.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
	seed   Seed
}

// NewSQLiteStore opens (or creates) the database at the given path.
func NewSQLiteStore(path string, seed Seed) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." && path != ":memory:" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db, dbPath: path, seed: seed}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logging.StoreDebug("sqlite session store opened at %s", path)
	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		last_updated DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_status ON sessions(status);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) write(sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO sessions (id, data, status, created_at, last_updated)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data=excluded.data, status=excluded.status, last_updated=excluded.last_updated`,
		sess.ID, string(data), string(sess.Status), sess.CreatedAt, sess.LastUpdated,
	)
	return err
}

func (s *SQLiteStore) read(id string) (*Session, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM sessions WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if sess.CompletedSections == nil {
		sess.CompletedSections = make(map[int]string)
	}
	return &sess, nil
}

// Create makes a new session keyed by a fresh uuid.
func (s *SQLiteStore) Create(problemStatement string, docs []ContextDocument, scoringCriteria string) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:                uuid.NewString(),
		ProblemStatement:  problemStatement,
		ContextDocuments:  docs,
		SystemPrompt:      s.seed.SystemPrompt(problemStatement, docs),
		ScoringCriteria:   scoringCriteria,
		Sections:          s.seed.Sections(),
		CompletedSections: make(map[int]string),
		Status:            StatusInProgress,
		CreatedAt:         now,
		LastUpdated:       now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(sess); err != nil {
		return nil, err
	}

	logging.Session("created session id=%s sections=%d (sqlite)", sess.ID, len(sess.Sections))
	return sess.Clone(), nil
}

// Get returns a copy of the session.
func (s *SQLiteStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(id)
}

// Update applies mutate read-modify-write under the store lock.
func (s *SQLiteStore) Update(id string, mutate func(*Session)) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.read(id)
	if err != nil {
		return nil, err
	}

	mutate(sess)
	sess.LastUpdated = time.Now()
	if err := s.write(sess); err != nil {
		return nil, err
	}
	return sess.Clone(), nil
}

// SetSectionContent writes the latest accepted section content.
func (s *SQLiteStore) SetSectionContent(id string, sectionID int, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.read(id)
	if err != nil {
		return err
	}

	sess.CompletedSections[sectionID] = content
	sess.LastUpdated = time.Now()
	return s.write(sess)
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
