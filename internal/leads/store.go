package leads

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nsepoxy/website/internal/models"
)

// Store persists leads as a single JSON array on disk. Every append reloads
// the full document, assigns the next ID, and rewrites the whole file, so the
// document on disk is always a complete, valid snapshot. The mutex serializes
// the read-modify-write cycle across concurrent requests.
type Store struct {
	path   string
	logger *slog.Logger

	mu sync.Mutex
}

// Open prepares the store at the given path, creating the parent directory
// and an empty document on first run.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("initialize lead store: %w", err)
		}
	}

	return &Store{path: path, logger: logger}, nil
}

// Append stamps the lead with the next ID and the current time, then rewrites
// the full document. IDs are dense and increasing across both kinds: the next
// ID is always the current document length plus one. A store that cannot be
// read or written at append time returns an error; nothing is persisted.
func (s *Store) Append(lead models.Lead) (models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return models.Lead{}, fmt.Errorf("read lead store: %w", err)
	}

	lead.ID = len(all) + 1
	lead.Timestamp = time.Now().Format(time.RFC3339)
	all = append(all, lead)

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return models.Lead{}, fmt.Errorf("encode leads: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return models.Lead{}, fmt.Errorf("write lead store: %w", err)
	}

	return lead, nil
}

// ReadAll returns every persisted lead in append order. A missing or
// unparseable document reads as empty; it is never an error.
func (s *Store) ReadAll() []models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		s.logger.Warn("lead store unreadable, treating as empty", "path", s.path, "error", err)
		return []models.Lead{}
	}
	return all
}

// Count returns the number of persisted leads.
func (s *Store) Count() int {
	return len(s.ReadAll())
}

// load reads and decodes the backing document. Callers hold the mutex.
func (s *Store) load() ([]models.Lead, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var all []models.Lead
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("decode leads: %w", err)
	}
	if all == nil {
		all = []models.Lead{}
	}
	return all, nil
}
