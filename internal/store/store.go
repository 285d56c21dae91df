package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/963krob/event-business-ad-optimizer/internal/model"
)

var (
	// ErrNotFound is returned when no scenario exists under the given name.
	ErrNotFound = errors.New("scenario not found")
	// ErrInvalidName is returned for empty names or names that cannot be
	// used as a filename.
	ErrInvalidName = errors.New("invalid scenario name")
)

const recordExt = ".json"

// Record is one persisted scenario: a named parameter set plus save metadata.
// Saving under an existing name replaces the record entirely.
type Record struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Parameters model.Params `json:"parameters"`
	SavedAt    time.Time    `json:"saved_at"`
}

// Store persists scenarios as one JSON file per name under dir.
// Single-process use; the mutex only guards against concurrent requests
// within this process.
type Store struct {
	mu  sync.Mutex
	dir string
}

// New creates the scenario directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("scenario directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create scenario directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the scenario directory path.
func (s *Store) Dir() string { return s.dir }

// Save writes the full parameter set under name, silently overwriting any
// existing record. The write goes through a temp file and rename so a crash
// never leaves a half-written record behind.
func (s *Store) Save(name string, params model.Params) (*Record, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	rec := &Record{
		ID:         uuid.NewString(),
		Name:       name,
		Parameters: params,
		SavedAt:    time.Now().UTC(),
	}

	raw, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal scenario %q: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "scenario-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("write scenario %q: %w", name, err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("write scenario %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("write scenario %q: %w", name, err)
	}
	if err := os.Rename(tmpPath, s.path(name)); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("write scenario %q: %w", name, err)
	}
	return rec, nil
}

// Load returns the record saved under name, or ErrNotFound.
func (s *Store) Load(name string) (*Record, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("scenario %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("read scenario %q: %w", name, err)
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("parse scenario %q: %w", name, err)
	}
	return &rec, nil
}

// List returns the names of all stored scenarios, sorted.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read scenario directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), recordExt))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the record under name, or returns ErrNotFound.
func (s *Store) Delete(name string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("scenario %q: %w", name, ErrNotFound)
		}
		return fmt.Errorf("delete scenario %q: %w", name, err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+recordExt)
}

// validateName rejects names that are empty or would escape the scenario
// directory when used as a filename.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == ' ', r == '-', r == '_', r == '.':
		default:
			return fmt.Errorf("%w: %q contains unsupported character %q", ErrInvalidName, name, r)
		}
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
