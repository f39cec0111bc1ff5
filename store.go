package nivesh

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are persisted as plain JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Config holds the tracker configuration. All file paths are derived from
// BaseDir so tests can isolate themselves in a temp directory.
type Config struct {
	// BaseDir is the root of the on-disk document layout.
	BaseDir string
	// AdminSeed is the bootstrap password for the self-provisioning "admin"
	// account. Empty disables the bootstrap.
	AdminSeed string
}

// Store is the per-user, per-domain JSON document store. Every document is
// read and written whole: there is no field-level update. A mutex per file
// serializes the read-modify-write cycle so two overlapping mutations of the
// same document cannot clobber each other.
type Store struct {
	cfg Config

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a store rooted at cfg.BaseDir.
func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg, locks: make(map[string]*sync.Mutex)}
}

// Config returns the store configuration.
func (s *Store) Config() Config { return s.cfg }

// lock returns the mutex guarding the given relative path, creating it on
// first use.
func (s *Store) lock(rel string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[rel]
	if !ok {
		l = &sync.Mutex{}
		s.locks[rel] = l
	}
	return l
}

// Document paths, one JSON file per concern. The layout mirrors the
// original application so an existing data directory remains readable.

func (s *Store) assetsPath(userID string) string {
	return filepath.Join("user_data", userID+"_assets.json")
}
func (s *Store) itemsPath(userID string) string {
	return filepath.Join("user_data", userID+"_data.json")
}
func (s *Store) expensesPath(userID string) string  { return "expenses_" + userID + ".json" }
func (s *Store) savingsPath(userID string) string   { return "savings_" + userID + ".json" }
func (s *Store) dividendsPath(userID string) string { return "dividends_" + userID + ".json" }
func (s *Store) yearlyFinancialPath(userID string) string {
	return "yearly_financial_" + userID + ".json"
}
func (s *Store) yearlyExpensesPath(userID string) string {
	return "yearly_expenses_" + userID + ".json"
}
func (s *Store) yearlyDividendsPath(userID string) string {
	return "yearly_dividends_" + userID + ".json"
}
func (s *Store) usersPath() string   { return "users.json" }
func (s *Store) sessionPath() string { return "session.json" }

// readDocument reads and decodes the whole document at rel. A missing file
// is not an error: the skeleton value is returned instead, matching the
// lazy-initialization behavior of every store.
func readDocument[T any](s *Store, rel string, skeleton func() T) (T, error) {
	full := filepath.Join(s.cfg.BaseDir, rel)
	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return skeleton(), nil
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("could not read document %q: %w", rel, err)
	}
	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		var zero T
		return zero, fmt.Errorf("could not parse document %q: %w", rel, err)
	}
	return doc, nil
}

// writeDocument serializes doc and fully replaces the file at rel. The write
// goes through a temp file renamed into place so a crash mid-write never
// leaves a half-written document behind.
func writeDocument[T any](s *Store, rel string, doc T) error {
	full := filepath.Join(s.cfg.BaseDir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", rel, err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal document %q: %w", rel, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(full), "."+filepath.Base(full)+".*")
	if err != nil {
		return fmt.Errorf("could not create temp file for %q: %w", rel, err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write document %q: %w", rel, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close document %q: %w", rel, err)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace document %q: %w", rel, err)
	}
	return nil
}

// replaceDocument fully replaces the document at rel under its lock, so a
// replace cannot interleave with a concurrent read-modify-write on the same
// file.
func replaceDocument[T any](s *Store, rel string, doc T) error {
	l := s.lock(rel)
	l.Lock()
	defer l.Unlock()
	return writeDocument(s, rel, doc)
}

// updateDocument runs the whole read-modify-write cycle for the document at
// rel under its lock. The apply function mutates the decoded document in
// place; returning an error aborts the update without writing.
func updateDocument[T any](s *Store, rel string, skeleton func() T, apply func(*T) error) (T, error) {
	l := s.lock(rel)
	l.Lock()
	defer l.Unlock()

	doc, err := readDocument(s, rel, skeleton)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := apply(&doc); err != nil {
		var zero T
		return zero, err
	}
	if err := writeDocument(s, rel, doc); err != nil {
		var zero T
		return zero, err
	}
	return doc, nil
}

// removeDocument deletes the document at rel if it exists.
func (s *Store) removeDocument(rel string) error {
	err := os.Remove(filepath.Join(s.cfg.BaseDir, rel))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not remove document %q: %w", rel, err)
	}
	return nil
}
