// Package history persists a capped log of scoring requests and their
// results, so past comparisons can be reviewed after the fact. Records are
// plain JSON on disk; an export writer produces a gzip archive.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("history record not found")

// DefaultMaxRecords caps the persisted log; the oldest records are dropped
// first.
const DefaultMaxRecords = 500

// Record is one stored request/result pair.
type Record struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	CreatedAt time.Time       `json:"created_at"`
	Request   json.RawMessage `json:"request"`
	Result    json.RawMessage `json:"result"`
}

// Store appends and reads history records from a single JSON file.
type Store struct {
	path string
	max  int

	mu sync.Mutex
}

// NewStore creates a history store persisting to path.
func NewStore(path string) *Store {
	return &Store{path: path, max: DefaultMaxRecords}
}

// Append stores a new record for the given request and result, assigning a
// fresh id. Returns the stored record.
func (s *Store) Append(kind string, request, result any) (Record, error) {
	reqJSON, err := json.Marshal(request)
	if err != nil {
		return Record{}, fmt.Errorf("encoding request: %w", err)
	}
	resJSON, err := json.Marshal(result)
	if err != nil {
		return Record{}, fmt.Errorf("encoding result: %w", err)
	}

	rec := Record{
		ID:        uuid.NewString(),
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
		Request:   reqJSON,
		Result:    resJSON,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readLocked()
	if err != nil {
		return Record{}, err
	}
	records = append(records, rec)
	if len(records) > s.max {
		records = records[len(records)-s.max:]
	}
	if err := s.writeLocked(records); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// List returns all records, oldest first.
func (s *Store) List() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

// Find returns the record with the given id, or ErrNotFound.
func (s *Store) Find(id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readLocked()
	if err != nil {
		return Record{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return Record{}, fmt.Errorf("record %q: %w", id, ErrNotFound)
}

// ExportArchive writes all records as gzip-compressed JSON to w.
func (s *Store) ExportArchive(w io.Writer) error {
	s.mu.Lock()
	records, err := s.readLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	gz := gzip.NewWriter(w)
	if err := json.NewEncoder(gz).Encode(records); err != nil {
		gz.Close() //nolint:errcheck
		return fmt.Errorf("encoding archive: %w", err)
	}
	return gz.Close()
}

func (s *Store) readLocked() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history %s: %w", s.path, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing history %s: %w", s.path, err)
	}
	return records, nil
}

func (s *Store) writeLocked(records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating history directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing history %s: %w", s.path, err)
	}
	return nil
}
