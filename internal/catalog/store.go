package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Overlay is the persisted catalog overlay: user-defined models plus the
// identifiers currently selected for comparisons. The file lives alongside
// the workbench data directory as user_models.json.
type Overlay struct {
	CustomModels   map[string]ModelProfile `json:"custom_models"`
	SelectedModels []string                `json:"selected_models"`
}

// Snapshot is a published, immutable view of the active catalog state.
// In-flight computations hold a snapshot and are unaffected by later edits.
type Snapshot struct {
	Catalog  *Catalog
	Selected []string
}

// ValidateFunc checks raw overlay bytes before they are decoded. It returns
// human-readable problems; a non-empty slice rejects the overlay.
type ValidateFunc func(data []byte) []string

// Store owns the persisted overlay and the active catalog snapshot. A single
// mutex guards every load-merge-publish-persist sequence; readers get
// consistent snapshots through an atomic pointer and never block.
type Store struct {
	path     string
	logger   *slog.Logger
	validate ValidateFunc

	mu          sync.Mutex
	customs     map[string]ModelProfile
	customOrder []string
	selected    []string

	active atomic.Pointer[Snapshot]
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the store's logger.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// WithValidator sets the overlay validation hook applied on every load.
func WithValidator(fn ValidateFunc) StoreOption {
	return func(s *Store) { s.validate = fn }
}

// NewStore creates a store persisting to path. The store starts with the
// default catalog published; call Reload to pick up a persisted overlay.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:    path,
		logger:  slog.Default(),
		customs: make(map[string]ModelProfile),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.publishLocked()
	return s
}

// Path returns the overlay file path.
func (s *Store) Path() string { return s.path }

// Snapshot returns the currently published catalog snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.active.Load()
}

// Reload reads the persisted overlay, merges it with the defaults, and
// atomically republishes the result. A missing file resets to defaults.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadLocked()
}

func (s *Store) reloadLocked() error {
	overlay, err := s.readOverlay()
	if err != nil {
		return err
	}

	customs := make(map[string]ModelProfile, len(overlay.CustomModels))
	order := make([]string, 0, len(overlay.CustomModels))
	for key := range overlay.CustomModels {
		order = append(order, key)
	}
	// JSON object order is not preserved by decoding; sort for determinism.
	sort.Strings(order)
	for _, key := range order {
		p := overlay.CustomModels[key]
		p.Key = key
		if p.Name == "" {
			p.Name = key
		}
		customs[key] = p
	}

	s.customs = customs
	s.customOrder = order
	s.selected = overlay.SelectedModels
	s.publishLocked()
	return nil
}

func (s *Store) readOverlay() (*Overlay, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Overlay{CustomModels: map[string]ModelProfile{}}, nil
		}
		return nil, fmt.Errorf("reading overlay %s: %w", s.path, err)
	}

	if s.validate != nil {
		if problems := s.validate(data); len(problems) > 0 {
			return nil, fmt.Errorf("overlay %s failed validation: %v", s.path, problems)
		}
	}

	// Decode loosely first so partially-typed records get deterministic
	// defaults rather than zero values.
	var raw struct {
		CustomModels   map[string]map[string]any `json:"custom_models"`
		SelectedModels []string                  `json:"selected_models"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing overlay %s: %w", s.path, err)
	}

	overlay := &Overlay{
		CustomModels:   make(map[string]ModelProfile, len(raw.CustomModels)),
		SelectedModels: raw.SelectedModels,
	}
	for key, fields := range raw.CustomModels {
		profile, err := DecodeProfile(key, fields)
		if err != nil {
			return nil, err
		}
		overlay.CustomModels[key] = profile
	}
	return overlay, nil
}

// publishLocked rebuilds the merged catalog and swaps it in. Callers must
// hold mu (or be inside NewStore before the store escapes).
func (s *Store) publishLocked() {
	customs := make([]ModelProfile, 0, len(s.customOrder))
	for _, key := range s.customOrder {
		customs = append(customs, s.customs[key])
	}
	cat := Merge(customs)

	selected := make([]string, 0, len(s.selected))
	for _, id := range s.selected {
		if cat.Has(id) {
			selected = append(selected, id)
		}
	}
	if len(selected) == 0 {
		selected = DefaultKeys()
	}

	s.active.Store(&Snapshot{Catalog: cat, Selected: selected})
}

func (s *Store) persistLocked() error {
	overlay := Overlay{
		CustomModels:   s.customs,
		SelectedModels: s.Snapshot().Selected,
	}
	data, err := json.MarshalIndent(overlay, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding overlay: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating overlay directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing overlay %s: %w", s.path, err)
	}
	return nil
}

// AddCustom validates, keys, persists, and publishes a user-defined model.
// The key is derived from keyHint (or the display name) and deduplicated
// against every existing model. Returns the assigned key.
func (s *Store) AddCustom(keyHint string, profile ModelProfile) (string, error) {
	if profile.Name == "" {
		return "", errors.New("model name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reloadLocked(); err != nil {
		return "", err
	}

	base := Slugify(keyHint)
	if keyHint == "" {
		base = Slugify(profile.Name)
	}
	key := base
	cat := s.Snapshot().Catalog
	for suffix := 2; cat.Has(key); suffix++ {
		key = fmt.Sprintf("%s_%d", base, suffix)
	}

	profile.Key = key
	s.customs[key] = profile
	s.customOrder = append(s.customOrder, key)
	s.selected = append(s.Snapshot().Selected, key)
	s.publishLocked()

	if err := s.persistLocked(); err != nil {
		return "", err
	}
	s.logger.Info("custom model added", "key", key, "name", profile.Name)
	return key, nil
}

// SetSelected replaces the selected-model list, dropping unknown ids.
// An empty result falls back to the default model set.
func (s *Store) SetSelected(ids []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reloadLocked(); err != nil {
		return nil, err
	}

	cat := s.Snapshot().Catalog
	selected := make([]string, 0, len(ids))
	for _, id := range ids {
		if cat.Has(id) {
			selected = append(selected, id)
		}
	}
	if len(selected) == 0 {
		selected = DefaultKeys()
	}
	s.selected = selected
	s.publishLocked()

	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return s.Snapshot().Selected, nil
}

// Watch reloads the catalog when the overlay file changes on disk, until ctx
// is cancelled. External edits (hand-edited JSON, another process) become
// visible without restarting the server.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating overlay directory: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				s.logger.Warn("overlay reload failed", "error", err)
				continue
			}
			s.logger.Debug("catalog reloaded", "path", s.path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("overlay watch error", "error", err)
		}
	}
}
