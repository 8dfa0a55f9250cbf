package config

import (
	"strings"
	"sync"

	"github.com/resin-fmt/resin/pkg/errors"
	"github.com/resin-fmt/resin/pkg/logging"
)

// Store holds the committed process-wide options. It is lazily
// initialized by the global loader on first use and mutated only
// through SetOptions, which re-validates. The lock guards the
// merge/validate step only; it is never held across a rendering call.
type Store struct {
	mu        sync.RWMutex
	committed map[string]interface{}
	loaded    bool
	loadErrs  []string

	// widthCommitted is true when a layer above the built-in defaults
	// supplied a width. The auto-width probe only fills in when no
	// such layer exists.
	widthCommitted bool
}

// NewStore creates an empty, not-yet-loaded store. Most callers want
// Global; separate stores exist for tests and embedding.
func NewStore() *Store {
	return &Store{}
}

var global = NewStore()

// Global returns the process-wide store.
func Global() *Store { return global }

// ensureLoadedLocked runs the one-time global configuration load. The
// caller must hold the write lock. Loader errors are captured for the
// next resolution, never raised here.
func (s *Store) ensureLoadedLocked() {
	if s.loaded {
		return
	}
	merged, errs, widthSet := loadGlobal()
	s.committed = merged
	s.loadErrs = errs
	s.widthCommitted = widthSet
	s.loaded = true
	if len(errs) > 0 {
		logger := logging.GetLogger("config")
		logger.Warn().
			Strs("errors", errs).
			Msg("Global configuration loaded with errors")
	}
}

// Snapshot returns a deep copy of the committed options, loading the
// global configuration first if needed.
func (s *Store) Snapshot() map[string]interface{} {
	s.mu.Lock()
	s.ensureLoadedLocked()
	snap := CloneMap(s.committed)
	s.mu.Unlock()
	return snap
}

// LoadErrors returns captured global-load error messages.
func (s *Store) LoadErrors() []string {
	s.mu.Lock()
	s.ensureLoadedLocked()
	out := make([]string, len(s.loadErrs))
	copy(out, s.loadErrs)
	s.mu.Unlock()
	return out
}

// SetOptions validates opts against the schema and commits them into
// the store. The committed tree is replaced atomically: a failed
// validation leaves the previous options untouched.
func (s *Store) SetOptions(opts map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked()

	candidate := CloneMap(s.committed)
	MergeMaps(candidate, opts)
	styleSetWidth, errsList := ApplyStyles(candidate)
	errsList = append(errsList, Validate(candidate)...)
	if len(errsList) > 0 {
		return errors.Newf(errors.ErrConfigValid,
			"global configuration: %s", strings.Join(errsList, "; "))
	}

	s.committed = candidate
	if _, ok := opts["width"]; ok || styleSetWidth {
		s.widthCommitted = true
	}
	return nil
}

// WidthCommitted reports whether any layer above the built-in
// defaults supplied a width.
func (s *Store) WidthCommitted() bool {
	s.mu.Lock()
	s.ensureLoadedLocked()
	out := s.widthCommitted
	s.mu.Unlock()
	return out
}

// Reset discards committed options and load state so the next use
// reloads from scratch. Intended for tests.
func (s *Store) Reset() {
	s.mu.Lock()
	s.committed = nil
	s.loadErrs = nil
	s.loaded = false
	s.widthCommitted = false
	s.mu.Unlock()
}

// setLoadedForTest seeds the store with a fixed committed tree and
// load errors, bypassing the real loader.
func (s *Store) setLoadedForTest(committed map[string]interface{}, loadErrs []string, widthCommitted bool) {
	s.mu.Lock()
	s.committed = committed
	s.loadErrs = loadErrs
	s.widthCommitted = widthCommitted
	s.loaded = true
	s.mu.Unlock()
}
