// Package settings holds the draft buffer the admin console edits
// against before committing a save.
package settings

import (
	"context"
	"sort"
	"sync"

	"github.com/storeadmin/backend/internal/domain/shared"
)

// ErrDraftConflict is returned when a canonical update arrives while the
// draft holds unsaved edits. The caller decides whether to discard or
// keep editing; the session never merges silently.
var ErrDraftConflict = shared.NewDomainError("DRAFT_CONFLICT", "Draft has unsaved changes, refresh rejected")

// Cloneable is satisfied by aggregates that can produce an independent
// deep copy of themselves.
type Cloneable[T any] interface {
	Clone() T
}

// Persister commits a draft value to durable storage.
type Persister[T any] interface {
	Persist(ctx context.Context, value T) error
}

// PersistFunc adapts a function to the Persister interface.
type PersistFunc[T any] func(ctx context.Context, value T) error

// Persist calls f.
func (f PersistFunc[T]) Persist(ctx context.Context, value T) error {
	return f(ctx, value)
}

// DraftSession buffers edits to an aggregate. Dirtiness is an explicit
// set of modified field paths recorded by callers as they edit, not a
// deep comparison against the canonical snapshot: marking a path and
// then restoring the old value still counts as modified until the next
// save or discard.
type DraftSession[T Cloneable[T]] struct {
	mu        sync.Mutex
	canonical T
	draft     T
	modified  map[string]struct{}
	persister Persister[T]
}

// NewDraftSession opens a session over the canonical value.
func NewDraftSession[T Cloneable[T]](canonical T, persister Persister[T]) *DraftSession[T] {
	return &DraftSession[T]{
		canonical: canonical,
		draft:     canonical.Clone(),
		modified:  make(map[string]struct{}),
		persister: persister,
	}
}

// Draft returns the working copy. Callers mutate it directly and record
// each edit with MarkModified.
func (s *DraftSession[T]) Draft() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// MarkModified records that the named field path was edited.
func (s *DraftSession[T]) MarkModified(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modified[path] = struct{}{}
}

// IsDirty reports whether any field path has been marked since the last
// save or discard.
func (s *DraftSession[T]) IsDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.modified) > 0
}

// ModifiedPaths returns the recorded field paths in sorted order.
func (s *DraftSession[T]) ModifiedPaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := make([]string, 0, len(s.modified))
	for p := range s.modified {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Save persists the draft. On success the draft becomes the new
// canonical snapshot and the modified set is cleared; on failure the
// session is untouched and the caller may retry.
func (s *DraftSession[T]) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Persist(ctx, s.draft); err != nil {
		return err
	}
	s.canonical = s.draft
	s.draft = s.canonical.Clone()
	s.modified = make(map[string]struct{})
	return nil
}

// Discard drops all edits and restores the canonical snapshot.
func (s *DraftSession[T]) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = s.canonical.Clone()
	s.modified = make(map[string]struct{})
}

// Refresh replaces the canonical snapshot with an externally updated
// value. A dirty draft is never clobbered: the refresh is rejected with
// ErrDraftConflict and the caller must save or discard first.
func (s *DraftSession[T]) Refresh(updated T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.modified) > 0 {
		return ErrDraftConflict
	}
	s.canonical = updated
	s.draft = updated.Clone()
	return nil
}
