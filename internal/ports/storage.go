// Package ports defines the interfaces (contracts) that adapters must implement.
// Domain and app code depend only on these interfaces, never on concrete
// implementations.
package ports

import "errors"

// ErrSetNotFound is returned by PatternStore.LoadSet for an unknown name.
var ErrSetNotFound = errors.New("pattern set not found")

// PatternStore persists named pattern sets so a batch of patterns can be
// reused across invocations. Search results are never stored.
//
// Writes must be transactional: a crash mid-write must not corrupt
// previously committed sets.
type PatternStore interface {
	// SaveSet stores patterns under name, replacing any prior set.
	// Pattern order is preserved.
	SaveSet(name string, patterns []string) error

	// LoadSet returns the patterns saved under name, or ErrSetNotFound.
	LoadSet(name string) ([]string, error)

	// ListSets returns every saved set name in lexical order.
	ListSets() ([]string, error)

	// DeleteSet removes a set. Idempotent: deleting a missing set is not an error.
	DeleteSet(name string) error

	// Close releases the underlying database.
	Close() error
}
