package garden

import (
	"context"
	"errors"
)

// Store errors.
var (
	ErrUnknownGarden = errors.New("unknown garden")
	ErrGardenExists  = errors.New("garden already exists")
)

// Store defines the persistence interface for gardens. Implementations
// provide last-write-wins, replace-whole-document semantics: Put always
// stores the given garden verbatim.
type Store interface {
	// Create makes a new empty garden with the given dimensions.
	Create(ctx context.Context, name string, width, height int) (*Garden, error)

	// Get retrieves a garden by name.
	// Returns ErrUnknownGarden if no garden has that name.
	Get(ctx context.Context, name string) (*Garden, error)

	// List returns the names of all stored gardens.
	List(ctx context.Context) ([]string, error)

	// Put replaces the stored garden document with g.
	Put(ctx context.Context, g *Garden) error

	// Delete removes a garden by name.
	// Returns ErrUnknownGarden if no garden has that name.
	Delete(ctx context.Context, name string) error

	// Close releases any resources held by the store.
	Close() error
}
