// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"preesh/internal/domain/entity"
)

// ErrBeastNotFound is a domain-specific error returned when a beast is not found.
var ErrBeastNotFound = errors.New("beast not found")

// ErrDuplicateBeast is returned when a create or update collides with a
// uniqueness constraint on gamer tag, email, or Apple subject id. The losing
// writer of a concurrent first-sign-in race observes this and retries as a
// plain lookup.
var ErrDuplicateBeast = errors.New("beast already exists")

// BeastRepository defines the standard operations for beast persistence.
// The application layer depends on this interface, never on the concrete
// implementation, so tests can substitute an in-memory fake.
type BeastRepository interface {
	// Create persists a new beast and fills in its generated ID and timestamps.
	Create(ctx context.Context, beast *entity.Beast) error

	// FindByID retrieves a single beast by its numeric ID.
	FindByID(ctx context.Context, id int64) (*entity.Beast, error)

	// FindByAppleID retrieves a single beast by its Apple subject identifier.
	FindByAppleID(ctx context.Context, appleID string) (*entity.Beast, error)

	// Update applies the supplied partial field set to an existing beast and
	// returns the updated record.
	Update(ctx context.Context, id int64, update entity.BeastUpdate) (*entity.Beast, error)
}
