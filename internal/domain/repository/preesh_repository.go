package repository

import (
	"context"
	"errors"

	"preesh/internal/domain/entity"
)

// ErrPreeshNotFound is returned when a preesh is not found.
var ErrPreeshNotFound = errors.New("preesh not found")

// PreeshFeed is a single page of preeshes together with the total count.
type PreeshFeed struct {
	Preeshes   []*entity.Preesh
	TotalCount int64
}

// PreeshRepository defines the standard operations for preesh persistence.
type PreeshRepository interface {
	// Create persists a new preesh and fills in its generated ID and timestamp.
	Create(ctx context.Context, preesh *entity.Preesh) error

	// FindByID retrieves a single preesh with its author and receiver loaded.
	FindByID(ctx context.Context, id int64) (*entity.Preesh, error)

	// Feed returns one page of preeshes, newest first.
	Feed(ctx context.Context, page, pageSize int) (*PreeshFeed, error)

	// FeedForBeast returns one page of preeshes authored by or sent to the
	// given beast, newest first.
	FeedForBeast(ctx context.Context, beastID int64, page, pageSize int) (*PreeshFeed, error)
}
