package usecase

import (
	"context"

	"preesh/internal/domain/entity"
)

// CreatePreeshInput is the request to create a preesh. The author is always
// the authenticated beast.
type CreatePreeshInput struct {
	Text       string `json:"text" validate:"required"`
	ReceiverID int64  `json:"receiverId" validate:"required"`
	Heaviness  string `json:"heaviness" validate:"required"`
}

// PreeshFeedOutput is one page of the preesh feed.
type PreeshFeedOutput struct {
	Preeshes   []*entity.Preesh `json:"preeshes"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
}

// PreeshUsecase handles preesh operations.
type PreeshUsecase interface {
	// CreatePreesh creates a preesh authored by the authenticated beast.
	CreatePreesh(ctx context.Context, authorID int64, input *CreatePreeshInput) (*entity.Preesh, error)

	// GetPreesh retrieves a preesh by id.
	GetPreesh(ctx context.Context, id int64) (*entity.Preesh, error)

	// GetFeed returns one page of all preeshes, newest first.
	GetFeed(ctx context.Context, page, pageSize int) (*PreeshFeedOutput, error)

	// GetFeedForBeast returns one page of preeshes involving a beast.
	GetFeedForBeast(ctx context.Context, beastID int64, page, pageSize int) (*PreeshFeedOutput, error)
}
