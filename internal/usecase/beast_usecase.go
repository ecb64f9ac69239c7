package usecase

import (
	"context"

	"preesh/internal/domain/entity"
)

// CreateBeastInput is the request to create a beast directly.
type CreateBeastInput struct {
	GamerTag string `json:"gamerTag" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// UpdateBeastInput is the partial update request. Nil fields stay unchanged;
// supplying neither field is a caller error.
type UpdateBeastInput struct {
	GamerTag *string `json:"gamerTag" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// BeastUsecase handles beast account operations.
type BeastUsecase interface {
	// CreateBeast creates a beast with an explicit gamer tag and email.
	CreateBeast(ctx context.Context, input *CreateBeastInput) (*entity.Beast, error)

	// GetBeast retrieves a beast by id.
	GetBeast(ctx context.Context, id int64) (*entity.Beast, error)

	// UpdateBeast applies a partial update. Ownership is checked at the
	// handler boundary, not here.
	UpdateBeast(ctx context.Context, id int64, input *UpdateBeastInput) (*entity.Beast, error)
}
