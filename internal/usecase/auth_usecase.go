// Package usecase defines the application-level contracts and their
// input/output DTOs. Implementations live in usecase/impl.
package usecase

import (
	"context"

	"preesh/internal/domain/entity"
)

// AppleSignInInput is the sign-in request body. Exactly one of IdentityToken
// or Code must be supplied; Code is exchanged with the provider first.
type AppleSignInInput struct {
	IdentityToken string `json:"identityToken"`
	Code          string `json:"code"`
}

// AppleSignInOutput carries the minted session credential and the resolved
// beast back to the client.
type AppleSignInOutput struct {
	Token string        `json:"token"`
	Beast *entity.Beast `json:"beast"`
}

// AuthUsecase handles identity verification and session issuance.
type AuthUsecase interface {
	// AppleSignIn exchanges a third-party identity assertion (or an
	// authorization code) for a session credential, resolving or creating the
	// internal account for the verified subject.
	AppleSignIn(ctx context.Context, input *AppleSignInInput) (*AppleSignInOutput, error)
}
