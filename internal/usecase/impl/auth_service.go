// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "preesh/internal/delivery/context"
	"preesh/internal/domain/entity"
	domainerrors "preesh/internal/domain/errors"
	"preesh/internal/domain/repository"
	"preesh/internal/domain/service"
	"preesh/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	beastRepo    repository.BeastRepository
	appleAuth    service.AppleAuthService
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	beastRepo repository.BeastRepository,
	appleAuth service.AppleAuthService,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		beastRepo:    beastRepo,
		appleAuth:    appleAuth,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AppleSignIn handles login or lazy registration via Sign in with Apple.
func (srv *authService) AppleSignIn(ctx context.Context, input *usecase.AppleSignInInput) (*usecase.AppleSignInOutput, error) {
	srv.log(ctx).Info("Handling Apple sign-in")

	identity, err := srv.verifiedIdentity(ctx, input)
	if err != nil {
		return nil, err
	}

	beast, err := srv.resolveOrCreate(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve beast for Apple subject")
	}

	token, err := srv.tokenService.IssueSessionToken(beast.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.AppleSignInOutput{
		Token: token,
		Beast: beast,
	}, nil
}

// verifiedIdentity turns the sign-in input into a verified external identity.
// An authorization code is exchanged first; either path ends in full
// verification of the identity token.
func (srv *authService) verifiedIdentity(ctx context.Context, input *usecase.AppleSignInInput) (*service.AppleIdentity, error) {
	idToken := input.IdentityToken

	if idToken == "" {
		if input.Code == "" {
			return nil, domainerrors.NewBadRequest("Missing identityToken or code")
		}

		bundle, err := srv.appleAuth.ExchangeAuthorizationCode(ctx, input.Code)
		if err != nil {
			srv.log(ctx).Warn("Apple code exchange failed", slog.Any("error", err))

			return nil, domainerrors.ErrExchangeFailed.WrapMessage(err.Error())
		}
		idToken = bundle.IdentityToken
	}

	identity, err := srv.appleAuth.VerifyIdentityToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Apple identity token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidAssertion.WrapMessage(err.Error())
	}
	if identity.Subject == "" {
		return nil, domainerrors.ErrInvalidAssertion
	}

	return identity, nil
}

// resolveOrCreate maps a verified subject to exactly one beast, creating it
// on first sign-in. Two concurrent first sign-ins can both observe "not
// found" and race on the create; the unique constraint on the subject id is
// the backstop, and the losing writer retries as a plain lookup instead of
// surfacing a conflict.
func (srv *authService) resolveOrCreate(ctx context.Context, identity *service.AppleIdentity) (*entity.Beast, error) {
	beast, err := srv.beastRepo.FindByAppleID(ctx, identity.Subject)
	if err == nil {
		return beast, nil
	}
	if !errors.Is(err, repository.ErrBeastNotFound) {
		return nil, err
	}

	srv.log(ctx).Info("Apple subject not seen before, creating beast",
		slog.String("subject", identity.Subject))

	email := identity.Email
	if email == "" {
		// Apple only returns the email on first authorization.
		email = identity.Subject + "@privaterelay.appleid.com"
	}

	subject := identity.Subject
	newBeast := &entity.Beast{
		GamerTag: generateGamerTag(),
		Email:    email,
		AppleID:  &subject,
	}

	createErr := srv.beastRepo.Create(ctx, newBeast)
	if createErr == nil {
		return newBeast, nil
	}

	if errors.Is(createErr, repository.ErrDuplicateBeast) {
		// Lost the first-sign-in race; the winner's row is there now.
		beast, err = srv.beastRepo.FindByAppleID(ctx, identity.Subject)
		if err == nil {
			return beast, nil
		}
	}

	return nil, createErr
}

// generateGamerTag produces a unique-enough display handle for beasts created
// through Apple sign-in, where no handle is available from the provider.
func generateGamerTag() string {
	return "beast_" + uuid.NewString()[:8]
}
