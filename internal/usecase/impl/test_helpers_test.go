package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"preesh/internal/domain/entity"
	"preesh/internal/domain/repository"
	"preesh/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeBeastRepo is a function-backed BeastRepository test double. Unset
// methods fail loudly through the nil dereference.
type fakeBeastRepo struct {
	createFn        func(ctx context.Context, beast *entity.Beast) error
	findByIDFn      func(ctx context.Context, id int64) (*entity.Beast, error)
	findByAppleIDFn func(ctx context.Context, appleID string) (*entity.Beast, error)
	updateFn        func(ctx context.Context, id int64, update entity.BeastUpdate) (*entity.Beast, error)

	createCalls int
}

func (f *fakeBeastRepo) Create(ctx context.Context, beast *entity.Beast) error {
	f.createCalls++

	return f.createFn(ctx, beast)
}

func (f *fakeBeastRepo) FindByID(ctx context.Context, id int64) (*entity.Beast, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeBeastRepo) FindByAppleID(ctx context.Context, appleID string) (*entity.Beast, error) {
	return f.findByAppleIDFn(ctx, appleID)
}

func (f *fakeBeastRepo) Update(ctx context.Context, id int64, update entity.BeastUpdate) (*entity.Beast, error) {
	return f.updateFn(ctx, id, update)
}

// fakeAppleAuth is a function-backed AppleAuthService test double.
type fakeAppleAuth struct {
	verifyFn   func(ctx context.Context, idToken string) (*service.AppleIdentity, error)
	exchangeFn func(ctx context.Context, code string) (*service.AppleTokenBundle, error)
}

func (f *fakeAppleAuth) VerifyIdentityToken(ctx context.Context, idToken string) (*service.AppleIdentity, error) {
	return f.verifyFn(ctx, idToken)
}

func (f *fakeAppleAuth) ExchangeAuthorizationCode(ctx context.Context, code string) (*service.AppleTokenBundle, error) {
	return f.exchangeFn(ctx, code)
}

// fakeTokenService mints predictable tokens for assertions.
type fakeTokenService struct {
	issueErr error
}

func (f *fakeTokenService) IssueSessionToken(beastID int64) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}

	return "session-token", nil
}

func (f *fakeTokenService) IssueShortLivedToken(beastID int64) (string, error) {
	return "short-lived-token", nil
}

func (f *fakeTokenService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	return &service.SessionClaims{BeastID: 1}, nil
}

func (f *fakeTokenService) SessionTokenDuration() time.Duration {
	return 7 * 24 * time.Hour
}

// fakePreeshRepo is a function-backed PreeshRepository test double.
type fakePreeshRepo struct {
	createFn       func(ctx context.Context, preesh *entity.Preesh) error
	findByIDFn     func(ctx context.Context, id int64) (*entity.Preesh, error)
	feedFn         func(ctx context.Context, page, pageSize int) (*repository.PreeshFeed, error)
	feedForBeastFn func(ctx context.Context, beastID int64, page, pageSize int) (*repository.PreeshFeed, error)
}

func (f *fakePreeshRepo) Create(ctx context.Context, preesh *entity.Preesh) error {
	return f.createFn(ctx, preesh)
}

func (f *fakePreeshRepo) FindByID(ctx context.Context, id int64) (*entity.Preesh, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakePreeshRepo) Feed(ctx context.Context, page, pageSize int) (*repository.PreeshFeed, error) {
	return f.feedFn(ctx, page, pageSize)
}

func (f *fakePreeshRepo) FeedForBeast(ctx context.Context, beastID int64, page, pageSize int) (*repository.PreeshFeed, error) {
	return f.feedForBeastFn(ctx, beastID, page, pageSize)
}
