package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"preesh/internal/delivery/http/validator"
	"preesh/internal/domain/entity"
	"preesh/internal/usecase"

	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newJSONContext builds an echo context with a JSON body and the production
// validator wired in.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

type fakeAuthUsecase struct {
	output *usecase.AppleSignInOutput
	err    error

	gotInput *usecase.AppleSignInInput
}

func (f *fakeAuthUsecase) AppleSignIn(ctx context.Context, input *usecase.AppleSignInInput) (*usecase.AppleSignInOutput, error) {
	f.gotInput = input

	return f.output, f.err
}

type fakeBeastUsecase struct {
	beast *entity.Beast
	err   error

	gotUpdateID int64
	gotUpdate   *usecase.UpdateBeastInput
}

func (f *fakeBeastUsecase) CreateBeast(ctx context.Context, input *usecase.CreateBeastInput) (*entity.Beast, error) {
	return f.beast, f.err
}

func (f *fakeBeastUsecase) GetBeast(ctx context.Context, id int64) (*entity.Beast, error) {
	return f.beast, f.err
}

func (f *fakeBeastUsecase) UpdateBeast(ctx context.Context, id int64, input *usecase.UpdateBeastInput) (*entity.Beast, error) {
	f.gotUpdateID = id
	f.gotUpdate = input

	return f.beast, f.err
}

type fakePreeshUsecase struct {
	preesh *entity.Preesh
	feed   *usecase.PreeshFeedOutput
	err    error

	gotAuthorID int64
	gotBeastID  int64
}

func (f *fakePreeshUsecase) CreatePreesh(ctx context.Context, authorID int64, input *usecase.CreatePreeshInput) (*entity.Preesh, error) {
	f.gotAuthorID = authorID

	return f.preesh, f.err
}

func (f *fakePreeshUsecase) GetPreesh(ctx context.Context, id int64) (*entity.Preesh, error) {
	return f.preesh, f.err
}

func (f *fakePreeshUsecase) GetFeed(ctx context.Context, page, pageSize int) (*usecase.PreeshFeedOutput, error) {
	return f.feed, f.err
}

func (f *fakePreeshUsecase) GetFeedForBeast(ctx context.Context, beastID int64, page, pageSize int) (*usecase.PreeshFeedOutput, error) {
	f.gotBeastID = beastID

	return f.feed, f.err
}
