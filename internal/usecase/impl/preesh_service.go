package impl

import (
	"context"
	"log/slog"

	deliverycontext "preesh/internal/delivery/context"
	"preesh/internal/domain/entity"
	domainerrors "preesh/internal/domain/errors"
	"preesh/internal/domain/repository"
	"preesh/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultFeedPageSize = 20
	maxFeedPageSize     = 100
)

// preeshService implements the PreeshUsecase interface.
type preeshService struct {
	preeshRepo repository.PreeshRepository
	logger     *slog.Logger
}

// NewPreeshService is the constructor for preeshService.
func NewPreeshService(preeshRepo repository.PreeshRepository, logger *slog.Logger) usecase.PreeshUsecase {
	return &preeshService{
		preeshRepo: preeshRepo,
		logger:     logger,
	}
}

func (srv *preeshService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePreesh creates a preesh authored by the authenticated beast. A
// missing receiver surfaces through the storage foreign key, translated to
// NotFound.
func (srv *preeshService) CreatePreesh(ctx context.Context, authorID int64, input *usecase.CreatePreeshInput) (*entity.Preesh, error) {
	heaviness := entity.Heaviness(input.Heaviness)
	if !heaviness.Valid() {
		return nil, domainerrors.NewBadRequest("Unknown heaviness level: " + input.Heaviness)
	}

	preesh := &entity.Preesh{
		Text:       input.Text,
		AuthorID:   authorID,
		ReceiverID: input.ReceiverID,
		Heaviness:  heaviness,
	}

	if err := srv.preeshRepo.Create(ctx, preesh); err != nil {
		srv.log(ctx).Warn("Failed to create preesh", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Created preesh",
		slog.Int64("preeshID", preesh.ID),
		slog.Int64("authorID", authorID))

	return preesh, nil
}

// GetPreesh retrieves a preesh by id.
func (srv *preeshService) GetPreesh(ctx context.Context, id int64) (*entity.Preesh, error) {
	preesh, err := srv.preeshRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPreeshNotFound) {
			return nil, domainerrors.ErrPreeshNotFound
		}

		return nil, errors.Wrap(err, "failed to find preesh")
	}

	return preesh, nil
}

// GetFeed returns one page of all preeshes, newest first.
func (srv *preeshService) GetFeed(ctx context.Context, page, pageSize int) (*usecase.PreeshFeedOutput, error) {
	page, pageSize = normalizePage(page, pageSize)

	feed, err := srv.preeshRepo.Feed(ctx, page, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preesh feed")
	}

	return toFeedOutput(feed, page, pageSize), nil
}

// GetFeedForBeast returns one page of preeshes involving a beast.
func (srv *preeshService) GetFeedForBeast(ctx context.Context, beastID int64, page, pageSize int) (*usecase.PreeshFeedOutput, error) {
	page, pageSize = normalizePage(page, pageSize)

	feed, err := srv.preeshRepo.FeedForBeast(ctx, beastID, page, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preesh feed for beast")
	}

	return toFeedOutput(feed, page, pageSize), nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultFeedPageSize
	}
	if pageSize > maxFeedPageSize {
		pageSize = maxFeedPageSize
	}

	return page, pageSize
}

func toFeedOutput(feed *repository.PreeshFeed, page, pageSize int) *usecase.PreeshFeedOutput {
	return &usecase.PreeshFeedOutput{
		Preeshes:   feed.Preeshes,
		TotalCount: feed.TotalCount,
		Page:       page,
		PageSize:   pageSize,
	}
}
