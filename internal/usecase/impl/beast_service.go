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

// beastService implements the BeastUsecase interface.
type beastService struct {
	beastRepo repository.BeastRepository
	logger    *slog.Logger
}

// NewBeastService is the constructor for beastService.
func NewBeastService(beastRepo repository.BeastRepository, logger *slog.Logger) usecase.BeastUsecase {
	return &beastService{
		beastRepo: beastRepo,
		logger:    logger,
	}
}

func (srv *beastService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBeast creates a beast with an explicit gamer tag and email.
func (srv *beastService) CreateBeast(ctx context.Context, input *usecase.CreateBeastInput) (*entity.Beast, error) {
	beast := &entity.Beast{
		GamerTag: input.GamerTag,
		Email:    input.Email,
	}

	if err := srv.beastRepo.Create(ctx, beast); err != nil {
		srv.log(ctx).Warn("Failed to create beast", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Created beast", slog.Int64("beastID", beast.ID))

	return beast, nil
}

// GetBeast retrieves a beast by id.
func (srv *beastService) GetBeast(ctx context.Context, id int64) (*entity.Beast, error) {
	beast, err := srv.beastRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBeastNotFound) {
			return nil, domainerrors.ErrBeastNotFound
		}

		return nil, errors.Wrap(err, "failed to find beast")
	}

	return beast, nil
}

// UpdateBeast applies a partial update to a beast. An update carrying neither
// field is rejected early with BadRequest rather than passed to storage as a
// silent no-op.
func (srv *beastService) UpdateBeast(ctx context.Context, id int64, input *usecase.UpdateBeastInput) (*entity.Beast, error) {
	update := entity.BeastUpdate{
		GamerTag: input.GamerTag,
		Email:    input.Email,
	}
	if update.Empty() {
		return nil, domainerrors.ErrEmptyUpdate
	}

	beast, err := srv.beastRepo.Update(ctx, id, update)
	if err != nil {
		srv.log(ctx).Warn("Failed to update beast", slog.Int64("beastID", id), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Updated beast", slog.Int64("beastID", id))

	return beast, nil
}
