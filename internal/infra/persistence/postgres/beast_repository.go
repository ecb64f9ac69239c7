package postgres

import (
	"context"
	"log/slog"

	"preesh/internal/domain/entity"
	domainerrors "preesh/internal/domain/errors"
	"preesh/internal/domain/repository"
	"preesh/internal/errors"
	"preesh/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// beastRepository implements the repository.BeastRepository interface.
type beastRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewBeastRepository is the constructor for beastRepository.
func NewBeastRepository(db *gorm.DB, logger *slog.Logger) repository.BeastRepository {
	return &beastRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new beast. A uniqueness collision yields an error that
// both matches repository.ErrDuplicateBeast (for the resolver's retry path)
// and carries the translated domain error naming the conflicting field.
func (repo *beastRepository) Create(ctx context.Context, beast *entity.Beast) error {
	beastM := fromBeastDomain(beast)

	if err := repo.db.WithContext(ctx).Create(beastM).Error; err != nil {
		translated := translateError(repo.logger, err, "Beast")
		if appErr, ok := domainerrors.FromError(translated); ok && appErr.ErrorCode() == "BAD_REQUEST" {
			return errors.Join(repository.ErrDuplicateBeast, translated)
		}

		return translated
	}

	beast.ID = beastM.ID
	beast.CreatedAt = beastM.CreatedAt
	beast.UpdatedAt = beastM.UpdatedAt

	return nil
}

// FindByID retrieves a single beast by its numeric ID.
func (repo *beastRepository) FindByID(ctx context.Context, id int64) (*entity.Beast, error) {
	var beastM model.BeastModel

	err := repo.db.WithContext(ctx).First(&beastM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBeastNotFound
		}

		return nil, translateError(repo.logger, err, "Beast")
	}

	return toBeastDomain(&beastM), nil
}

// FindByAppleID retrieves a single beast by its Apple subject identifier.
func (repo *beastRepository) FindByAppleID(ctx context.Context, appleID string) (*entity.Beast, error) {
	var beastM model.BeastModel

	err := repo.db.WithContext(ctx).Where("apple_id = ?", appleID).First(&beastM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBeastNotFound
		}

		return nil, translateError(repo.logger, err, "Beast")
	}

	return toBeastDomain(&beastM), nil
}

// Update applies the supplied partial field set to an existing beast. The row
// is loaded first so an absent id surfaces as NotFound rather than a silent
// zero-row update.
func (repo *beastRepository) Update(ctx context.Context, id int64, update entity.BeastUpdate) (*entity.Beast, error) {
	var beastM model.BeastModel

	if err := repo.db.WithContext(ctx).First(&beastM, id).Error; err != nil {
		return nil, translateError(repo.logger, err, "Beast")
	}

	fields := map[string]any{}
	if update.GamerTag != nil {
		fields["gamer_tag"] = *update.GamerTag
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}

	if err := repo.db.WithContext(ctx).Model(&beastM).Updates(fields).Error; err != nil {
		return nil, translateError(repo.logger, err, "Beast")
	}

	return toBeastDomain(&beastM), nil
}

// --- Mapper Functions ---

// toBeastDomain converts a GORM BeastModel to a domain Beast entity.
func toBeastDomain(data *model.BeastModel) *entity.Beast {
	if data == nil {
		return nil
	}

	return &entity.Beast{
		ID:        data.ID,
		GamerTag:  data.GamerTag,
		Email:     data.Email,
		AppleID:   data.AppleID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBeastDomain converts a domain Beast entity to a GORM BeastModel.
func fromBeastDomain(data *entity.Beast) *model.BeastModel {
	if data == nil {
		return nil
	}

	return &model.BeastModel{
		ID:       data.ID,
		GamerTag: data.GamerTag,
		Email:    data.Email,
		AppleID:  data.AppleID,
	}
}
