package postgres

import (
	"context"
	"log/slog"

	"preesh/internal/domain/entity"
	"preesh/internal/domain/repository"
	"preesh/internal/errors"
	"preesh/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// preeshRepository implements the repository.PreeshRepository interface.
type preeshRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPreeshRepository is the constructor for preeshRepository.
func NewPreeshRepository(db *gorm.DB, logger *slog.Logger) repository.PreeshRepository {
	return &preeshRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new preesh.
func (repo *preeshRepository) Create(ctx context.Context, preesh *entity.Preesh) error {
	preeshM := fromPreeshDomain(preesh)

	if err := repo.db.WithContext(ctx).Create(preeshM).Error; err != nil {
		return translateError(repo.logger, err, "Preesh")
	}

	preesh.ID = preeshM.ID
	preesh.CreatedAt = preeshM.CreatedAt

	return nil
}

// FindByID retrieves a single preesh with author and receiver preloaded.
func (repo *preeshRepository) FindByID(ctx context.Context, id int64) (*entity.Preesh, error) {
	var preeshM model.PreeshModel

	err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Receiver").
		First(&preeshM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreeshNotFound
		}

		return nil, translateError(repo.logger, err, "Preesh")
	}

	return toPreeshDomain(&preeshM), nil
}

// Feed returns one page of preeshes, newest first, with the total count.
func (repo *preeshRepository) Feed(ctx context.Context, page, pageSize int) (*repository.PreeshFeed, error) {
	return repo.feed(ctx, repo.db.WithContext(ctx).Model(&model.PreeshModel{}), page, pageSize)
}

// FeedForBeast returns one page of preeshes authored by or sent to a beast.
func (repo *preeshRepository) FeedForBeast(ctx context.Context, beastID int64, page, pageSize int) (*repository.PreeshFeed, error) {
	query := repo.db.WithContext(ctx).Model(&model.PreeshModel{}).
		Where("author_id = ? OR receiver_id = ?", beastID, beastID)

	return repo.feed(ctx, query, page, pageSize)
}

func (repo *preeshRepository) feed(_ context.Context, query *gorm.DB, page, pageSize int) (*repository.PreeshFeed, error) {
	// New session so the count and the page query don't share builder state.
	base := query.Session(&gorm.Session{})

	var totalCount int64
	if err := base.Count(&totalCount).Error; err != nil {
		return nil, translateError(repo.logger, err, "Preesh")
	}

	var preeshMs []model.PreeshModel
	err := base.
		Preload("Author").
		Preload("Receiver").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&preeshMs).Error
	if err != nil {
		return nil, translateError(repo.logger, err, "Preesh")
	}

	preeshes := make([]*entity.Preesh, 0, len(preeshMs))
	for i := range preeshMs {
		preeshes = append(preeshes, toPreeshDomain(&preeshMs[i]))
	}

	return &repository.PreeshFeed{
		Preeshes:   preeshes,
		TotalCount: totalCount,
	}, nil
}

// --- Mapper Functions ---

func toPreeshDomain(data *model.PreeshModel) *entity.Preesh {
	if data == nil {
		return nil
	}

	return &entity.Preesh{
		ID:         data.ID,
		Text:       data.Text,
		AuthorID:   data.AuthorID,
		ReceiverID: data.ReceiverID,
		Heaviness:  entity.Heaviness(data.Heaviness),
		Author:     toBeastDomain(data.Author),
		Receiver:   toBeastDomain(data.Receiver),
		CreatedAt:  data.CreatedAt,
	}
}

func fromPreeshDomain(data *entity.Preesh) *model.PreeshModel {
	if data == nil {
		return nil
	}

	return &model.PreeshModel{
		ID:         data.ID,
		Text:       data.Text,
		AuthorID:   data.AuthorID,
		ReceiverID: data.ReceiverID,
		Heaviness:  string(data.Heaviness),
	}
}
