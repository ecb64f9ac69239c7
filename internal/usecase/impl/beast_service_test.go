package impl

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"preesh/internal/domain/entity"
	domainerrors "preesh/internal/domain/errors"
	"preesh/internal/domain/repository"
	"preesh/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeastService_CreateBeast(t *testing.T) {
	repo := &fakeBeastRepo{
		createFn: func(ctx context.Context, beast *entity.Beast) error {
			beast.ID = 11

			return nil
		},
	}

	svc := NewBeastService(repo, newDiscardLogger())

	beast, err := svc.CreateBeast(context.Background(), &usecase.CreateBeastInput{
		GamerTag: "mighty_beast",
		Email:    "mighty@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), beast.ID)
	assert.Equal(t, "mighty_beast", beast.GamerTag)
	assert.Equal(t, "mighty@example.com", beast.Email)
	assert.Nil(t, beast.AppleID)
}

func TestBeastService_CreateBeast_DuplicateSurfaces(t *testing.T) {
	repo := &fakeBeastRepo{
		createFn: func(ctx context.Context, beast *entity.Beast) error {
			return errors.Join(repository.ErrDuplicateBeast, domainerrors.NewBadRequest("gamerTag already exists"))
		},
	}

	svc := NewBeastService(repo, newDiscardLogger())

	_, err := svc.CreateBeast(context.Background(), &usecase.CreateBeastInput{
		GamerTag: "taken",
		Email:    "taken@example.com",
	})
	require.Error(t, err)

	appErr, ok := domainerrors.FromError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "gamerTag already exists", appErr.Message())
}

func TestBeastService_GetBeast(t *testing.T) {
	existing := &entity.Beast{ID: 5, GamerTag: "found_beast"}
	repo := &fakeBeastRepo{
		findByIDFn: func(ctx context.Context, id int64) (*entity.Beast, error) {
			assert.Equal(t, int64(5), id)

			return existing, nil
		},
	}

	svc := NewBeastService(repo, newDiscardLogger())

	beast, err := svc.GetBeast(context.Background(), 5)
	require.NoError(t, err)
	assert.Same(t, existing, beast)
}

func TestBeastService_GetBeast_NotFound(t *testing.T) {
	repo := &fakeBeastRepo{
		findByIDFn: func(ctx context.Context, id int64) (*entity.Beast, error) {
			return nil, repository.ErrBeastNotFound
		},
	}

	svc := NewBeastService(repo, newDiscardLogger())

	_, err := svc.GetBeast(context.Background(), 404)
	require.Error(t, err)

	appErr, ok := domainerrors.FromError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "Beast not found", appErr.Message())
}

func TestBeastService_UpdateBeast(t *testing.T) {
	newTag := "renamed_beast"
	repo := &fakeBeastRepo{
		updateFn: func(ctx context.Context, id int64, update entity.BeastUpdate) (*entity.Beast, error) {
			require.NotNil(t, update.GamerTag)
			assert.Equal(t, newTag, *update.GamerTag)
			assert.Nil(t, update.Email)

			return &entity.Beast{ID: id, GamerTag: *update.GamerTag}, nil
		},
	}

	svc := NewBeastService(repo, newDiscardLogger())

	beast, err := svc.UpdateBeast(context.Background(), 5, &usecase.UpdateBeastInput{GamerTag: &newTag})
	require.NoError(t, err)
	assert.Equal(t, newTag, beast.GamerTag)
}

func TestBeastService_UpdateBeast_Empty(t *testing.T) {
	svc := NewBeastService(&fakeBeastRepo{}, newDiscardLogger())

	_, err := svc.UpdateBeast(context.Background(), 5, &usecase.UpdateBeastInput{})
	require.Error(t, err)

	appErr, ok := domainerrors.FromError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}
