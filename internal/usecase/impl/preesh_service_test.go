package impl

import (
	"context"
	"net/http"
	"testing"

	"preesh/internal/domain/entity"
	domainerrors "preesh/internal/domain/errors"
	"preesh/internal/domain/repository"
	"preesh/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreeshService_CreatePreesh(t *testing.T) {
	repo := &fakePreeshRepo{
		createFn: func(ctx context.Context, preesh *entity.Preesh) error {
			preesh.ID = 1

			return nil
		},
	}

	svc := NewPreeshService(repo, newDiscardLogger())

	preesh, err := svc.CreatePreesh(context.Background(), 42, &usecase.CreatePreeshInput{
		Text:       "much preesh for the carry",
		ReceiverID: 7,
		Heaviness:  "heavy",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), preesh.AuthorID)
	assert.Equal(t, int64(7), preesh.ReceiverID)
	assert.Equal(t, entity.HeavinessHeavy, preesh.Heaviness)
}

func TestPreeshService_CreatePreesh_UnknownHeaviness(t *testing.T) {
	svc := NewPreeshService(&fakePreeshRepo{}, newDiscardLogger())

	_, err := svc.CreatePreesh(context.Background(), 42, &usecase.CreatePreeshInput{
		Text:       "text",
		ReceiverID: 7,
		Heaviness:  "crushing",
	})
	require.Error(t, err)

	appErr, ok := domainerrors.FromError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Contains(t, appErr.Message(), "crushing")
}

func TestPreeshService_GetPreesh_NotFound(t *testing.T) {
	repo := &fakePreeshRepo{
		findByIDFn: func(ctx context.Context, id int64) (*entity.Preesh, error) {
			return nil, repository.ErrPreeshNotFound
		},
	}

	svc := NewPreeshService(repo, newDiscardLogger())

	_, err := svc.GetPreesh(context.Background(), 404)
	require.Error(t, err)

	appErr, ok := domainerrors.FromError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "Preesh not found", appErr.Message())
}

func TestPreeshService_GetFeed_Defaults(t *testing.T) {
	var gotPage, gotPageSize int
	repo := &fakePreeshRepo{
		feedFn: func(ctx context.Context, page, pageSize int) (*repository.PreeshFeed, error) {
			gotPage, gotPageSize = page, pageSize

			return &repository.PreeshFeed{TotalCount: 0}, nil
		},
	}

	svc := NewPreeshService(repo, newDiscardLogger())

	feed, err := svc.GetFeed(context.Background(), 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, gotPage)
	assert.Equal(t, defaultFeedPageSize, gotPageSize)
	assert.Equal(t, 1, feed.Page)
	assert.Equal(t, defaultFeedPageSize, feed.PageSize)
}

func TestPreeshService_GetFeed_CapsPageSize(t *testing.T) {
	var gotPageSize int
	repo := &fakePreeshRepo{
		feedFn: func(ctx context.Context, page, pageSize int) (*repository.PreeshFeed, error) {
			gotPageSize = pageSize

			return &repository.PreeshFeed{}, nil
		},
	}

	svc := NewPreeshService(repo, newDiscardLogger())

	_, err := svc.GetFeed(context.Background(), 1, 5000)
	require.NoError(t, err)
	assert.Equal(t, maxFeedPageSize, gotPageSize)
}

func TestPreeshService_GetFeedForBeast(t *testing.T) {
	preeshes := []*entity.Preesh{{ID: 1, AuthorID: 3}, {ID: 2, ReceiverID: 3}}
	repo := &fakePreeshRepo{
		feedForBeastFn: func(ctx context.Context, beastID int64, page, pageSize int) (*repository.PreeshFeed, error) {
			assert.Equal(t, int64(3), beastID)

			return &repository.PreeshFeed{Preeshes: preeshes, TotalCount: 2}, nil
		},
	}

	svc := NewPreeshService(repo, newDiscardLogger())

	feed, err := svc.GetFeedForBeast(context.Background(), 3, 1, 20)
	require.NoError(t, err)

	assert.Equal(t, int64(2), feed.TotalCount)
	assert.Len(t, feed.Preeshes, 2)
}
