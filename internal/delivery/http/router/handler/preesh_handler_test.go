package handler

import (
	"net/http"
	"testing"

	"preesh/internal/delivery/http/middleware"
	"preesh/internal/domain/entity"
	domainerrors "preesh/internal/domain/errors"
	"preesh/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreeshHandler_CreatePreesh(t *testing.T) {
	uc := &fakePreeshUsecase{preesh: &entity.Preesh{ID: 1, AuthorID: 42, ReceiverID: 7}}
	h := NewPreeshHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodPost, "/preeshes",
		`{"text":"much preesh","receiverId":7,"heaviness":"heavy"}`)
	c.Set(middleware.KeyBeastID, int64(42))

	require.NoError(t, h.CreatePreesh(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(42), uc.gotAuthorID)
}

func TestPreeshHandler_CreatePreesh_Unauthenticated(t *testing.T) {
	h := NewPreeshHandler(&fakePreeshUsecase{}, newDiscardLogger())

	c, _ := newJSONContext(http.MethodPost, "/preeshes",
		`{"text":"much preesh","receiverId":7,"heaviness":"heavy"}`)

	err := h.CreatePreesh(c)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}

func TestPreeshHandler_CreatePreesh_MissingText(t *testing.T) {
	h := NewPreeshHandler(&fakePreeshUsecase{}, newDiscardLogger())

	c, _ := newJSONContext(http.MethodPost, "/preeshes", `{"receiverId":7,"heaviness":"heavy"}`)
	c.Set(middleware.KeyBeastID, int64(42))

	assert.Error(t, h.CreatePreesh(c))
}

func TestPreeshHandler_GetPreesh(t *testing.T) {
	uc := &fakePreeshUsecase{preesh: &entity.Preesh{ID: 3, Text: "nice clutch"}}
	h := NewPreeshHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodGet, "/preeshes/3", "")
	setPathID(c, "3")

	require.NoError(t, h.GetPreesh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "nice clutch")
}

func TestPreeshHandler_GetFeed(t *testing.T) {
	uc := &fakePreeshUsecase{feed: &usecase.PreeshFeedOutput{TotalCount: 2, Page: 1, PageSize: 20}}
	h := NewPreeshHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(http.MethodGet, "/preeshes?page=1&pageSize=20", "")

	require.NoError(t, h.GetFeed(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalCount":2`)
}

func TestPreeshHandler_GetFeed_ForBeast(t *testing.T) {
	uc := &fakePreeshUsecase{feed: &usecase.PreeshFeedOutput{TotalCount: 1}}
	h := NewPreeshHandler(uc, newDiscardLogger())

	c, _ := newJSONContext(http.MethodGet, "/preeshes?beastId=3", "")

	require.NoError(t, h.GetFeed(c))
	assert.Equal(t, int64(3), uc.gotBeastID)
}

func TestPreeshHandler_GetFeed_BadBeastID(t *testing.T) {
	h := NewPreeshHandler(&fakePreeshUsecase{}, newDiscardLogger())

	c, _ := newJSONContext(http.MethodGet, "/preeshes?beastId=abc", "")

	err := h.GetFeed(c)
	require.Error(t, err)

	appErr, ok := domainerrors.FromError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestPreeshHandler_GetFeed_BadPagination(t *testing.T) {
	for _, query := range []string{"page=abc", "pageSize=abc"} {
		uc := &fakePreeshUsecase{}
		h := NewPreeshHandler(uc, newDiscardLogger())

		c, _ := newJSONContext(http.MethodGet, "/preeshes?"+query, "")

		err := h.GetFeed(c)
		require.Error(t, err, query)

		appErr, ok := domainerrors.FromError(err)
		require.True(t, ok, query)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode(), query)
	}
}

func TestHealthCheck(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
