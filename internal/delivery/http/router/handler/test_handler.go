package handler

import (
	"net/http"

	"preesh/internal/delivery/http/response"
	domainerrors "preesh/internal/domain/errors"
	"preesh/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TestHandler issues short-lived tokens for exercising authenticated routes
// without going through the Apple flow. Only registered when test routes are
// enabled in config.
type TestHandler struct {
	tokenSvc service.TokenService
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(tokenSvc service.TokenService) *TestHandler {
	return &TestHandler{tokenSvc: tokenSvc}
}

type testTokenInput struct {
	BeastID int64 `json:"beastId" validate:"required"`
}

// IssueToken mints a 1-hour token for the given beast id.
func (h *TestHandler) IssueToken(c echo.Context) error {
	var input *testTokenInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewBadRequest("Invalid test token input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.tokenSvc.IssueShortLivedToken(input.BeastID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"token": token})
}
