// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"preesh/internal/delivery/http/response"
	domainerrors "preesh/internal/domain/errors"
	"preesh/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// AppleSignIn handles the Apple sign-in request. The request must carry an
// identity token or an authorization code; both absent is rejected before
// any provider or storage call.
func (h *AuthHandler) AppleSignIn(c echo.Context) error {
	var input *usecase.AppleSignInInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewBadRequest("Invalid sign-in input")
	}
	if input == nil || (input.IdentityToken == "" && input.Code == "") {
		return domainerrors.NewBadRequest("Missing identityToken or code")
	}

	output, err := h.uc.AppleSignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}
