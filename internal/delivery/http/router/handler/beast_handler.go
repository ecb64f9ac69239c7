package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"preesh/internal/delivery/http/middleware"
	"preesh/internal/delivery/http/response"
	"preesh/internal/domain/entity"
	domainerrors "preesh/internal/domain/errors"
	"preesh/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BeastHandler holds dependencies for beast account handlers.
type BeastHandler struct {
	uc     usecase.BeastUsecase
	logger *slog.Logger
}

// NewBeastHandler is the constructor for BeastHandler, injected by Fx.
func NewBeastHandler(uc usecase.BeastUsecase, logger *slog.Logger) *BeastHandler {
	return &BeastHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateBeast handles direct beast registration.
func (h *BeastHandler) CreateBeast(c echo.Context) error {
	var input *usecase.CreateBeastInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewBadRequest("Invalid beast input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	beast, err := h.uc.CreateBeast(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, beast)
}

// GetBeast handles the lookup of a single beast by id.
func (h *BeastHandler) GetBeast(c echo.Context) error {
	id, err := beastIDParam(c)
	if err != nil {
		return err
	}

	beast, err := h.uc.GetBeast(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, beast)
}

// UpdateBeast handles the partial update of a beast. Only the owner may
// update their own record; the check runs before the body is even parsed.
func (h *BeastHandler) UpdateBeast(c echo.Context) error {
	id, err := beastIDParam(c)
	if err != nil {
		return err
	}

	authenticatedID, ok := middleware.BeastIDFromContext(c)
	if !ok {
		return domainerrors.ErrAuthenticationRequired
	}
	if authenticatedID != id {
		return domainerrors.ErrOwnershipViolation
	}

	var input *usecase.UpdateBeastInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewBadRequest("Invalid beast update input")
	}
	if input == nil {
		input = &usecase.UpdateBeastInput{}
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	beast, err := h.uc.UpdateBeast(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, beast)
}

// Me returns the hydrated authenticated beast loaded by the LoadBeast
// middleware.
func (h *BeastHandler) Me(c echo.Context) error {
	beast, ok := c.Get(middleware.KeyBeast).(*entity.Beast)
	if !ok {
		return domainerrors.ErrAuthenticationRequired
	}

	return response.JSON(c, http.StatusOK, beast)
}

func beastIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.NewBadRequest("Invalid beast id")
	}

	return id, nil
}
