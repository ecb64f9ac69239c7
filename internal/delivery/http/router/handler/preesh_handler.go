package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"preesh/internal/delivery/http/middleware"
	"preesh/internal/delivery/http/response"
	domainerrors "preesh/internal/domain/errors"
	"preesh/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PreeshHandler holds dependencies for preesh handlers.
type PreeshHandler struct {
	uc     usecase.PreeshUsecase
	logger *slog.Logger
}

// NewPreeshHandler is the constructor for PreeshHandler, injected by Fx.
func NewPreeshHandler(uc usecase.PreeshUsecase, logger *slog.Logger) *PreeshHandler {
	return &PreeshHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreatePreesh handles posting a preesh. The author is always the
// authenticated beast, never taken from the body.
func (h *PreeshHandler) CreatePreesh(c echo.Context) error {
	authorID, ok := middleware.BeastIDFromContext(c)
	if !ok {
		return domainerrors.ErrAuthenticationRequired
	}

	var input *usecase.CreatePreeshInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewBadRequest("Invalid preesh input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	preesh, err := h.uc.CreatePreesh(c.Request().Context(), authorID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, preesh)
}

// GetPreesh handles the lookup of a single preesh by id.
func (h *PreeshHandler) GetPreesh(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domainerrors.NewBadRequest("Invalid preesh id")
	}

	preesh, err := h.uc.GetPreesh(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, preesh)
}

// GetFeed returns one page of the global preesh feed. An optional beastId
// query parameter narrows the feed to preeshes involving that beast.
func (h *PreeshHandler) GetFeed(c echo.Context) error {
	page, err := intQueryParam(c, "page")
	if err != nil {
		return err
	}
	pageSize, err := intQueryParam(c, "pageSize")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	if beastIDParam := c.QueryParam("beastId"); beastIDParam != "" {
		beastID, err := strconv.ParseInt(beastIDParam, 10, 64)
		if err != nil {
			return domainerrors.NewBadRequest("Invalid beastId parameter")
		}

		feed, err := h.uc.GetFeedForBeast(ctx, beastID, page, pageSize)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.JSON(c, http.StatusOK, feed)
	}

	feed, err := h.uc.GetFeed(ctx, page, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, feed)
}

// intQueryParam parses an optional integer query parameter. An absent
// parameter yields zero, which the usecase replaces with its default.
func intQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.NewBadRequest("Invalid " + name + " parameter")
	}

	return value, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
