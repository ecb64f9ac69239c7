package middleware

import (
	"strings"

	domainerrors "preesh/internal/domain/errors"
	"preesh/internal/domain/service"
	"preesh/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// KeyBeastID is the echo.Context key holding the authenticated beast id.
	KeyBeastID = "beastID"

	// KeyBeast is the echo.Context key holding the hydrated beast entity.
	KeyBeast = "beast"
)

// AuthMiddleware validates session tokens and loads the authenticated beast.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	beastUC  usecase.BeastUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, beastUC usecase.BeastUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, beastUC: beastUC}
}

// Authenticate validates the bearer token and stores the beast id on the
// context. A missing or malformed header is 401; a token that fails
// verification is 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrAuthenticationRequired
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrAuthenticationRequired
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		c.Set(KeyBeastID, claims.BeastID)

		return next(c)
	}
}

// LoadBeast hydrates the authenticated beast from storage. It must run after
// Authenticate. The account disappearing between token issuance and use is a
// plain 404.
func (m *AuthMiddleware) LoadBeast(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		beastID, ok := c.Get(KeyBeastID).(int64)
		if !ok {
			return domainerrors.ErrAuthenticationRequired
		}

		beast, err := m.beastUC.GetBeast(c.Request().Context(), beastID)
		if err != nil {
			return err
		}

		c.Set(KeyBeast, beast)

		return next(c)
	}
}

// BeastIDFromContext returns the authenticated beast id set by Authenticate.
func BeastIDFromContext(c echo.Context) (int64, bool) {
	id, ok := c.Get(KeyBeastID).(int64)

	return id, ok
}
