package middleware

import (
	"strings"

	"lostfound/internal/delivery/api/response"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller from a bearer access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		author, ok := m.resolve(authHeader)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		deliverycontext.SetAuthor(c, author)

		return next(c)
	}
}

// Identify attaches the caller when a valid token is present and lets anonymous requests through.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if author, ok := m.resolve(c.Request().Header.Get(echo.HeaderAuthorization)); ok {
			deliverycontext.SetAuthor(c, author)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) resolve(authHeader string) (entity.Author, bool) {
	tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
	if !found || tokenString == "" {
		return entity.Author{}, false
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil || claims.Subject == "" {
		return entity.Author{}, false
	}

	return entity.Author{ID: claims.Subject, Email: claims.Email}, true
}
