package handler

import (
	"net/http"
	"time"

	"lostfound/internal/delivery/api/response"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/service"
	"lostfound/internal/errors"

	"github.com/labstack/echo/v4"
)

const maxDevTokenTTL = 24 * time.Hour

// TestHandler serves endpoints that are only mounted when testRoutes.enabled is set.
type TestHandler struct {
	tokenSvc service.TokenService
}

func NewTestHandler(tokenSvc service.TokenService) *TestHandler {
	return &TestHandler{tokenSvc: tokenSvc}
}

// IssueTokenRequest is the body of POST /test/token.
type IssueTokenRequest struct {
	Subject string `json:"subject" validate:"required,max=128"`
	Email   string `json:"email" validate:"omitempty,email"`
	TTL     int    `json:"ttlSeconds" validate:"min=0"`
}

// IssueToken signs an access token for any identity so the API can be exercised
// without the external identity provider.
func (h *TestHandler) IssueToken(c echo.Context) error {
	var req IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid token request")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	token, err := h.tokenSvc.IssueAccessToken(req.Subject, req.Email, min(time.Duration(req.TTL)*time.Second, maxDevTokenTTL))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"accessToken": token,
		"tokenType":   "Bearer",
	})
}

// TestAuthMiddleware echoes the identity resolved by the auth middleware.
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	author, ok := deliverycontext.GetAuthor(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Caller not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Authentication middleware test successful",
		"userID":  author.ID,
		"email":   author.Email,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
