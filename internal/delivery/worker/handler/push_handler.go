// Package handler serves the push subscription endpoint of the worker.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/constants"
	"lostfound/internal/errors"
	"lostfound/internal/infra/pubsub"
	"lostfound/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns Pub/Sub push deliveries into device pushes.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	logger         *slog.Logger
	pushUC         usecase.PushUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	PushUC usecase.PushUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Google push subscriptions carry an OIDC token.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validate:       idtoken.Validate,
		logger:         params.Logger,
		pushUC:         params.PushUC,
	}
}

// HandlePush acknowledges with 200 unless the delivery should be retried (503)
// or the envelope itself is unreadable (400).
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.DecodeEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode push event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, envelope.Message.Attributes, event.RequestID)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing push event",
		slog.String("notification_id", event.NotificationID),
		slog.String("recipient_id", event.RecipientID),
	)

	result, err := h.pushUC.DeliverPush(ctx, event)
	if err != nil {
		retryable := usecase.IsRetryable(err)
		reqLogger.Error("[Worker] Failed to deliver push",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Push event processed",
		slog.String("notification_id", event.NotificationID),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then the
// X-Request-Id of the push request, and finally mints a new id.
func extractRequestID(ctx context.Context, attributes map[string]string, eventRequestID string) string {
	if requestID := attributes["request_id"]; requestID != "" {
		return requestID
	}

	if eventRequestID != "" {
		return eventRequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken checks the OIDC token Google attaches to authenticated push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
