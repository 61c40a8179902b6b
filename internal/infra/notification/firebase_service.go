// Package notification delivers notifications: in-app records plus device push through Firebase.
package notification

import (
	"context"
	"log/slog"

	"lostfound/config"
	"lostfound/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// MaxMulticastTokens is the Firebase limit for one multicast request.
const MaxMulticastTokens = 500

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a Firebase Cloud Messaging push service.
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.PushService, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appCfg *firebase.Config
	if projectID != "" {
		appCfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// NewPushService returns the Firebase service when configured, otherwise a service that only logs.
func NewPushService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushService, error) {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		logger.Warn("Firebase not configured, device push is disabled")

		return &logOnlyPushService{logger: logger}, nil
	}

	return NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
}

// SendBatchNotification sends one multicast of at most MaxMulticastTokens tokens.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	if len(tokens) > MaxMulticastTokens {
		return 0, 0, nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxMulticastTokens)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "normal",
		},
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error != nil && isTokenRejected(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return response.SuccessCount, response.FailureCount, invalidTokens, nil
}

func isTokenRejected(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err)
}

// logOnlyPushService stands in for Firebase in development.
type logOnlyPushService struct {
	logger *slog.Logger
}

func (s *logOnlyPushService) SendBatchNotification(ctx context.Context, tokens []string, title, _ string, _ map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	s.logger.DebugContext(ctx, "[Push] Skipping batch push",
		slog.Int("token_count", len(tokens)),
		slog.String("title", title),
	)

	return len(tokens), 0, nil, nil
}
