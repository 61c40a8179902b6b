package usecase

import (
	"context"
	"fmt"

	"lostfound/internal/domain/service"
	"lostfound/internal/errors"
)

// ErrInvalidPushEvent is returned for events that can never be delivered, e.g. a malformed notification id.
var ErrInvalidPushEvent = errors.New("invalid push event")

// PushResult summarises the delivery of one push event.
type PushResult struct {
	Devices       int  `json:"devices"`
	Sent          int  `json:"sent"`
	Failed        int  `json:"failed"`
	RevokedTokens int  `json:"revokedTokens"`
	Duplicate     bool `json:"duplicate,omitempty"` // The push outcome was already recorded by an earlier delivery.
}

// PushUsecase delivers in-app notifications to the recipient's registered devices.
type PushUsecase interface {
	// DeliverPush sends the event to every active device of the recipient in provider-sized batches
	// and deactivates tokens the provider rejects. Failures worth redelivering are RetryableError.
	DeliverPush(ctx context.Context, event *service.PushEvent) (*PushResult, error)
}

// RetryableError wraps an error to indicate the event should be redelivered.
type RetryableError struct {
	err error
}

// NewRetryableError wraps an error as retryable
func NewRetryableError(err error) error {
	return &RetryableError{err: err}
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *RetryableError) Unwrap() error {
	return e.err
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	_, ok := errors.AsType[*RetryableError](err)

	return ok
}
