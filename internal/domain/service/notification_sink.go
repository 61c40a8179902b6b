package service

import (
	"context"

	"lostfound/internal/domain/entity"
)

// NotificationSink delivers a single notification job. Implementations must be safe for concurrent use.
type NotificationSink interface {
	Deliver(ctx context.Context, job *entity.NotificationJob) error
}
