package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"lostfound/internal/domain/service"

	"github.com/pkg/errors"
)

// PushEnvelope is the body Google Pub/Sub POSTs to push subscriptions. The local
// publisher produces the same shape so the worker cannot tell the two apart.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushEnvelope wraps an event the way a push subscription would deliver it.
func NewPushEnvelope(event *service.PushEvent, subscription string) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	envelope := &PushEnvelope{Subscription: subscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = eventAttributes(event)
	envelope.Message.MessageID = event.NotificationID
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return envelope, nil
}

// DecodeEvent extracts the push event carried by the envelope.
func (e *PushEnvelope) DecodeEvent() (*service.PushEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.PushEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse push event")
	}

	return &event, nil
}

// eventAttributes are the message attributes used for filtering and tracing.
func eventAttributes(event *service.PushEvent) map[string]string {
	attributes := map[string]string{
		"notification_id": event.NotificationID,
		"recipient_id":    event.RecipientID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
