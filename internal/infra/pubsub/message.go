package pubsub

import (
	"encoding/json"
	"time"

	"budget/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// PushMessage is the envelope Pub/Sub delivers to HTTP push endpoints.
// The local publisher produces the same shape so the worker cannot tell them apart.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// authEventPayload is the JSON body carried in PushMessage.Message.Data.
type authEventPayload struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	UserID     *int64    `json:"userId,omitempty"`
	RequestID  string    `json:"requestId,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EncodeAuthEvent serializes an event for the wire.
func EncodeAuthEvent(event *entity.AuthEvent) ([]byte, error) {
	data, err := json.Marshal(authEventPayload{
		ID:         event.ID,
		Type:       string(event.Type),
		UserID:     event.UserID,
		RequestID:  event.RequestID,
		Reason:     event.Reason,
		OccurredAt: event.OccurredAt.UTC(),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// DecodeAuthEvent parses a wire payload and rejects events without an ID or type.
func DecodeAuthEvent(data []byte) (*entity.AuthEvent, error) {
	var payload authEventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode auth event")
	}
	if payload.ID == uuid.Nil {
		return nil, errors.New("auth event id is required")
	}
	if payload.Type == "" {
		return nil, errors.New("auth event type is required")
	}

	return &entity.AuthEvent{
		ID:         payload.ID,
		Type:       entity.AuthEventType(payload.Type),
		UserID:     payload.UserID,
		RequestID:  payload.RequestID,
		Reason:     payload.Reason,
		OccurredAt: payload.OccurredAt,
	}, nil
}

func eventAttributes(event *entity.AuthEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.ID.String(),
		"event_type": string(event.Type),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
