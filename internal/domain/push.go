package domain

import (
	"context"
	"errors"
	"time"
)

// ErrSubscriptionGone is returned by a PushSender when the push service
// reports the subscription no longer exists.
var ErrSubscriptionGone = errors.New("push subscription gone")

// PushSubscription is a browser Push API subscription.
type PushSubscription struct {
	ID        string
	Endpoint  string
	P256dh    string
	Auth      string
	CreatedAt time.Time
}

// PushMessage is the payload delivered to subscribers.
type PushMessage struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
}

// PushSender delivers one message to one subscription.
type PushSender interface {
	Send(ctx context.Context, sub *PushSubscription, msg PushMessage) error
}
