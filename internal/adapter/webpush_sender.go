package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dcn-community/internal/config"
	"dcn-community/internal/domain"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// WebPushSender implements domain.PushSender with VAPID-signed Web Push.
type WebPushSender struct {
	cfg        config.PushConfig
	httpClient *http.Client
}

// NewWebPushSender creates a sender using the configured VAPID key pair.
func NewWebPushSender(cfg config.PushConfig) domain.PushSender {
	return &WebPushSender{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send delivers msg. A 404 or 410 from the push service yields
// domain.ErrSubscriptionGone.
func (s *WebPushSender) Send(ctx context.Context, sub *domain.PushSubscription, msg domain.PushMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode push payload: %w", err)
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      s.httpClient,
		Subscriber:      s.cfg.Subscriber,
		VAPIDPublicKey:  s.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: s.cfg.VAPIDPrivateKey,
		TTL:             60 * 60,
		Urgency:         webpush.UrgencyNormal,
	})
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return domain.ErrSubscriptionGone
	case resp.StatusCode >= 300:
		return fmt.Errorf("push service responded %d", resp.StatusCode)
	}
	return nil
}
