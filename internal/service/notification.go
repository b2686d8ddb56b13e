package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"dcn-community/internal/domain"
	"dcn-community/internal/dto"
	"dcn-community/internal/logger"
	"dcn-community/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// broadcastConcurrency caps simultaneous deliveries to push services.
const broadcastConcurrency = 10

// NotificationService defines push subscription management and broadcast.
type NotificationService interface {
	Subscribe(ctx context.Context, req *dto.SubscribeRequest) error
	Unsubscribe(ctx context.Context, endpoint string) error
	Broadcast(ctx context.Context, adminID string, req *dto.BroadcastRequest) (*dto.BroadcastResponse, error)
}

type notificationService struct {
	repo     domain.PushSubscriptionRepository
	sender   domain.PushSender
	activity ActivityLogger
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(
	repo domain.PushSubscriptionRepository,
	sender domain.PushSender,
	activity ActivityLogger,
) NotificationService {
	return &notificationService{
		repo:     repo,
		sender:   sender,
		activity: activity,
	}
}

func (s *notificationService) Subscribe(ctx context.Context, req *dto.SubscribeRequest) error {
	sub := &domain.PushSubscription{
		Endpoint: strings.TrimSpace(req.Endpoint),
		P256dh:   strings.TrimSpace(req.Keys.P256dh),
		Auth:     strings.TrimSpace(req.Keys.Auth),
	}
	if sub.Endpoint == "" || sub.P256dh == "" || sub.Auth == "" {
		return domain.NewInvalidInputError("Data langganan notifikasi tidak lengkap")
	}
	if err := s.repo.Upsert(ctx, sub); err != nil {
		return domain.NewInternalError("Failed to save push subscription", err)
	}
	return nil
}

func (s *notificationService) Unsubscribe(ctx context.Context, endpoint string) error {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("endpoint")}
	}
	if err := s.repo.DeleteByEndpoint(ctx, endpoint); err != nil {
		return domain.NewInternalError("Failed to delete push subscription", err)
	}
	return nil
}

// Broadcast sends the message to every subscription. Subscriptions the push
// service reports as gone are removed. Individual failures never fail the call.
func (s *notificationService) Broadcast(ctx context.Context, adminID string, req *dto.BroadcastRequest) (*dto.BroadcastResponse, error) {
	subs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list push subscriptions", err)
	}
	msg := domain.PushMessage{Title: req.Title, Body: req.Body, URL: req.URL}

	var sent, failed, removed int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(broadcastConcurrency)
	for _, sub := range subs {
		sub := sub
		g.Go(func() error {
			err := s.sender.Send(gctx, sub, msg)
			switch {
			case err == nil:
				atomic.AddInt64(&sent, 1)
				metrics.PushDeliveries.WithLabelValues("sent").Inc()
			case errors.Is(err, domain.ErrSubscriptionGone):
				atomic.AddInt64(&failed, 1)
				metrics.PushDeliveries.WithLabelValues("gone").Inc()
				if derr := s.repo.DeleteByEndpoint(gctx, sub.Endpoint); derr != nil {
					logger.Get().Warn("Failed to remove gone push subscription",
						zap.String("endpoint", sub.Endpoint), zap.Error(derr))
					return nil
				}
				atomic.AddInt64(&removed, 1)
			default:
				atomic.AddInt64(&failed, 1)
				metrics.PushDeliveries.WithLabelValues("failed").Inc()
				logger.Get().Warn("Push delivery failed",
					zap.String("endpoint", sub.Endpoint), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()

	resp := &dto.BroadcastResponse{Sent: int(sent), Failed: int(failed), Removed: int(removed)}
	s.activity.Log(ctx, &domain.ActivityLog{
		AdminID: adminID,
		Action:  "notifikasi.broadcast",
		Entity:  "push_subscription",
		Detail: map[string]interface{}{
			"title":   req.Title,
			"sent":    resp.Sent,
			"failed":  resp.Failed,
			"removed": resp.Removed,
		},
	})
	logger.Get().Info("Push broadcast finished",
		zap.Int("sent", resp.Sent),
		zap.Int("failed", resp.Failed),
		zap.Int("removed", resp.Removed))
	return resp, nil
}
