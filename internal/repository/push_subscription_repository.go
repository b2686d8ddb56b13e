package repository

import (
	"context"
	"fmt"
	"time"

	"dcn-community/internal/domain"
	"dcn-community/internal/repository/models"
	"dcn-community/internal/util"

	"github.com/jmoiron/sqlx"
)

// PushSubscriptionDatabaseAdapter implements domain.PushSubscriptionRepository using sqlx
type PushSubscriptionDatabaseAdapter struct {
	db DBTX
}

// NewPushSubscriptionDatabaseAdapter creates a new instance of PushSubscriptionDatabaseAdapter
func NewPushSubscriptionDatabaseAdapter(db *sqlx.DB) domain.PushSubscriptionRepository {
	return &PushSubscriptionDatabaseAdapter{db: db}
}

// Upsert implements domain.PushSubscriptionRepository
func (a *PushSubscriptionDatabaseAdapter) Upsert(ctx context.Context, sub *domain.PushSubscription) error {
	if sub.ID == "" {
		sub.ID = util.NewULID()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	query := `INSERT INTO push_subscription (id, endpoint, p256dh, auth, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (endpoint) DO UPDATE SET p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth`
	if _, err := GetExecutor(ctx, a.db).ExecContext(ctx, query, sub.ID, sub.Endpoint, sub.P256dh, sub.Auth, sub.CreatedAt); err != nil {
		return fmt.Errorf("failed to upsert push subscription: %w", err)
	}
	return nil
}

// DeleteByEndpoint implements domain.PushSubscriptionRepository
func (a *PushSubscriptionDatabaseAdapter) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	if _, err := GetExecutor(ctx, a.db).ExecContext(ctx, `DELETE FROM push_subscription WHERE endpoint = $1`, endpoint); err != nil {
		return fmt.Errorf("failed to delete push subscription: %w", err)
	}
	return nil
}

// ListAll implements domain.PushSubscriptionRepository
func (a *PushSubscriptionDatabaseAdapter) ListAll(ctx context.Context) ([]*domain.PushSubscription, error) {
	var rows []models.PushSubscription
	query := `SELECT id, endpoint, p256dh, auth, created_at FROM push_subscription ORDER BY created_at ASC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list push subscriptions: %w", err)
	}
	out := make([]*domain.PushSubscription, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainPushSubscription(&rows[i]))
	}
	return out, nil
}
