package repository

import (
	"context"
	"fmt"

	"dcn-community/internal/domain"
	"dcn-community/internal/repository/models"
	"dcn-community/internal/util"

	"github.com/jmoiron/sqlx"
)

// ActivityLogDatabaseAdapter implements domain.ActivityLogRepository using sqlx
type ActivityLogDatabaseAdapter struct {
	db DBTX
}

// NewActivityLogDatabaseAdapter creates a new instance of ActivityLogDatabaseAdapter
func NewActivityLogDatabaseAdapter(db *sqlx.DB) domain.ActivityLogRepository {
	return &ActivityLogDatabaseAdapter{db: db}
}

// Insert implements domain.ActivityLogRepository
func (a *ActivityLogDatabaseAdapter) Insert(ctx context.Context, e *domain.ActivityLog) error {
	if e.ID == "" {
		e.ID = util.NewULID()
	}
	detail, err := models.JSONMap(e.Detail).Value()
	if err != nil {
		return fmt.Errorf("failed to encode activity detail: %w", err)
	}
	query := `INSERT INTO activity_log (id, admin_id, action, entity, entity_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = GetExecutor(ctx, a.db).ExecContext(ctx, query,
		e.ID, util.StringToNullString(e.AdminID), e.Action, e.Entity, util.StringToNullString(e.EntityID), detail, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}
	return nil
}

// ListRecent implements domain.ActivityLogRepository
func (a *ActivityLogDatabaseAdapter) ListRecent(ctx context.Context, limit int) ([]*domain.ActivityLog, error) {
	var rows []models.ActivityLog
	query := `SELECT id, admin_id, action, entity, entity_id, detail, created_at
		FROM activity_log ORDER BY created_at DESC LIMIT $1`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list activity log: %w", err)
	}
	out := make([]*domain.ActivityLog, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainActivityLog(&rows[i]))
	}
	return out, nil
}
