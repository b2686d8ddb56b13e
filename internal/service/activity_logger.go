package service

import (
	"context"
	"sync"
	"time"

	"dcn-community/internal/domain"
	"dcn-community/internal/dto"
	"dcn-community/internal/logger"

	"go.uber.org/zap"
)

const activityWriteTimeout = 5 * time.Second

// ActivityLogger records audit entries without affecting the caller.
type ActivityLogger interface {
	// Log writes entry in the background. It never blocks and never fails.
	Log(ctx context.Context, entry *domain.ActivityLog)
	ListRecent(ctx context.Context, limit int) ([]dto.ActivityLogResponse, error)
	// Wait blocks until pending writes finish.
	Wait()
}

type activityLogger struct {
	repo domain.ActivityLogRepository
	wg   sync.WaitGroup
}

// NewActivityLogger creates a new instance of ActivityLogger
func NewActivityLogger(repo domain.ActivityLogRepository) ActivityLogger {
	return &activityLogger{repo: repo}
}

func (l *activityLogger) Log(ctx context.Context, entry *domain.ActivityLog) {
	if entry == nil {
		return
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Get().Error("Activity log write panicked", zap.Any("panic", r))
			}
		}()

		// The request context is usually gone by the time this runs.
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), activityWriteTimeout)
		defer cancel()
		if err := l.repo.Insert(writeCtx, entry); err != nil {
			logger.Get().Warn("Failed to write activity log",
				zap.String("action", entry.Action),
				zap.String("entity", entry.Entity),
				zap.String("entityID", entry.EntityID),
				zap.Error(err))
		}
	}()
}

func (l *activityLogger) ListRecent(ctx context.Context, limit int) ([]dto.ActivityLogResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	entries, err := l.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list activity log", err)
	}
	out := make([]dto.ActivityLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ActivityLogResponse{
			ID:        e.ID,
			AdminID:   e.AdminID,
			Action:    e.Action,
			Entity:    e.Entity,
			EntityID:  e.EntityID,
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}

func (l *activityLogger) Wait() {
	l.wg.Wait()
}
