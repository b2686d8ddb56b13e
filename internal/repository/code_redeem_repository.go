package repository

import (
	"context"
	"fmt"

	"dcn-community/internal/domain"
	"dcn-community/internal/repository/models"
	"dcn-community/internal/util"

	"github.com/jmoiron/sqlx"
)

// CodeRedeemDatabaseAdapter implements domain.CodeRedeemRepository using sqlx
type CodeRedeemDatabaseAdapter struct {
	db DBTX
}

// NewCodeRedeemDatabaseAdapter creates a new instance of CodeRedeemDatabaseAdapter
func NewCodeRedeemDatabaseAdapter(db *sqlx.DB) domain.CodeRedeemRepository {
	return &CodeRedeemDatabaseAdapter{db: db}
}

const codeRedeemColumns = `id, code, poin, max_usage, current_usage, is_active, expires_at, created_at`

// Create implements domain.CodeRedeemRepository
func (a *CodeRedeemDatabaseAdapter) Create(ctx context.Context, c *domain.CodeRedeem) error {
	if c.ID == "" {
		c.ID = util.NewULID()
	}
	query := `INSERT INTO code_redeem (` + codeRedeemColumns + `)
		VALUES (:id, :code, :poin, :max_usage, :current_usage, :is_active, :expires_at, :created_at)`
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, fromDomainCodeRedeem(c)); err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("Code sudah digunakan")
		}
		return fmt.Errorf("failed to create code redeem: %w", err)
	}
	return nil
}

func (a *CodeRedeemDatabaseAdapter) getOne(ctx context.Context, query string, arg interface{}) (*domain.CodeRedeem, error) {
	var m models.CodeRedeem
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, arg); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get code redeem: %w", err)
	}
	return toDomainCodeRedeem(&m), nil
}

// GetByCode implements domain.CodeRedeemRepository
func (a *CodeRedeemDatabaseAdapter) GetByCode(ctx context.Context, code string) (*domain.CodeRedeem, error) {
	return a.getOne(ctx, `SELECT `+codeRedeemColumns+` FROM code_redeem WHERE code = $1`, code)
}

// GetByCodeForUpdate implements domain.CodeRedeemRepository. Only meaningful
// inside a transaction.
func (a *CodeRedeemDatabaseAdapter) GetByCodeForUpdate(ctx context.Context, code string) (*domain.CodeRedeem, error) {
	return a.getOne(ctx, `SELECT `+codeRedeemColumns+` FROM code_redeem WHERE code = $1 FOR UPDATE`, code)
}

// GetByID implements domain.CodeRedeemRepository
func (a *CodeRedeemDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.CodeRedeem, error) {
	return a.getOne(ctx, `SELECT `+codeRedeemColumns+` FROM code_redeem WHERE id = $1`, id)
}

// List implements domain.CodeRedeemRepository
func (a *CodeRedeemDatabaseAdapter) List(ctx context.Context) ([]*domain.CodeRedeem, error) {
	var rows []models.CodeRedeem
	query := `SELECT ` + codeRedeemColumns + ` FROM code_redeem ORDER BY created_at DESC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list code redeem: %w", err)
	}
	out := make([]*domain.CodeRedeem, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainCodeRedeem(&rows[i]))
	}
	return out, nil
}

// SetActive implements domain.CodeRedeemRepository
func (a *CodeRedeemDatabaseAdapter) SetActive(ctx context.Context, id string, active bool) error {
	res, err := GetExecutor(ctx, a.db).ExecContext(ctx, `UPDATE code_redeem SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("failed to update code redeem: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return domain.NewNotFoundError("Code tidak ditemukan")
	}
	return nil
}

// HasUsage implements domain.CodeRedeemRepository
func (a *CodeRedeemDatabaseAdapter) HasUsage(ctx context.Context, codeID, kontributorID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM code_redeem_usage WHERE code_id = $1 AND kontributor_id = $2)`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &exists, query, codeID, kontributorID); err != nil {
		return false, fmt.Errorf("failed to check code usage: %w", err)
	}
	return exists, nil
}

// InsertUsage implements domain.CodeRedeemRepository
func (a *CodeRedeemDatabaseAdapter) InsertUsage(ctx context.Context, u *domain.CodeRedeemUsage) error {
	if u.ID == "" {
		u.ID = util.NewULID()
	}
	query := `INSERT INTO code_redeem_usage (id, code_id, kontributor_id, redeemed_at) VALUES ($1, $2, $3, $4)`
	if _, err := GetExecutor(ctx, a.db).ExecContext(ctx, query, u.ID, u.CodeID, u.KontributorID, u.RedeemedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.NewError(domain.CodeAlreadyClaimed, "Anda sudah pernah menggunakan code ini", nil)
		}
		return fmt.Errorf("failed to insert code usage: %w", err)
	}
	return nil
}

// CountUsage implements domain.CodeRedeemRepository
func (a *CodeRedeemDatabaseAdapter) CountUsage(ctx context.Context, codeID string) (int, error) {
	var n int
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &n, `SELECT COUNT(*) FROM code_redeem_usage WHERE code_id = $1`, codeID); err != nil {
		return 0, fmt.Errorf("failed to count code usage: %w", err)
	}
	return n, nil
}

// SetCurrentUsage implements domain.CodeRedeemRepository
func (a *CodeRedeemDatabaseAdapter) SetCurrentUsage(ctx context.Context, codeID string, usage int) error {
	if _, err := GetExecutor(ctx, a.db).ExecContext(ctx, `UPDATE code_redeem SET current_usage = $2 WHERE id = $1`, codeID, usage); err != nil {
		return fmt.Errorf("failed to update code usage: %w", err)
	}
	return nil
}

// ListUsage implements domain.CodeRedeemRepository
func (a *CodeRedeemDatabaseAdapter) ListUsage(ctx context.Context, codeID string) ([]*domain.CodeRedeemUsage, error) {
	var rows []models.CodeRedeemUsage
	query := `SELECT id, code_id, kontributor_id, redeemed_at FROM code_redeem_usage WHERE code_id = $1 ORDER BY redeemed_at ASC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, codeID); err != nil {
		return nil, fmt.Errorf("failed to list code usage: %w", err)
	}
	out := make([]*domain.CodeRedeemUsage, 0, len(rows))
	for _, r := range rows {
		out = append(out, &domain.CodeRedeemUsage{
			ID:            r.ID,
			CodeID:        r.CodeID,
			KontributorID: r.KontributorID,
			RedeemedAt:    r.RedeemedAt,
		})
	}
	return out, nil
}
