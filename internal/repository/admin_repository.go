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

// AdminDatabaseAdapter implements domain.AdminRepository using sqlx
type AdminDatabaseAdapter struct {
	db DBTX
}

// NewAdminDatabaseAdapter creates a new instance of AdminDatabaseAdapter
func NewAdminDatabaseAdapter(db *sqlx.DB) domain.AdminRepository {
	return &AdminDatabaseAdapter{db: db}
}

const adminColumns = `id, email, nama, role, permissions, is_active, created_at, updated_at`

func (a *AdminDatabaseAdapter) getOne(ctx context.Context, where string, arg interface{}) (*domain.Admin, error) {
	var m models.Admin
	query := `SELECT ` + adminColumns + ` FROM admins WHERE ` + where
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, arg); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return toDomainAdmin(&m), nil
}

// GetByID implements domain.AdminRepository
func (a *AdminDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	return a.getOne(ctx, "id = $1", id)
}

// GetByEmail implements domain.AdminRepository
func (a *AdminDatabaseAdapter) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return a.getOne(ctx, "LOWER(email) = LOWER($1)", email)
}

// Upsert implements domain.AdminRepository
func (a *AdminDatabaseAdapter) Upsert(ctx context.Context, admin *domain.Admin) error {
	if admin.ID == "" {
		admin.ID = util.NewULID()
	}
	admin.UpdatedAt = time.Now()
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = admin.UpdatedAt
	}
	query := `INSERT INTO admins (` + adminColumns + `)
		VALUES (:id, :email, :nama, :role, :permissions, :is_active, :created_at, :updated_at)
		ON CONFLICT (email) DO UPDATE SET
			nama = EXCLUDED.nama,
			role = EXCLUDED.role,
			permissions = EXCLUDED.permissions,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at`
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, fromDomainAdmin(admin)); err != nil {
		return fmt.Errorf("failed to upsert admin: %w", err)
	}
	return nil
}
