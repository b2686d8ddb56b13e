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

// KontributorDatabaseAdapter implements domain.KontributorRepository using sqlx
type KontributorDatabaseAdapter struct {
	db DBTX
}

// NewKontributorDatabaseAdapter creates a new instance of KontributorDatabaseAdapter
func NewKontributorDatabaseAdapter(db *sqlx.DB) domain.KontributorRepository {
	return &KontributorDatabaseAdapter{db: db}
}

const kontributorColumns = `id, nim, nama, email, total_poin, created_at, updated_at`

// Create implements domain.KontributorRepository
func (a *KontributorDatabaseAdapter) Create(ctx context.Context, k *domain.Kontributor) error {
	if k.ID == "" {
		k.ID = util.NewULID()
	}
	m := fromDomainKontributor(k)
	query := `INSERT INTO kontributor (` + kontributorColumns + `)
		VALUES (:id, :nim, :nama, :email, :total_poin, :created_at, :updated_at)`
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, m); err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("NIM sudah terdaftar")
		}
		return fmt.Errorf("failed to create kontributor: %w", err)
	}
	return nil
}

func (a *KontributorDatabaseAdapter) getOne(ctx context.Context, where string, arg interface{}) (*domain.Kontributor, error) {
	var m models.Kontributor
	query := `SELECT ` + kontributorColumns + ` FROM kontributor WHERE ` + where + ` LIMIT 1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, arg); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get kontributor: %w", err)
	}
	return toDomainKontributor(&m), nil
}

// GetByID implements domain.KontributorRepository
func (a *KontributorDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.Kontributor, error) {
	return a.getOne(ctx, "id = $1", id)
}

// GetByNIM implements domain.KontributorRepository
func (a *KontributorDatabaseAdapter) GetByNIM(ctx context.Context, nim string) (*domain.Kontributor, error) {
	return a.getOne(ctx, "nim = $1", nim)
}

// GetByEmail implements domain.KontributorRepository
func (a *KontributorDatabaseAdapter) GetByEmail(ctx context.Context, email string) (*domain.Kontributor, error) {
	return a.getOne(ctx, "LOWER(email) = LOWER($1)", email)
}

// AddPoin implements domain.KontributorRepository
func (a *KontributorDatabaseAdapter) AddPoin(ctx context.Context, id string, delta int) (int, error) {
	var total int
	query := `UPDATE kontributor SET total_poin = GREATEST(total_poin + $2, 0), updated_at = $3
		WHERE id = $1 RETURNING total_poin`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &total, query, id, delta, time.Now()); err != nil {
		if isNoRows(err) {
			return 0, domain.NewNotFoundError("Kontributor tidak ditemukan")
		}
		return 0, fmt.Errorf("failed to add poin: %w", err)
	}
	return total, nil
}

// Leaderboard implements domain.KontributorRepository
func (a *KontributorDatabaseAdapter) Leaderboard(ctx context.Context, limit int) ([]*domain.Kontributor, error) {
	var rows []models.Kontributor
	query := `SELECT ` + kontributorColumns + ` FROM kontributor ORDER BY total_poin DESC, nama ASC LIMIT $1`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	out := make([]*domain.Kontributor, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainKontributor(&rows[i]))
	}
	return out, nil
}
