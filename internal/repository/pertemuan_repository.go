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

// PertemuanDatabaseAdapter implements domain.PertemuanRepository using sqlx
type PertemuanDatabaseAdapter struct {
	db DBTX
}

// NewPertemuanDatabaseAdapter creates a new instance of PertemuanDatabaseAdapter
func NewPertemuanDatabaseAdapter(db *sqlx.DB) domain.PertemuanRepository {
	return &PertemuanDatabaseAdapter{db: db}
}

const pertemuanColumns = `id, judul, slug, tanggal, has_sertifikat, created_at`

// Create implements domain.PertemuanRepository
func (a *PertemuanDatabaseAdapter) Create(ctx context.Context, p *domain.Pertemuan) error {
	if p.ID == "" {
		p.ID = util.NewULID()
	}
	query := `INSERT INTO pertemuan (` + pertemuanColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := GetExecutor(ctx, a.db).ExecContext(ctx, query, p.ID, p.Judul, p.Slug, p.Tanggal, p.HasSertifikat, p.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("Slug pertemuan sudah digunakan")
		}
		return fmt.Errorf("failed to create pertemuan: %w", err)
	}
	return nil
}

// GetByID implements domain.PertemuanRepository
func (a *PertemuanDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.Pertemuan, error) {
	var m models.Pertemuan
	query := `SELECT ` + pertemuanColumns + ` FROM pertemuan WHERE id = $1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, id); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pertemuan: %w", err)
	}
	return toDomainPertemuan(&m), nil
}

// List implements domain.PertemuanRepository
func (a *PertemuanDatabaseAdapter) List(ctx context.Context) ([]*domain.Pertemuan, error) {
	var rows []models.Pertemuan
	query := `SELECT ` + pertemuanColumns + ` FROM pertemuan ORDER BY tanggal DESC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list pertemuan: %w", err)
	}
	return toDomainPertemuanList(rows), nil
}

// SlugExists implements domain.PertemuanRepository
func (a *PertemuanDatabaseAdapter) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pertemuan WHERE LOWER(slug) = LOWER($1))`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &exists, query, slug); err != nil {
		return false, fmt.Errorf("failed to check pertemuan slug: %w", err)
	}
	return exists, nil
}

// UpsertAbsensi implements domain.PertemuanRepository
func (a *PertemuanDatabaseAdapter) UpsertAbsensi(ctx context.Context, records []*domain.Absensi) error {
	exec := GetExecutor(ctx, a.db)
	query := `INSERT INTO absensi (id, pertemuan_id, kontributor_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (pertemuan_id, kontributor_id) DO UPDATE SET status = EXCLUDED.status`
	for _, r := range records {
		if r.ID == "" {
			r.ID = util.NewULID()
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = time.Now()
		}
		if _, err := exec.ExecContext(ctx, query, r.ID, r.PertemuanID, r.KontributorID, r.Status, r.CreatedAt); err != nil {
			return fmt.Errorf("failed to upsert absensi: %w", err)
		}
	}
	return nil
}

// ListEligibleForSertifikat implements domain.PertemuanRepository
func (a *PertemuanDatabaseAdapter) ListEligibleForSertifikat(ctx context.Context, kontributorID string) ([]*domain.Pertemuan, error) {
	var rows []models.Pertemuan
	query := `SELECT p.id, p.judul, p.slug, p.tanggal, p.has_sertifikat, p.created_at
		FROM pertemuan p
		JOIN absensi a ON a.pertemuan_id = p.id
		WHERE a.kontributor_id = $1 AND a.status = $2 AND p.has_sertifikat = TRUE
		ORDER BY p.tanggal ASC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, kontributorID, domain.StatusHadir); err != nil {
		return nil, fmt.Errorf("failed to list eligible pertemuan: %w", err)
	}
	return toDomainPertemuanList(rows), nil
}

func toDomainPertemuanList(rows []models.Pertemuan) []*domain.Pertemuan {
	out := make([]*domain.Pertemuan, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainPertemuan(&rows[i]))
	}
	return out
}
