package repository

import (
	"context"
	"fmt"

	"dcn-community/internal/domain"
	"dcn-community/internal/repository/models"
	"dcn-community/internal/util"

	"github.com/jmoiron/sqlx"
)

// SertifikatDatabaseAdapter implements domain.SertifikatRepository using sqlx
type SertifikatDatabaseAdapter struct {
	db DBTX
}

// NewSertifikatDatabaseAdapter creates a new instance of SertifikatDatabaseAdapter
func NewSertifikatDatabaseAdapter(db *sqlx.DB) domain.SertifikatRepository {
	return &SertifikatDatabaseAdapter{db: db}
}

const sertifikatColumns = `id, kontributor_id, nomor_sertifikat, tipe, pertemuan_id, tanggal_terbit, created_at`

const sertifikatDetailQuery = `SELECT s.id, s.kontributor_id, s.nomor_sertifikat, s.tipe, s.pertemuan_id,
		s.tanggal_terbit, s.created_at, k.nama AS nama_kontributor, p.judul AS judul_pertemuan
	FROM sertifikat s
	JOIN kontributor k ON k.id = s.kontributor_id
	LEFT JOIN pertemuan p ON p.id = s.pertemuan_id`

// Insert implements domain.SertifikatRepository
func (a *SertifikatDatabaseAdapter) Insert(ctx context.Context, s *domain.Sertifikat) (bool, error) {
	if s.ID == "" {
		s.ID = util.NewULID()
	}
	m := fromDomainSertifikat(s)
	query := `INSERT INTO sertifikat (` + sertifikatColumns + `)
		VALUES (:id, :kontributor_id, :nomor_sertifikat, :tipe, :pertemuan_id, :tanggal_terbit, :created_at)
		ON CONFLICT DO NOTHING`
	res, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, m)
	if err != nil {
		return false, fmt.Errorf("failed to insert sertifikat: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n == 1, nil
}

// FindExisting implements domain.SertifikatRepository
func (a *SertifikatDatabaseAdapter) FindExisting(ctx context.Context, kontributorID, tipe, pertemuanID string) (*domain.Sertifikat, error) {
	var m models.Sertifikat
	var err error
	exec := GetExecutor(ctx, a.db)
	if tipe == domain.TipePertemuan {
		query := `SELECT ` + sertifikatColumns + ` FROM sertifikat
			WHERE kontributor_id = $1 AND tipe = $2 AND pertemuan_id = $3 LIMIT 1`
		err = exec.GetContext(ctx, &m, query, kontributorID, tipe, pertemuanID)
	} else {
		query := `SELECT ` + sertifikatColumns + ` FROM sertifikat
			WHERE kontributor_id = $1 AND tipe = $2 LIMIT 1`
		err = exec.GetContext(ctx, &m, query, kontributorID, tipe)
	}
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find sertifikat: %w", err)
	}
	return toDomainSertifikat(&m), nil
}

// ListByKontributor implements domain.SertifikatRepository
func (a *SertifikatDatabaseAdapter) ListByKontributor(ctx context.Context, kontributorID string) ([]*domain.Sertifikat, error) {
	var rows []models.Sertifikat
	query := `SELECT ` + sertifikatColumns + ` FROM sertifikat WHERE kontributor_id = $1 ORDER BY tanggal_terbit ASC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, kontributorID); err != nil {
		return nil, fmt.Errorf("failed to list sertifikat: %w", err)
	}
	out := make([]*domain.Sertifikat, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainSertifikat(&rows[i]))
	}
	return out, nil
}

// NomorExists implements domain.SertifikatRepository
func (a *SertifikatDatabaseAdapter) NomorExists(ctx context.Context, nomor string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM sertifikat WHERE nomor_sertifikat = $1)`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &exists, query, nomor); err != nil {
		return false, fmt.Errorf("failed to check sertifikat nomor: %w", err)
	}
	return exists, nil
}

// GetDetailByNomor implements domain.SertifikatRepository
func (a *SertifikatDatabaseAdapter) GetDetailByNomor(ctx context.Context, nomor string) (*domain.SertifikatDetail, error) {
	var m models.SertifikatDetail
	query := sertifikatDetailQuery + ` WHERE s.nomor_sertifikat = $1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, nomor); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sertifikat detail: %w", err)
	}
	return toDomainSertifikatDetail(&m), nil
}

// List implements domain.SertifikatRepository
func (a *SertifikatDatabaseAdapter) List(ctx context.Context, limit, offset int) ([]*domain.SertifikatDetail, error) {
	var rows []models.SertifikatDetail
	query := sertifikatDetailQuery + ` ORDER BY s.tanggal_terbit DESC LIMIT $1 OFFSET $2`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list sertifikat: %w", err)
	}
	out := make([]*domain.SertifikatDetail, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainSertifikatDetail(&rows[i]))
	}
	return out, nil
}

func toDomainSertifikatDetail(m *models.SertifikatDetail) *domain.SertifikatDetail {
	return &domain.SertifikatDetail{
		Sertifikat:      *toDomainSertifikat(&m.Sertifikat),
		NamaKontributor: m.NamaKontributor,
		JudulPertemuan:  m.JudulPertemuan.String,
	}
}
