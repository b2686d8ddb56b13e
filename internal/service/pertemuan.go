package service

import (
	"context"
	"strings"

	"dcn-community/internal/domain"
	"dcn-community/internal/dto"
	"dcn-community/internal/util"
)

// PertemuanService defines meeting and attendance management.
type PertemuanService interface {
	Create(ctx context.Context, adminID string, req *dto.CreatePertemuanRequest) (*dto.PertemuanResponse, error)
	List(ctx context.Context) ([]dto.PertemuanResponse, error)
	// UpsertAbsensi records attendance and returns how many rows were written.
	UpsertAbsensi(ctx context.Context, adminID, pertemuanID string, req *dto.UpsertAbsensiRequest) (int, error)
}

type pertemuanService struct {
	repo            domain.PertemuanRepository
	kontributorRepo domain.KontributorRepository
	txManager       domain.TransactionManager
	activity        ActivityLogger
}

// NewPertemuanService creates a new instance of PertemuanService
func NewPertemuanService(
	repo domain.PertemuanRepository,
	kontributorRepo domain.KontributorRepository,
	txManager domain.TransactionManager,
	activity ActivityLogger,
) PertemuanService {
	return &pertemuanService{
		repo:            repo,
		kontributorRepo: kontributorRepo,
		txManager:       txManager,
		activity:        activity,
	}
}

func (s *pertemuanService) Create(ctx context.Context, adminID string, req *dto.CreatePertemuanRequest) (*dto.PertemuanResponse, error) {
	p := domain.NewPertemuan(req.Judul, req.Tanggal, req.HasSertifikat)
	if p.Judul == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("judul")}
	}
	if p.Tanggal.IsZero() {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("tanggal")}
	}

	slug, err := util.UniqueSlug(ctx, p.Judul, "pertemuan", s.repo.SlugExists)
	if err != nil {
		return nil, domain.NewInternalError("Failed to generate slug", err)
	}
	p.Slug = slug
	if err := s.repo.Create(ctx, p); err != nil {
		if domain.IsCode(err, domain.CodeConflict) {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to create pertemuan", err)
	}

	s.activity.Log(ctx, &domain.ActivityLog{
		AdminID:  adminID,
		Action:   "pertemuan.create",
		Entity:   "pertemuan",
		EntityID: p.ID,
		Detail:   map[string]interface{}{"judul": p.Judul, "has_sertifikat": p.HasSertifikat},
	})
	resp := toPertemuanResponse(p)
	return &resp, nil
}

func (s *pertemuanService) List(ctx context.Context) ([]dto.PertemuanResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list pertemuan", err)
	}
	out := make([]dto.PertemuanResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, toPertemuanResponse(p))
	}
	return out, nil
}

func (s *pertemuanService) UpsertAbsensi(ctx context.Context, adminID, pertemuanID string, req *dto.UpsertAbsensiRequest) (int, error) {
	p, err := s.repo.GetByID(ctx, pertemuanID)
	if err != nil {
		return 0, domain.NewInternalError("Failed to get pertemuan", err)
	}
	if p == nil {
		return 0, domain.NewNotFoundError("Pertemuan tidak ditemukan")
	}

	var verrs domain.ValidationErrors
	records := make([]*domain.Absensi, 0, len(req.Records))
	for _, r := range req.Records {
		status := strings.ToLower(strings.TrimSpace(r.Status))
		if !domain.IsValidAbsensiStatus(status) {
			verrs = append(verrs, domain.NewInvalidFormatError("status", r.Status))
			continue
		}
		records = append(records, &domain.Absensi{
			PertemuanID:   p.ID,
			KontributorID: strings.TrimSpace(r.KontributorID),
			Status:        status,
		})
	}
	if len(verrs) > 0 {
		return 0, verrs
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, r := range records {
			k, err := s.kontributorRepo.GetByID(txCtx, r.KontributorID)
			if err != nil {
				return domain.NewInternalError("Failed to get kontributor", err)
			}
			if k == nil {
				return domain.NewNotFoundError("Kontributor tidak ditemukan").WithContext("kontributor_id", r.KontributorID)
			}
		}
		return s.repo.UpsertAbsensi(txCtx, records)
	})
	if err != nil {
		if _, ok := domain.AsDomainError(err); ok {
			return 0, err
		}
		return 0, domain.NewInternalError("Failed to save absensi", err)
	}

	s.activity.Log(ctx, &domain.ActivityLog{
		AdminID:  adminID,
		Action:   "pertemuan.absensi",
		Entity:   "pertemuan",
		EntityID: p.ID,
		Detail:   map[string]interface{}{"records": len(records)},
	})
	return len(records), nil
}

func toPertemuanResponse(p *domain.Pertemuan) dto.PertemuanResponse {
	return dto.PertemuanResponse{
		ID:            p.ID,
		Judul:         p.Judul,
		Slug:          p.Slug,
		Tanggal:       p.Tanggal,
		HasSertifikat: p.HasSertifikat,
	}
}
