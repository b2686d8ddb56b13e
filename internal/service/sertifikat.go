package service

import (
	"context"
	"strings"
	"time"

	"dcn-community/internal/cache"
	"dcn-community/internal/config"
	"dcn-community/internal/domain"
	"dcn-community/internal/dto"
	"dcn-community/internal/logger"
	"dcn-community/internal/metrics"
	"dcn-community/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxNomorAttempts bounds retries when a generated certificate number collides.
const maxNomorAttempts = 5

// SertifikatService defines certificate eligibility, issuance and verification.
type SertifikatService interface {
	CheckEligibility(ctx context.Context, email string) (*dto.EligibilityResponse, error)
	IssueCertificate(ctx context.Context, req *dto.IssueSertifikatRequest) (*dto.IssueSertifikatResponse, error)
	VerifyCertificate(ctx context.Context, nomor string) (*dto.VerifySertifikatResponse, error)
	List(ctx context.Context, limit, offset int) ([]dto.SertifikatListItem, error)
}

type sertifikatService struct {
	kontributorRepo domain.KontributorRepository
	pertemuanRepo   domain.PertemuanRepository
	sertifikatRepo  domain.SertifikatRepository
	sessionRepo     domain.QuizSessionRepository
	cache           domain.Cache
	activity        ActivityLogger
	cfg             *config.Config
	now             func() time.Time
}

// NewSertifikatService creates a new instance of SertifikatService
func NewSertifikatService(
	kontributorRepo domain.KontributorRepository,
	pertemuanRepo domain.PertemuanRepository,
	sertifikatRepo domain.SertifikatRepository,
	sessionRepo domain.QuizSessionRepository,
	cache domain.Cache,
	activity ActivityLogger,
	cfg *config.Config,
) SertifikatService {
	return &sertifikatService{
		kontributorRepo: kontributorRepo,
		pertemuanRepo:   pertemuanRepo,
		sertifikatRepo:  sertifikatRepo,
		sessionRepo:     sessionRepo,
		cache:           cache,
		activity:        activity,
		cfg:             cfg,
		now:             time.Now,
	}
}

func (s *sertifikatService) CheckEligibility(ctx context.Context, email string) (*dto.EligibilityResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("email")}
	}
	k, err := s.kontributorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get kontributor", err)
	}
	if k == nil {
		return nil, domain.NewNotFoundError("Email tidak terdaftar sebagai kontributor")
	}

	el, err := s.evaluate(ctx, k)
	if err != nil {
		return nil, domain.NewInternalError("Failed to check certificate eligibility", err)
	}
	return toEligibilityResponse(el), nil
}

// evaluate gathers the three independent aggregations concurrently.
func (s *sertifikatService) evaluate(ctx context.Context, k *domain.Kontributor) (*domain.Eligibility, error) {
	var (
		meetings  []*domain.Pertemuan
		certs     []*domain.Sertifikat
		quizCount int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		meetings, err = s.pertemuanRepo.ListEligibleForSertifikat(gctx, k.ID)
		return err
	})
	g.Go(func() error {
		var err error
		certs, err = s.sertifikatRepo.ListByKontributor(gctx, k.ID)
		return err
	})
	g.Go(func() error {
		var err error
		quizCount, err = s.sessionRepo.CountSubmissionsByName(gctx, k.Nama)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byPertemuan := make(map[string]*domain.Sertifikat)
	var quizCert *domain.Sertifikat
	for _, c := range certs {
		switch c.Tipe {
		case domain.TipePertemuan:
			byPertemuan[c.PertemuanID] = c
		case domain.TipeQuiz:
			quizCert = c
		}
	}

	el := &domain.Eligibility{
		Kontributor: k,
		Pertemuan:   make([]domain.PertemuanEligibility, 0, len(meetings)),
		Quiz: domain.QuizEligibility{
			JumlahQuiz: quizCount,
			Minimal:    s.cfg.Quiz.CertificateThreshold,
			Eligible:   quizCount >= s.cfg.Quiz.CertificateThreshold,
			Sertifikat: quizCert,
		},
	}
	for _, p := range meetings {
		el.Pertemuan = append(el.Pertemuan, domain.PertemuanEligibility{
			Pertemuan:  p,
			Sertifikat: byPertemuan[p.ID],
		})
	}
	return el, nil
}

func (s *sertifikatService) IssueCertificate(ctx context.Context, req *dto.IssueSertifikatRequest) (*dto.IssueSertifikatResponse, error) {
	draft := &domain.Sertifikat{
		KontributorID: strings.TrimSpace(req.KontributorID),
		Tipe:          strings.TrimSpace(req.Tipe),
		PertemuanID:   strings.TrimSpace(req.PertemuanID),
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	k, err := s.kontributorRepo.GetByID(ctx, draft.KontributorID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get kontributor", err)
	}
	if k == nil {
		return nil, domain.NewNotFoundError("Kontributor tidak ditemukan")
	}

	existing, err := s.sertifikatRepo.FindExisting(ctx, k.ID, draft.Tipe, draft.PertemuanID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get sertifikat", err)
	}
	if existing != nil {
		return issued(existing, false), nil
	}

	eligible, err := s.isEligible(ctx, k, draft)
	if err != nil {
		return nil, domain.NewInternalError("Failed to check certificate eligibility", err)
	}
	if !eligible {
		return nil, domain.NewError(domain.CodeNotEligible, "Belum memenuhi syarat sertifikat", nil)
	}

	for attempt := 1; attempt <= maxNomorAttempts; attempt++ {
		suffix, err := util.RandomBase36(domain.NomorSuffixLength)
		if err != nil {
			return nil, domain.NewInternalError("Failed to generate certificate number", err)
		}
		now := s.now()
		cert := &domain.Sertifikat{
			KontributorID:   k.ID,
			NomorSertifikat: domain.FormatNomor(draft.Tipe, now.Year(), suffix),
			Tipe:            draft.Tipe,
			PertemuanID:     draft.PertemuanID,
			TanggalTerbit:   now,
			CreatedAt:       now,
		}
		inserted, err := s.sertifikatRepo.Insert(ctx, cert)
		if err != nil {
			return nil, domain.NewInternalError("Failed to save sertifikat", err)
		}
		if inserted {
			metrics.CertificatesIssued.WithLabelValues(cert.Tipe).Inc()
			s.activity.Log(ctx, &domain.ActivityLog{
				Action:   "sertifikat.issue",
				Entity:   "sertifikat",
				EntityID: cert.ID,
				Detail: map[string]interface{}{
					"kontributor_id": k.ID,
					"nomor":          cert.NomorSertifikat,
					"tipe":           cert.Tipe,
				},
			})
			logger.Get().Info("Sertifikat issued",
				zap.String("kontributorID", k.ID),
				zap.String("nomor", cert.NomorSertifikat))
			return issued(cert, true), nil
		}

		// Nothing written: either a concurrent claim won the pair or the
		// number collided.
		existing, err := s.sertifikatRepo.FindExisting(ctx, k.ID, draft.Tipe, draft.PertemuanID)
		if err != nil {
			return nil, domain.NewInternalError("Failed to get sertifikat", err)
		}
		if existing != nil {
			return issued(existing, false), nil
		}
		logger.Get().Warn("Certificate number collision, retrying",
			zap.String("nomor", cert.NomorSertifikat),
			zap.Int("attempt", attempt))
	}
	return nil, domain.NewInternalError("Failed to generate a unique certificate number", nil)
}

func (s *sertifikatService) isEligible(ctx context.Context, k *domain.Kontributor, draft *domain.Sertifikat) (bool, error) {
	if draft.Tipe == domain.TipeQuiz {
		n, err := s.sessionRepo.CountSubmissionsByName(ctx, k.Nama)
		if err != nil {
			return false, err
		}
		return n >= s.cfg.Quiz.CertificateThreshold, nil
	}
	meetings, err := s.pertemuanRepo.ListEligibleForSertifikat(ctx, k.ID)
	if err != nil {
		return false, err
	}
	for _, p := range meetings {
		if p.ID == draft.PertemuanID {
			return true, nil
		}
	}
	return false, nil
}

func (s *sertifikatService) VerifyCertificate(ctx context.Context, nomor string) (*dto.VerifySertifikatResponse, error) {
	nomor = strings.ToUpper(strings.TrimSpace(nomor))
	if !domain.IsWellFormedNomor(nomor) {
		return nil, sertifikatNotFound()
	}

	key := cache.SertifikatVerifyKey(nomor)
	var cached dto.VerifiedSertifikat
	if cache.GetJSON(ctx, s.cache, key, &cached) {
		return &dto.VerifySertifikatResponse{Valid: true, Sertifikat: &cached}, nil
	}

	detail, err := s.sertifikatRepo.GetDetailByNomor(ctx, nomor)
	if err != nil {
		return nil, domain.NewInternalError("Failed to verify sertifikat", err)
	}
	if detail == nil {
		return nil, sertifikatNotFound()
	}

	verified := dto.VerifiedSertifikat{
		NomorSertifikat: detail.NomorSertifikat,
		Tipe:            detail.Tipe,
		TanggalTerbit:   detail.TanggalTerbit,
		Nama:            detail.NamaKontributor,
		JudulPertemuan:  detail.JudulPertemuan,
	}
	cache.SetJSON(ctx, s.cache, key, verified, s.cfg.Cache.VerifyTTL)
	return &dto.VerifySertifikatResponse{Valid: true, Sertifikat: &verified}, nil
}

func (s *sertifikatService) List(ctx context.Context, limit, offset int) ([]dto.SertifikatListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := s.sertifikatRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list sertifikat", err)
	}
	out := make([]dto.SertifikatListItem, 0, len(rows))
	for _, d := range rows {
		out = append(out, dto.SertifikatListItem{
			SertifikatResponse: toSertifikatResponse(&d.Sertifikat),
			NamaKontributor:    d.NamaKontributor,
			JudulPertemuan:     d.JudulPertemuan,
		})
	}
	return out, nil
}

// sertifikatNotFound is shared by the malformed and unknown cases so callers
// cannot tell them apart.
func sertifikatNotFound() *domain.DomainError {
	return domain.NewNotFoundError("Sertifikat tidak ditemukan").WithContext("valid", false)
}

func issued(c *domain.Sertifikat, created bool) *dto.IssueSertifikatResponse {
	return &dto.IssueSertifikatResponse{
		Success:    true,
		Created:    created,
		Sertifikat: toSertifikatResponse(c),
	}
}

func toSertifikatResponse(c *domain.Sertifikat) dto.SertifikatResponse {
	return dto.SertifikatResponse{
		ID:              c.ID,
		KontributorID:   c.KontributorID,
		NomorSertifikat: c.NomorSertifikat,
		Tipe:            c.Tipe,
		PertemuanID:     c.PertemuanID,
		TanggalTerbit:   c.TanggalTerbit,
	}
}

func optionalSertifikat(c *domain.Sertifikat) *dto.SertifikatResponse {
	if c == nil {
		return nil
	}
	r := toSertifikatResponse(c)
	return &r
}

func toEligibilityResponse(el *domain.Eligibility) *dto.EligibilityResponse {
	resp := &dto.EligibilityResponse{
		Kontributor: toKontributorResponse(el.Kontributor),
		Pertemuan:   make([]dto.PertemuanEligibilityResponse, 0, len(el.Pertemuan)),
		Quiz: dto.QuizEligibilityResponse{
			JumlahQuiz: el.Quiz.JumlahQuiz,
			Minimal:    el.Quiz.Minimal,
			Eligible:   el.Quiz.Eligible,
			SudahKlaim: el.Quiz.Sertifikat != nil,
			Sertifikat: optionalSertifikat(el.Quiz.Sertifikat),
		},
	}
	for _, p := range el.Pertemuan {
		resp.Pertemuan = append(resp.Pertemuan, dto.PertemuanEligibilityResponse{
			Pertemuan:  toPertemuanResponse(p.Pertemuan),
			SudahKlaim: p.Sertifikat != nil,
			Sertifikat: optionalSertifikat(p.Sertifikat),
		})
	}
	return resp
}
