package service

import (
	"context"
	"time"

	"dcn-community/internal/cache"
	"dcn-community/internal/config"
	"dcn-community/internal/domain"
	"dcn-community/internal/dto"
	"dcn-community/internal/export"
	"dcn-community/internal/logger"

	"go.uber.org/zap"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
	exportLeaderboardLimit  = 10000
)

// LeaderboardInvalidator drops cached leaderboards after point changes.
type LeaderboardInvalidator interface {
	InvalidateLeaderboard(ctx context.Context)
}

// KontributorService defines contributor profile and leaderboard operations.
type KontributorService interface {
	LeaderboardInvalidator
	Leaderboard(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error)
	GetByNIM(ctx context.Context, nim string) (*dto.KontributorProfileResponse, error)
	Create(ctx context.Context, adminID string, req *dto.CreateKontributorRequest) (*dto.KontributorResponse, error)
	AdjustPoin(ctx context.Context, adminID, id string, req *dto.AdjustPoinRequest) (*dto.AdjustPoinResponse, error)
	ExportLeaderboard(ctx context.Context) ([]byte, string, error)
}

type kontributorService struct {
	repo     domain.KontributorRepository
	cache    domain.Cache
	activity ActivityLogger
	cfg      *config.Config
}

// NewKontributorService creates a new instance of KontributorService
func NewKontributorService(
	repo domain.KontributorRepository,
	cache domain.Cache,
	activity ActivityLogger,
	cfg *config.Config,
) KontributorService {
	return &kontributorService{
		repo:     repo,
		cache:    cache,
		activity: activity,
		cfg:      cfg,
	}
}

// normalizeLeaderboardLimit snaps limit to one of the cached page sizes.
func normalizeLeaderboardLimit(limit int) int {
	if limit <= 0 {
		return defaultLeaderboardLimit
	}
	for _, l := range cache.LeaderboardLimits {
		if limit <= l {
			return l
		}
	}
	return maxLeaderboardLimit
}

func (s *kontributorService) Leaderboard(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error) {
	requested := limit
	if requested <= 0 {
		requested = defaultLeaderboardLimit
	}
	if requested > maxLeaderboardLimit {
		requested = maxLeaderboardLimit
	}
	pageSize := normalizeLeaderboardLimit(requested)

	key := cache.LeaderboardKey(pageSize)
	var entries []dto.LeaderboardEntry
	if !cache.GetJSON(ctx, s.cache, key, &entries) {
		rows, err := s.repo.Leaderboard(ctx, pageSize)
		if err != nil {
			return nil, domain.NewInternalError("Failed to get leaderboard", err)
		}
		entries = toLeaderboard(rows)
		cache.SetJSON(ctx, s.cache, key, entries, s.cfg.Cache.LeaderboardTTL)
	}

	if len(entries) > requested {
		entries = entries[:requested]
	}
	return entries, nil
}

func (s *kontributorService) InvalidateLeaderboard(ctx context.Context) {
	keys := make([]string, 0, len(cache.LeaderboardLimits))
	for _, l := range cache.LeaderboardLimits {
		keys = append(keys, cache.LeaderboardKey(l))
	}
	cache.Invalidate(ctx, s.cache, keys...)
}

func (s *kontributorService) GetByNIM(ctx context.Context, nim string) (*dto.KontributorProfileResponse, error) {
	k, err := s.repo.GetByNIM(ctx, nim)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get kontributor", err)
	}
	if k == nil {
		return nil, domain.NewNotFoundError("NIM tidak terdaftar")
	}
	next, need := domain.NextTier(k.TotalPoin)
	resp := toKontributorResponse(k)
	resp.Email = ""
	return &dto.KontributorProfileResponse{
		KontributorResponse: resp,
		NextTier:            string(next),
		PoinToNextTier:      need,
	}, nil
}

func (s *kontributorService) Create(ctx context.Context, adminID string, req *dto.CreateKontributorRequest) (*dto.KontributorResponse, error) {
	k := domain.NewKontributor(req.NIM, req.Nama, req.Email)
	if err := k.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, k); err != nil {
		if domain.IsCode(err, domain.CodeConflict) {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to create kontributor", err)
	}
	s.InvalidateLeaderboard(ctx)
	s.activity.Log(ctx, &domain.ActivityLog{
		AdminID:  adminID,
		Action:   "kontributor.create",
		Entity:   "kontributor",
		EntityID: k.ID,
		Detail:   map[string]interface{}{"nim": k.NIM},
	})
	resp := toKontributorResponse(k)
	return &resp, nil
}

func (s *kontributorService) AdjustPoin(ctx context.Context, adminID, id string, req *dto.AdjustPoinRequest) (*dto.AdjustPoinResponse, error) {
	if req.Delta == 0 {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("delta")}
	}
	total, err := s.repo.AddPoin(ctx, id, req.Delta)
	if err != nil {
		if domain.IsCode(err, domain.CodeNotFound) {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to adjust kontributor poin", err)
	}
	s.InvalidateLeaderboard(ctx)
	s.activity.Log(ctx, &domain.ActivityLog{
		AdminID:  adminID,
		Action:   "kontributor.adjust_poin",
		Entity:   "kontributor",
		EntityID: id,
		Detail:   map[string]interface{}{"delta": req.Delta, "alasan": req.Alasan, "total_poin": total},
	})
	logger.Get().Info("Kontributor poin adjusted",
		zap.String("kontributorID", id),
		zap.Int("delta", req.Delta),
		zap.Int("totalPoin", total))
	return &dto.AdjustPoinResponse{TotalPoin: total, Tier: string(domain.TierForPoints(total))}, nil
}

func (s *kontributorService) ExportLeaderboard(ctx context.Context) ([]byte, string, error) {
	rows, err := s.repo.Leaderboard(ctx, exportLeaderboardLimit)
	if err != nil {
		return nil, "", domain.NewInternalError("Failed to get leaderboard", err)
	}
	data := make([][]interface{}, 0, len(rows))
	for _, e := range toLeaderboard(rows) {
		data = append(data, []interface{}{e.Rank, e.NIM, e.Nama, e.TotalPoin, e.Tier})
	}
	b, err := export.BuildWorkbook(export.SheetSpec{
		Title:  "Leaderboard",
		Header: []string{"Peringkat", "NIM", "Nama", "Total Poin", "Tier"},
		Rows:   data,
	})
	if err != nil {
		return nil, "", domain.NewInternalError("Failed to build leaderboard workbook", err)
	}
	return b, export.FileName("leaderboard", time.Now().Format("2006-01-02")), nil
}

// toLeaderboard ranks rows already ordered by total_poin. Equal totals share a rank.
func toLeaderboard(rows []*domain.Kontributor) []dto.LeaderboardEntry {
	out := make([]dto.LeaderboardEntry, 0, len(rows))
	rank := 0
	for i, k := range rows {
		if i == 0 || k.TotalPoin != rows[i-1].TotalPoin {
			rank = i + 1
		}
		out = append(out, dto.LeaderboardEntry{
			Rank:      rank,
			ID:        k.ID,
			NIM:       k.NIM,
			Nama:      k.Nama,
			TotalPoin: k.TotalPoin,
			Tier:      string(k.Tier()),
		})
	}
	return out
}

func toKontributorResponse(k *domain.Kontributor) dto.KontributorResponse {
	return dto.KontributorResponse{
		ID:        k.ID,
		NIM:       k.NIM,
		Nama:      k.Nama,
		Email:     k.Email,
		TotalPoin: k.TotalPoin,
		Tier:      string(k.Tier()),
	}
}
