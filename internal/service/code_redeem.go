package service

import (
	"context"
	"strings"
	"time"

	"dcn-community/internal/domain"
	"dcn-community/internal/dto"
	"dcn-community/internal/logger"
	"dcn-community/internal/metrics"
	"dcn-community/internal/util"

	"go.uber.org/zap"
)

// generatedCodeLength is used when an admin creates a code without naming it.
const generatedCodeLength = 8

// CodeRedeemService defines reward code redemption and management.
type CodeRedeemService interface {
	Claim(ctx context.Context, req *dto.ClaimCodeRequest) (*dto.ClaimCodeResponse, error)
	CreateCode(ctx context.Context, adminID string, req *dto.CreateCodeRequest) (*dto.CodeRedeemResponse, error)
	ListCodes(ctx context.Context) ([]dto.CodeRedeemResponse, error)
	SetActive(ctx context.Context, adminID, id string, active bool) (*dto.CodeRedeemResponse, error)
	ListUsage(ctx context.Context, id string) ([]dto.CodeUsageResponse, error)
}

type codeRedeemService struct {
	codeRepo        domain.CodeRedeemRepository
	kontributorRepo domain.KontributorRepository
	txManager       domain.TransactionManager
	leaderboard     LeaderboardInvalidator
	activity        ActivityLogger
	now             func() time.Time
}

// NewCodeRedeemService creates a new instance of CodeRedeemService
func NewCodeRedeemService(
	codeRepo domain.CodeRedeemRepository,
	kontributorRepo domain.KontributorRepository,
	txManager domain.TransactionManager,
	leaderboard LeaderboardInvalidator,
	activity ActivityLogger,
) CodeRedeemService {
	return &codeRedeemService{
		codeRepo:        codeRepo,
		kontributorRepo: kontributorRepo,
		txManager:       txManager,
		leaderboard:     leaderboard,
		activity:        activity,
		now:             time.Now,
	}
}

// Claim redeems code for the contributor with nim. All writes share one
// transaction; the code row stays locked until it commits.
func (s *codeRedeemService) Claim(ctx context.Context, req *dto.ClaimCodeRequest) (*dto.ClaimCodeResponse, error) {
	code := domain.CanonicalCode(req.Code)
	nim := strings.TrimSpace(req.NIM)
	if code == "" || nim == "" {
		return nil, domain.NewInvalidInputError("Code dan NIM wajib diisi")
	}

	var (
		result    domain.RedeemResult
		redeemed  *domain.CodeRedeem
		kontribID string
	)
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		k, err := s.kontributorRepo.GetByNIM(txCtx, nim)
		if err != nil {
			return domain.NewInternalError("Failed to get kontributor", err)
		}
		if k == nil {
			return domain.NewNotFoundError("NIM tidak terdaftar")
		}

		c, err := s.codeRepo.GetByCodeForUpdate(txCtx, code)
		if err != nil {
			return domain.NewInternalError("Failed to get code", err)
		}
		if c == nil {
			return domain.NewNotFoundError("Code tidak ditemukan")
		}
		if !c.IsActive {
			return domain.NewError(domain.CodeCodeInactive, "Code sudah tidak aktif", nil)
		}
		if c.IsExpired(s.now()) {
			return domain.NewError(domain.CodeCodeExpired, "Code sudah kedaluwarsa", nil)
		}
		if !c.HasQuota() {
			return domain.NewError(domain.CodeQuotaExhausted, "Kuota code sudah habis", nil)
		}
		used, err := s.codeRepo.HasUsage(txCtx, c.ID, k.ID)
		if err != nil {
			return domain.NewInternalError("Failed to check code usage", err)
		}
		if used {
			return domain.NewError(domain.CodeAlreadyClaimed, "Anda sudah pernah menggunakan code ini", nil)
		}

		// The unique (code_id, kontributor_id) insert is the gate under concurrency.
		if err := s.codeRepo.InsertUsage(txCtx, &domain.CodeRedeemUsage{
			CodeID:        c.ID,
			KontributorID: k.ID,
			RedeemedAt:    s.now(),
		}); err != nil {
			if domain.IsCode(err, domain.CodeAlreadyClaimed) {
				return err
			}
			return domain.NewInternalError("Failed to save code usage", err)
		}
		count, err := s.codeRepo.CountUsage(txCtx, c.ID)
		if err != nil {
			return domain.NewInternalError("Failed to count code usage", err)
		}
		if count > c.MaxUsage {
			return domain.NewError(domain.CodeQuotaExhausted, "Kuota code sudah habis", nil)
		}
		if err := s.codeRepo.SetCurrentUsage(txCtx, c.ID, count); err != nil {
			return domain.NewInternalError("Failed to update code usage", err)
		}
		total, err := s.kontributorRepo.AddPoin(txCtx, k.ID, c.Poin)
		if err != nil {
			return domain.NewInternalError("Failed to add kontributor poin", err)
		}

		result = domain.RedeemResult{Nama: k.Nama, PoinDidapat: c.Poin, TotalPoin: total}
		redeemed = c
		kontribID = k.ID
		return nil
	})
	if err != nil {
		metrics.CodeRedemptions.WithLabelValues(redemptionOutcome(err)).Inc()
		return nil, err
	}

	metrics.CodeRedemptions.WithLabelValues("ok").Inc()
	s.leaderboard.InvalidateLeaderboard(ctx)
	s.activity.Log(ctx, &domain.ActivityLog{
		Action:   "code_redeem.claim",
		Entity:   "code_redeem",
		EntityID: redeemed.ID,
		Detail: map[string]interface{}{
			"code":           redeemed.Code,
			"kontributor_id": kontribID,
			"poin":           redeemed.Poin,
		},
	})
	logger.Get().Info("Code redeemed",
		zap.String("code", redeemed.Code),
		zap.String("kontributorID", kontribID),
		zap.Int("totalPoin", result.TotalPoin))

	return &dto.ClaimCodeResponse{
		Success:     true,
		Message:     "Code berhasil digunakan",
		Nama:        result.Nama,
		PoinDidapat: result.PoinDidapat,
		TotalPoin:   result.TotalPoin,
	}, nil
}

func redemptionOutcome(err error) string {
	de, ok := domain.AsDomainError(err)
	if !ok {
		return "error"
	}
	switch de.Code {
	case domain.CodeNotFound:
		return "not_found"
	case domain.CodeCodeInactive:
		return "inactive"
	case domain.CodeCodeExpired:
		return "expired"
	case domain.CodeQuotaExhausted:
		return "quota"
	case domain.CodeAlreadyClaimed:
		return "duplicate"
	case domain.CodeInvalidInput:
		return "invalid"
	default:
		return "error"
	}
}

func (s *codeRedeemService) CreateCode(ctx context.Context, adminID string, req *dto.CreateCodeRequest) (*dto.CodeRedeemResponse, error) {
	code := domain.CanonicalCode(req.Code)
	if code == "" {
		generated, err := util.RandomBase36(generatedCodeLength)
		if err != nil {
			return nil, domain.NewInternalError("Failed to generate code", err)
		}
		code = generated
	}
	c := &domain.CodeRedeem{
		Code:      code,
		Poin:      req.Poin,
		MaxUsage:  req.MaxUsage,
		IsActive:  true,
		ExpiresAt: req.ExpiresAt,
		CreatedAt: s.now(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.codeRepo.Create(ctx, c); err != nil {
		if domain.IsCode(err, domain.CodeConflict) {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to create code", err)
	}

	s.activity.Log(ctx, &domain.ActivityLog{
		AdminID:  adminID,
		Action:   "code_redeem.create",
		Entity:   "code_redeem",
		EntityID: c.ID,
		Detail:   map[string]interface{}{"code": c.Code, "poin": c.Poin, "max_usage": c.MaxUsage},
	})
	resp := toCodeResponse(c)
	return &resp, nil
}

func (s *codeRedeemService) ListCodes(ctx context.Context) ([]dto.CodeRedeemResponse, error) {
	codes, err := s.codeRepo.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list codes", err)
	}
	out := make([]dto.CodeRedeemResponse, 0, len(codes))
	for _, c := range codes {
		out = append(out, toCodeResponse(c))
	}
	return out, nil
}

func (s *codeRedeemService) SetActive(ctx context.Context, adminID, id string, active bool) (*dto.CodeRedeemResponse, error) {
	if err := s.codeRepo.SetActive(ctx, id, active); err != nil {
		if domain.IsCode(err, domain.CodeNotFound) {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to update code", err)
	}
	c, err := s.codeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get code", err)
	}
	if c == nil {
		return nil, domain.NewNotFoundError("Code tidak ditemukan")
	}

	s.activity.Log(ctx, &domain.ActivityLog{
		AdminID:  adminID,
		Action:   "code_redeem.toggle",
		Entity:   "code_redeem",
		EntityID: c.ID,
		Detail:   map[string]interface{}{"is_active": active},
	})
	resp := toCodeResponse(c)
	return &resp, nil
}

func (s *codeRedeemService) ListUsage(ctx context.Context, id string) ([]dto.CodeUsageResponse, error) {
	c, err := s.codeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get code", err)
	}
	if c == nil {
		return nil, domain.NewNotFoundError("Code tidak ditemukan")
	}
	usages, err := s.codeRepo.ListUsage(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list code usage", err)
	}
	out := make([]dto.CodeUsageResponse, 0, len(usages))
	for _, u := range usages {
		out = append(out, dto.CodeUsageResponse{
			ID:            u.ID,
			KontributorID: u.KontributorID,
			RedeemedAt:    u.RedeemedAt,
		})
	}
	return out, nil
}

func toCodeResponse(c *domain.CodeRedeem) dto.CodeRedeemResponse {
	return dto.CodeRedeemResponse{
		ID:           c.ID,
		Code:         c.Code,
		Poin:         c.Poin,
		MaxUsage:     c.MaxUsage,
		CurrentUsage: c.CurrentUsage,
		IsActive:     c.IsActive,
		ExpiresAt:    c.ExpiresAt,
		CreatedAt:    c.CreatedAt,
	}
}
