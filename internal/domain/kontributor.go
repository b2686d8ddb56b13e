package domain

import (
	"strings"
	"time"
)

// Tier is a reward level derived from a contributor's point total. It is
// never persisted.
type Tier string

const (
	TierMember Tier = "Member"
	TierBronze Tier = "Bronze"
	TierSilver Tier = "Silver"
	TierGold   Tier = "Gold"
)

// Point thresholds at which each tier starts.
const (
	BronzeMinPoin = 100
	SilverMinPoin = 200
	GoldMinPoin   = 300
)

// TierForPoints maps a point total to its tier.
func TierForPoints(poin int) Tier {
	switch {
	case poin >= GoldMinPoin:
		return TierGold
	case poin >= SilverMinPoin:
		return TierSilver
	case poin >= BronzeMinPoin:
		return TierBronze
	default:
		return TierMember
	}
}

// NextTier returns the tier after t and the points needed to reach it from
// poin. For Gold it returns ("", 0).
func NextTier(poin int) (Tier, int) {
	switch TierForPoints(poin) {
	case TierMember:
		return TierBronze, BronzeMinPoin - poin
	case TierBronze:
		return TierSilver, SilverMinPoin - poin
	case TierSilver:
		return TierGold, GoldMinPoin - poin
	default:
		return "", 0
	}
}

// Kontributor is a registered community member accruing points.
type Kontributor struct {
	ID        string
	NIM       string
	Nama      string
	Email     string
	TotalPoin int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewKontributor creates a new Kontributor instance
func NewKontributor(nim, nama, email string) *Kontributor {
	now := time.Now()
	return &Kontributor{
		NIM:       strings.TrimSpace(nim),
		Nama:      strings.TrimSpace(nama),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (k *Kontributor) Tier() Tier {
	return TierForPoints(k.TotalPoin)
}

// Validate validates the contributor
func (k *Kontributor) Validate() error {
	var errs ValidationErrors
	if k.NIM == "" {
		errs = append(errs, NewMissingFieldError("nim"))
	}
	if k.Nama == "" {
		errs = append(errs, NewMissingFieldError("nama"))
	}
	if k.TotalPoin < 0 {
		errs = append(errs, NewInvalidFormatError("total_poin", k.TotalPoin))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
