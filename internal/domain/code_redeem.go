package domain

import (
	"strings"
	"time"
)

// CodeRedeem is a reward code worth Poin points, usable MaxUsage times.
type CodeRedeem struct {
	ID           string
	Code         string
	Poin         int
	MaxUsage     int
	CurrentUsage int
	IsActive     bool
	ExpiresAt    *time.Time
	CreatedAt    time.Time
}

// CanonicalCode is the stored, case-insensitive form of a code.
func CanonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsExpired reports whether the code has an expiry at or before now.
func (c *CodeRedeem) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(*c.ExpiresAt)
}

// HasQuota reports whether another redemption fits in MaxUsage.
func (c *CodeRedeem) HasQuota() bool {
	return c.CurrentUsage < c.MaxUsage
}

// Validate validates a code before it is stored.
func (c *CodeRedeem) Validate() error {
	var errs ValidationErrors
	if c.Code == "" {
		errs = append(errs, NewMissingFieldError("code"))
	}
	if c.Poin <= 0 {
		errs = append(errs, NewInvalidFormatError("poin", c.Poin))
	}
	if c.MaxUsage <= 0 {
		errs = append(errs, NewInvalidFormatError("max_usage", c.MaxUsage))
	}
	if c.CurrentUsage < 0 || c.CurrentUsage > c.MaxUsage {
		errs = append(errs, NewInvalidFormatError("current_usage", c.CurrentUsage))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CodeRedeemUsage records one contributor redeeming one code.
type CodeRedeemUsage struct {
	ID            string
	CodeID        string
	KontributorID string
	RedeemedAt    time.Time
}

// RedeemResult is returned to the contributor after a successful claim.
type RedeemResult struct {
	Nama        string
	PoinDidapat int
	TotalPoin   int
}
