package dto

import "time"

// ClaimCodeRequest represents a code redemption
// @Description Request body for redeeming a code
type ClaimCodeRequest struct {
	Code string `json:"code"`
	NIM  string `json:"nim"`
}

// ClaimCodeResponse is returned after a successful redemption
type ClaimCodeResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Nama        string `json:"nama"`
	PoinDidapat int    `json:"poin_didapat"`
	TotalPoin   int    `json:"total_poin"`
}

// CreateCodeRequest represents a new reward code. An empty code is generated.
type CreateCodeRequest struct {
	Code      string     `json:"code" validate:"omitempty,alphanum,max=32"`
	Poin      int        `json:"poin" validate:"required,gt=0"`
	MaxUsage  int        `json:"max_usage" validate:"required,gt=0"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// ToggleCodeRequest enables or disables a code.
type ToggleCodeRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// CodeRedeemResponse is the admin view of a reward code
type CodeRedeemResponse struct {
	ID           string     `json:"id"`
	Code         string     `json:"code"`
	Poin         int        `json:"poin"`
	MaxUsage     int        `json:"max_usage"`
	CurrentUsage int        `json:"current_usage"`
	IsActive     bool       `json:"is_active"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CodeUsageResponse is one redemption of a code.
type CodeUsageResponse struct {
	ID            string    `json:"id"`
	KontributorID string    `json:"kontributor_id"`
	RedeemedAt    time.Time `json:"redeemed_at"`
}
