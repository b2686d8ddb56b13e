package dto

// KontributorResponse is a contributor with the derived tier
type KontributorResponse struct {
	ID        string `json:"id"`
	NIM       string `json:"nim"`
	Nama      string `json:"nama"`
	Email     string `json:"email,omitempty"`
	TotalPoin int    `json:"total_poin"`
	Tier      string `json:"tier"`
}

// KontributorProfileResponse adds progress towards the next tier.
type KontributorProfileResponse struct {
	KontributorResponse
	NextTier       string `json:"next_tier,omitempty"`
	PoinToNextTier int    `json:"poin_to_next_tier"`
}

// LeaderboardEntry is one ranked contributor.
type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	ID        string `json:"id"`
	NIM       string `json:"nim"`
	Nama      string `json:"nama"`
	TotalPoin int    `json:"total_poin"`
	Tier      string `json:"tier"`
}

// CreateKontributorRequest registers a contributor.
type CreateKontributorRequest struct {
	NIM   string `json:"nim" validate:"required,max=32"`
	Nama  string `json:"nama" validate:"required,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
}

// AdjustPoinRequest adds (or with a negative delta, removes) points.
type AdjustPoinRequest struct {
	Delta  int    `json:"delta" validate:"required,ne=0"`
	Alasan string `json:"alasan" validate:"max=200"`
}

// AdjustPoinResponse is the contributor's new total.
type AdjustPoinResponse struct {
	TotalPoin int    `json:"total_poin"`
	Tier      string `json:"tier"`
}
