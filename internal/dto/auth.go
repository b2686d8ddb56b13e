package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GoogleUserInfo holds user information obtained from Google.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// AuthClaims defines the custom claims for the admin session JWT.
type AuthClaims struct {
	AdminID string `json:"admin_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// AdminResponse is the signed-in admin profile.
type AdminResponse struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Nama        string   `json:"nama"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// SessionResponse is returned after a successful sign in
// @Description Admin session token
type SessionResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Admin     AdminResponse `json:"admin"`
}
