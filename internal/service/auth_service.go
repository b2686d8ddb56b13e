package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"dcn-community/internal/config"
	"dcn-community/internal/domain"
	"dcn-community/internal/dto"
	"dcn-community/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var (
	ErrInvalidAuthState      = errors.New("invalid oauth state")
	ErrFailedToExchangeToken = errors.New("failed to exchange oauth token")
	ErrFailedToGetUserInfo   = errors.New("failed to get user info from google")
	ErrInvalidJWTToken       = errors.New("invalid jwt token")
)

// AuthService defines admin sign-in and session validation.
type AuthService interface {
	GetGoogleLoginURL(state string) string
	// HandleGoogleCallback signs in the admin owning the Google account and
	// returns a session token.
	HandleGoogleCallback(ctx context.Context, code, receivedState, expectedState string) (*dto.SessionResponse, error)
	CreateJWT(admin *domain.Admin) (string, time.Time, error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	// Authenticate resolves a session token to an active admin.
	Authenticate(ctx context.Context, tokenString string) (*domain.Admin, error)
}

type authServiceImpl struct {
	adminRepo    domain.AdminRepository
	oauth2Config *oauth2.Config
	jwtCfg       config.JWTConfig
	now          func() time.Time
	// userInfo fetches the Google profile for an exchanged token.
	userInfo func(ctx context.Context, token *oauth2.Token) (*dto.GoogleUserInfo, error)
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(adminRepo domain.AdminRepository, cfg *config.Config) (AuthService, error) {
	if len(cfg.JWT.SecretKey) < 32 {
		return nil, errors.New("jwt secret key must be at least 32 bytes long")
	}
	s := &authServiceImpl{
		adminRepo: adminRepo,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleOAuth.ClientID,
			ClientSecret: cfg.GoogleOAuth.ClientSecret,
			RedirectURL:  cfg.GoogleOAuth.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		jwtCfg: cfg.JWT,
		now:    time.Now,
	}
	s.userInfo = s.fetchGoogleUserInfo
	return s, nil
}

func (s *authServiceImpl) GetGoogleLoginURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *authServiceImpl) HandleGoogleCallback(ctx context.Context, code, receivedState, expectedState string) (*dto.SessionResponse, error) {
	if receivedState == "" || receivedState != expectedState {
		return nil, domain.NewError(domain.CodeUnauthorized, "Sesi login tidak valid, silakan coba lagi", ErrInvalidAuthState)
	}

	googleToken, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, domain.NewError(domain.CodeUnauthorized, "Gagal masuk dengan Google", fmt.Errorf("%w: %v", ErrFailedToExchangeToken, err))
	}
	info, err := s.userInfo(ctx, googleToken)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get google user info", err)
	}
	return s.signIn(ctx, info)
}

// signIn issues a session for an already verified Google identity.
func (s *authServiceImpl) signIn(ctx context.Context, info *dto.GoogleUserInfo) (*dto.SessionResponse, error) {
	if info == nil || info.Email == "" {
		return nil, domain.NewUnauthorizedError("Akun Google tidak memiliki email")
	}
	admin, err := s.adminRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get admin", err)
	}
	if admin == nil || !admin.IsActive {
		logger.Get().Warn("Sign in rejected for non-admin account", zap.String("email", info.Email))
		return nil, domain.NewForbiddenError("Akun tidak terdaftar sebagai admin")
	}

	token, expiresAt, err := s.CreateJWT(admin)
	if err != nil {
		return nil, domain.NewInternalError("Failed to create session token", err)
	}
	logger.Get().Info("Admin signed in", zap.String("adminID", admin.ID), zap.String("email", admin.Email))
	return &dto.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     ToAdminResponse(admin),
	}, nil
}

func (s *authServiceImpl) fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*dto.GoogleUserInfo, error) {
	client := s.oauth2Config.Client(ctx, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetUserInfo, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrFailedToGetUserInfo, resp.StatusCode)
	}

	var info dto.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	if !info.VerifiedEmail {
		return nil, fmt.Errorf("%w: email not verified", ErrFailedToGetUserInfo)
	}
	return &info, nil
}

func (s *authServiceImpl) CreateJWT(admin *domain.Admin) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.jwtCfg.SessionTTL)
	claims := dto.AuthClaims{
		AdminID: admin.ID,
		Role:    admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   admin.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtCfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Debug("JWT token expired", zap.Error(err))
		} else {
			logger.Get().Warn("JWT validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	if claims, ok := token.Claims.(*dto.AuthClaims); ok && token.Valid && claims.AdminID != "" {
		return claims, nil
	}
	return nil, ErrInvalidJWTToken
}

func (s *authServiceImpl) Authenticate(ctx context.Context, tokenString string) (*domain.Admin, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, domain.NewUnauthorizedError("Silakan login terlebih dahulu")
	}
	claims, err := s.ValidateJWT(ctx, tokenString)
	if err != nil {
		return nil, domain.NewError(domain.CodeUnauthorized, "Sesi tidak valid atau sudah berakhir", err)
	}
	admin, err := s.adminRepo.GetByID(ctx, claims.AdminID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get admin", err)
	}
	if admin == nil {
		return nil, domain.NewUnauthorizedError("Sesi tidak valid atau sudah berakhir")
	}
	if !admin.IsActive {
		return nil, domain.NewForbiddenError("Akun admin tidak aktif")
	}
	return admin, nil
}

// ToAdminResponse converts an admin into its API representation.
func ToAdminResponse(a *domain.Admin) dto.AdminResponse {
	perms := a.Permissions
	if a.Role == domain.RoleSuperAdmin {
		perms = domain.AllPermissions
	}
	if perms == nil {
		perms = []string{}
	}
	return dto.AdminResponse{
		ID:          a.ID,
		Email:       a.Email,
		Nama:        a.Nama,
		Role:        a.Role,
		Permissions: perms,
	}
}
