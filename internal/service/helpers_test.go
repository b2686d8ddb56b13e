package service

import (
	"testing"
	"time"

	"dcn-community/internal/adapter"
	"dcn-community/internal/config"
	"dcn-community/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{PublicBaseURL: "https://dcn.test"},
		JWT: config.JWTConfig{
			SecretKey:  "testsecretkeydontuseinproduction32bytes!",
			SessionTTL: 24 * time.Hour,
		},
		Quiz: config.QuizConfig{
			SessionTTL:           time.Hour,
			CertificateThreshold: 5,
		},
		Cache: config.CacheConfig{
			LeaderboardTTL: time.Minute,
			VerifyTTL:      10 * time.Minute,
		},
	}
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, domain.Cache) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, adapter.NewRedisCacheAdapter(client)
}

func requireCode(t *testing.T, err error, code domain.ErrorCode) *domain.DomainError {
	t.Helper()
	require.Error(t, err)
	de, ok := domain.AsDomainError(err)
	require.True(t, ok, "expected a DomainError, got %T: %v", err, err)
	assert.Equal(t, code, de.Code)
	return de
}
