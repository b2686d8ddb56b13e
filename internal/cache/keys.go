package cache

import (
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "dcn"
)

// GenerateCacheKey builds "dcn:service:object:id", with optional params
// joined by "_" as a final segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// ActiveSessionKey caches the current shareable session of a quiz.
func ActiveSessionKey(quizID string) string {
	return GenerateCacheKey("quiz", "active_session", quizID)
}

// SertifikatVerifyKey caches a positive certificate verification.
func SertifikatVerifyKey(nomor string) string {
	return GenerateCacheKey("sertifikat", "verify", nomor)
}

// LeaderboardKey caches one leaderboard page size.
func LeaderboardKey(limit int) string {
	return GenerateCacheKey("kontributor", "leaderboard", strconv.Itoa(limit))
}

// LeaderboardLimits are the page sizes served from cache; invalidation
// clears each of them.
var LeaderboardLimits = []int{10, 20, 50, 100}
