package util

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kuis Dasar Go", "kuis-dasar-go"},
		{"  Pertemuan #3: API & DB!  ", "pertemuan-3-api-db"},
		{"---", ""},
		{"Ünïcode Tëst", "ünïcode-tëst"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.in), tt.in)
	}
}

func TestUniqueSlug(t *testing.T) {
	ctx := context.Background()
	existing := map[string]bool{"kuis-go": true, "kuis-go-2": true}
	taken := func(_ context.Context, s string) (bool, error) { return existing[s], nil }

	slug, err := UniqueSlug(ctx, "Kuis Go", "quiz", taken)
	require.NoError(t, err)
	assert.Equal(t, "kuis-go-3", slug)

	slug, err = UniqueSlug(ctx, "!!!", "quiz", taken)
	require.NoError(t, err)
	assert.Equal(t, "quiz", slug)

	long := strings.Repeat("a", 300)
	slug, err = UniqueSlug(ctx, long, "quiz", taken)
	require.NoError(t, err)
	assert.Len(t, slug, DefaultSlugMaxLen)
}

func TestUniqueSlug_PropagatesError(t *testing.T) {
	boom := errors.New("db down")
	_, err := UniqueSlug(context.Background(), "a", "b", func(context.Context, string) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestNewSessionToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := NewSessionToken()
		require.NoError(t, err)
		assert.Len(t, tok, 43)
		assert.True(t, IsSessionToken(tok))
		assert.False(t, seen[tok])
		seen[tok] = true
	}
	assert.False(t, IsSessionToken("short"))
	assert.False(t, IsSessionToken(strings.Repeat("*", 43)))
}

func TestRandomBase36(t *testing.T) {
	s, err := RandomBase36(6)
	require.NoError(t, err)
	assert.Len(t, s, 6)
	for _, r := range s {
		assert.True(t, strings.ContainsRune(base36Alphabet, r))
	}
}

func TestNewULID(t *testing.T) {
	a := NewULID()
	b := NewULID()
	assert.True(t, IsULID(a))
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
	assert.False(t, IsULID("not-a-ulid"))
}
