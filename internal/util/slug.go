package util

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// DefaultSlugMaxLen caps slug length, suffix included.
const DefaultSlugMaxLen = 160

const maxSlugAttempts = 1000

// GenerateSlug lower-cases s and turns every run of non letters/digits into
// a single "-", trimmed at both ends.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// cutToLen trims s to at most n bytes without leaving a broken rune or a
// trailing dash.
func cutToLen(s string, n int) string {
	if len(s) <= n {
		return strings.Trim(s, "-")
	}
	cut := s[:n]
	for len(cut) > 0 && !utf8Start(s, len(cut)) {
		cut = cut[:len(cut)-1]
	}
	return strings.Trim(cut, "-")
}

func utf8Start(s string, i int) bool {
	return i >= len(s) || s[i]&0xC0 != 0x80
}

// UniqueSlug slugifies base (or fallback when base is empty) and appends
// -2, -3, ... until taken reports the candidate free.
func UniqueSlug(ctx context.Context, base, fallback string, taken func(ctx context.Context, slug string) (bool, error)) (string, error) {
	slug := GenerateSlug(base)
	if slug == "" {
		slug = GenerateSlug(fallback)
	}
	if slug == "" {
		slug = "x"
	}
	slug = cutToLen(slug, DefaultSlugMaxLen)

	exists, err := taken(ctx, slug)
	if err != nil {
		return "", err
	}
	if !exists {
		return slug, nil
	}

	for i := 2; i < maxSlugAttempts; i++ {
		suffix := fmt.Sprintf("-%d", i)
		candidate := cutToLen(slug, DefaultSlugMaxLen-len(suffix)) + suffix
		exists, err = taken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", errors.New("failed to generate unique slug after many attempts")
}
