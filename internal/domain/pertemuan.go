package domain

import (
	"strings"
	"time"
)

// Attendance statuses.
const (
	StatusHadir = "hadir"
	StatusIzin  = "izin"
	StatusAlpha = "alpha"
)

func IsValidAbsensiStatus(s string) bool {
	switch s {
	case StatusHadir, StatusIzin, StatusAlpha:
		return true
	}
	return false
}

// Pertemuan is a tracked meeting with an attendance roster.
type Pertemuan struct {
	ID            string
	Judul         string
	Slug          string
	Tanggal       time.Time
	HasSertifikat bool
	CreatedAt     time.Time
}

// NewPertemuan creates a new Pertemuan instance
func NewPertemuan(judul string, tanggal time.Time, hasSertifikat bool) *Pertemuan {
	return &Pertemuan{
		Judul:         strings.TrimSpace(judul),
		Tanggal:       tanggal,
		HasSertifikat: hasSertifikat,
		CreatedAt:     time.Now(),
	}
}

// Absensi links a contributor to a meeting with an attendance status.
type Absensi struct {
	ID            string
	PertemuanID   string
	KontributorID string
	Status        string
	CreatedAt     time.Time
}
