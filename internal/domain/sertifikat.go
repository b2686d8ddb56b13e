package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Certificate kinds.
const (
	TipePertemuan = "pertemuan"
	TipeQuiz      = "quiz"
)

// NomorSuffixLength is the number of random base36 characters in a
// certificate number.
const NomorSuffixLength = 6

var nomorPattern = regexp.MustCompile(`^DCN-(PTM|QUZ)-\d{4}-[0-9A-Z]{6}$`)

func IsValidTipe(tipe string) bool {
	return tipe == TipePertemuan || tipe == TipeQuiz
}

// NomorPrefix returns the certificate number segment for tipe.
func NomorPrefix(tipe string) string {
	if tipe == TipePertemuan {
		return "PTM"
	}
	return "QUZ"
}

// FormatNomor builds "DCN-{PTM|QUZ}-{year}-{suffix}".
func FormatNomor(tipe string, year int, suffix string) string {
	return fmt.Sprintf("DCN-%s-%d-%s", NomorPrefix(tipe), year, suffix)
}

// IsWellFormedNomor reports whether s matches the certificate number format.
func IsWellFormedNomor(s string) bool {
	return nomorPattern.MatchString(s)
}

// Sertifikat is an issued certificate tied to attendance or quiz completion.
type Sertifikat struct {
	ID              string
	KontributorID   string
	NomorSertifikat string
	Tipe            string
	PertemuanID     string // set iff Tipe == TipePertemuan
	TanggalTerbit   time.Time
	CreatedAt       time.Time
}

// Validate checks the tipe/pertemuan_id pairing.
func (s *Sertifikat) Validate() error {
	var errs ValidationErrors
	if s.KontributorID == "" {
		errs = append(errs, NewMissingFieldError("kontributor_id"))
	}
	if !IsValidTipe(s.Tipe) {
		errs = append(errs, NewInvalidFormatError("tipe", s.Tipe))
	}
	if s.Tipe == TipePertemuan && s.PertemuanID == "" {
		errs = append(errs, NewMissingFieldError("pertemuan_id"))
	}
	if s.Tipe == TipeQuiz && s.PertemuanID != "" {
		errs = append(errs, NewInvalidFormatError("pertemuan_id", s.PertemuanID))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SertifikatDetail is the public view returned by verification.
type SertifikatDetail struct {
	Sertifikat
	NamaKontributor string
	JudulPertemuan  string
}

// PertemuanEligibility reports one certificate-eligible meeting.
type PertemuanEligibility struct {
	Pertemuan  *Pertemuan
	Sertifikat *Sertifikat // nil when not yet claimed
}

// QuizEligibility reports quiz certificate progress.
type QuizEligibility struct {
	JumlahQuiz int
	Minimal    int
	Eligible   bool
	Sertifikat *Sertifikat
}

// Eligibility is a contributor's certificate snapshot.
type Eligibility struct {
	Kontributor *Kontributor
	Pertemuan   []PertemuanEligibility
	Quiz        QuizEligibility
}
