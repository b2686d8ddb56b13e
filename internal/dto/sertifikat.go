package dto

import "time"

// IssueSertifikatRequest represents a certificate claim
// @Description Request body for claiming a certificate
type IssueSertifikatRequest struct {
	KontributorID string `json:"kontributor_id" validate:"required"`
	Tipe          string `json:"tipe" validate:"required,oneof=pertemuan quiz"`
	PertemuanID   string `json:"pertemuan_id" validate:"required_if=Tipe pertemuan,excluded_if=Tipe quiz"`
}

// SertifikatResponse is an issued certificate
type SertifikatResponse struct {
	ID              string    `json:"id"`
	KontributorID   string    `json:"kontributor_id"`
	NomorSertifikat string    `json:"nomor_sertifikat"`
	Tipe            string    `json:"tipe"`
	PertemuanID     string    `json:"pertemuan_id,omitempty"`
	TanggalTerbit   time.Time `json:"tanggal_terbit"`
}

// IssueSertifikatResponse reports whether the certificate was newly created.
type IssueSertifikatResponse struct {
	Success    bool               `json:"success"`
	Created    bool               `json:"created"`
	Sertifikat SertifikatResponse `json:"sertifikat"`
}

// PertemuanEligibilityResponse is one certificate-eligible meeting.
type PertemuanEligibilityResponse struct {
	Pertemuan  PertemuanResponse   `json:"pertemuan"`
	SudahKlaim bool                `json:"sudah_klaim"`
	Sertifikat *SertifikatResponse `json:"sertifikat,omitempty"`
}

// QuizEligibilityResponse reports quiz certificate progress.
type QuizEligibilityResponse struct {
	JumlahQuiz int                 `json:"jumlah_quiz"`
	Minimal    int                 `json:"minimal"`
	Eligible   bool                `json:"eligible"`
	SudahKlaim bool                `json:"sudah_klaim"`
	Sertifikat *SertifikatResponse `json:"sertifikat,omitempty"`
}

// EligibilityResponse is a contributor's certificate snapshot
// @Description Certificate eligibility for a contributor
type EligibilityResponse struct {
	Kontributor KontributorResponse            `json:"kontributor"`
	Pertemuan   []PertemuanEligibilityResponse `json:"pertemuan"`
	Quiz        QuizEligibilityResponse        `json:"quiz"`
}

// VerifiedSertifikat is the public detail of a valid certificate.
type VerifiedSertifikat struct {
	NomorSertifikat string    `json:"nomor_sertifikat"`
	Tipe            string    `json:"tipe"`
	TanggalTerbit   time.Time `json:"tanggal_terbit"`
	Nama            string    `json:"nama"`
	JudulPertemuan  string    `json:"judul_pertemuan,omitempty"`
}

// VerifySertifikatResponse is returned for a valid certificate number.
type VerifySertifikatResponse struct {
	Valid      bool                `json:"valid"`
	Sertifikat *VerifiedSertifikat `json:"sertifikat,omitempty"`
}

// SertifikatListItem is one row of the admin certificate list.
type SertifikatListItem struct {
	SertifikatResponse
	NamaKontributor string `json:"nama_kontributor"`
	JudulPertemuan  string `json:"judul_pertemuan,omitempty"`
}
