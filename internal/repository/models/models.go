package models

import (
	"database/sql"
	"time"
)

// Admin maps the admins table.
type Admin struct {
	ID          string      `db:"id"`
	Email       string      `db:"email"`
	Nama        string      `db:"nama"`
	Role        string      `db:"role"`
	Permissions StringSlice `db:"permissions"`
	IsActive    bool        `db:"is_active"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

// Kontributor maps the kontributor table.
type Kontributor struct {
	ID        string         `db:"id"`
	NIM       string         `db:"nim"`
	Nama      string         `db:"nama"`
	Email     sql.NullString `db:"email"`
	TotalPoin int            `db:"total_poin"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// Pertemuan maps the pertemuan table.
type Pertemuan struct {
	ID            string    `db:"id"`
	Judul         string    `db:"judul"`
	Slug          string    `db:"slug"`
	Tanggal       time.Time `db:"tanggal"`
	HasSertifikat bool      `db:"has_sertifikat"`
	CreatedAt     time.Time `db:"created_at"`
}

// Absensi maps the absensi table.
type Absensi struct {
	ID            string    `db:"id"`
	PertemuanID   string    `db:"pertemuan_id"`
	KontributorID string    `db:"kontributor_id"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

// Quiz maps the quiz table.
type Quiz struct {
	ID        string         `db:"id"`
	Judul     string         `db:"judul"`
	Slug      string         `db:"slug"`
	Deskripsi string         `db:"deskripsi"`
	CreatedBy sql.NullString `db:"created_by"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// QuizQuestion maps the quiz_question table.
type QuizQuestion struct {
	ID           string `db:"id"`
	QuizID       string `db:"quiz_id"`
	Pertanyaan   string `db:"pertanyaan"`
	OpsiA        string `db:"opsi_a"`
	OpsiB        string `db:"opsi_b"`
	OpsiC        string `db:"opsi_c"`
	OpsiD        string `db:"opsi_d"`
	JawabanBenar string `db:"jawaban_benar"`
	Urutan       int    `db:"urutan"`
}

// QuizSession maps the quiz_session table.
type QuizSession struct {
	ID        string    `db:"id"`
	QuizID    string    `db:"quiz_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// QuizSubmission maps the quiz_submission table.
type QuizSubmission struct {
	ID          string    `db:"id"`
	SessionID   string    `db:"session_id"`
	NamaPeserta string    `db:"nama_peserta"`
	Jawaban     AnswerMap `db:"jawaban"`
	Skor        int       `db:"skor"`
	TotalSoal   int       `db:"total_soal"`
	SubmittedAt time.Time `db:"submitted_at"`
}

// Sertifikat maps the sertifikat table.
type Sertifikat struct {
	ID              string         `db:"id"`
	KontributorID   string         `db:"kontributor_id"`
	NomorSertifikat string         `db:"nomor_sertifikat"`
	Tipe            string         `db:"tipe"`
	PertemuanID     sql.NullString `db:"pertemuan_id"`
	TanggalTerbit   time.Time      `db:"tanggal_terbit"`
	CreatedAt       time.Time      `db:"created_at"`
}

// SertifikatDetail is a sertifikat row joined with contributor and meeting names.
type SertifikatDetail struct {
	Sertifikat
	NamaKontributor string         `db:"nama_kontributor"`
	JudulPertemuan  sql.NullString `db:"judul_pertemuan"`
}

// CodeRedeem maps the code_redeem table.
type CodeRedeem struct {
	ID           string       `db:"id"`
	Code         string       `db:"code"`
	Poin         int          `db:"poin"`
	MaxUsage     int          `db:"max_usage"`
	CurrentUsage int          `db:"current_usage"`
	IsActive     bool         `db:"is_active"`
	ExpiresAt    sql.NullTime `db:"expires_at"`
	CreatedAt    time.Time    `db:"created_at"`
}

// CodeRedeemUsage maps the code_redeem_usage table.
type CodeRedeemUsage struct {
	ID            string    `db:"id"`
	CodeID        string    `db:"code_id"`
	KontributorID string    `db:"kontributor_id"`
	RedeemedAt    time.Time `db:"redeemed_at"`
}

// ActivityLog maps the activity_log table.
type ActivityLog struct {
	ID        string         `db:"id"`
	AdminID   sql.NullString `db:"admin_id"`
	Action    string         `db:"action"`
	Entity    string         `db:"entity"`
	EntityID  sql.NullString `db:"entity_id"`
	Detail    JSONMap        `db:"detail"`
	CreatedAt time.Time      `db:"created_at"`
}

// PushSubscription maps the push_subscription table.
type PushSubscription struct {
	ID        string    `db:"id"`
	Endpoint  string    `db:"endpoint"`
	P256dh    string    `db:"p256dh"`
	Auth      string    `db:"auth"`
	CreatedAt time.Time `db:"created_at"`
}
