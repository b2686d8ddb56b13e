package dto

import "time"

// QuestionInput is one question in a create or import request.
type QuestionInput struct {
	Pertanyaan   string `json:"pertanyaan" validate:"required,max=2000"`
	OpsiA        string `json:"opsi_a" validate:"required,max=500"`
	OpsiB        string `json:"opsi_b" validate:"required,max=500"`
	OpsiC        string `json:"opsi_c" validate:"required,max=500"`
	OpsiD        string `json:"opsi_d" validate:"required,max=500"`
	JawabanBenar string `json:"jawaban_benar" validate:"required,answer_option"`
	Urutan       int    `json:"urutan" validate:"gte=0"`
}

// CreateQuizRequest represents the body for creating a quiz
// @Description Request body for creating a quiz
type CreateQuizRequest struct {
	Judul     string          `json:"judul" validate:"required,max=200"`
	Deskripsi string          `json:"deskripsi" validate:"max=2000"`
	Questions []QuestionInput `json:"questions" validate:"required,min=1,dive"`
}

// QuizResponse is the admin view of a quiz
// @Description Quiz information
type QuizResponse struct {
	ID        string                  `json:"id"`
	Judul     string                  `json:"judul"`
	Slug      string                  `json:"slug"`
	Deskripsi string                  `json:"deskripsi"`
	CreatedAt time.Time               `json:"created_at"`
	Questions []QuestionAdminResponse `json:"questions,omitempty"`
}

// QuestionAdminResponse includes the answer key and is admin only.
type QuestionAdminResponse struct {
	ID           string `json:"id"`
	Pertanyaan   string `json:"pertanyaan"`
	OpsiA        string `json:"opsi_a"`
	OpsiB        string `json:"opsi_b"`
	OpsiC        string `json:"opsi_c"`
	OpsiD        string `json:"opsi_d"`
	JawabanBenar string `json:"jawaban_benar"`
	Urutan       int    `json:"urutan"`
}

// GenerateLinkResponse is returned when a shareable quiz link is created.
type GenerateLinkResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	URL       string    `json:"url"`
}

// ActiveSessionResponse reports the live shareable link of a quiz, if any.
type ActiveSessionResponse struct {
	IsActive  bool       `json:"is_active"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	URL       string     `json:"url,omitempty"`
}

// PublicQuestionResponse is a question as shown to participants.
type PublicQuestionResponse struct {
	ID         string `json:"id"`
	Pertanyaan string `json:"pertanyaan"`
	OpsiA      string `json:"opsi_a"`
	OpsiB      string `json:"opsi_b"`
	OpsiC      string `json:"opsi_c"`
	OpsiD      string `json:"opsi_d"`
	Urutan     int    `json:"urutan"`
}

// SessionQuizResponse is the participant view of a quiz reached by token.
// @Description Quiz resolved from a session token, answer key removed
type SessionQuizResponse struct {
	SessionID string                   `json:"session_id"`
	ExpiresAt time.Time                `json:"expires_at"`
	Quiz      QuizInfo                 `json:"quiz"`
	Questions []PublicQuestionResponse `json:"questions"`
}

// QuizInfo is quiz metadata without questions.
type QuizInfo struct {
	ID        string `json:"id"`
	Judul     string `json:"judul"`
	Deskripsi string `json:"deskripsi"`
}

// SubmitQuizRequest represents a participant's answer sheet
// @Description Request body for submitting quiz answers
type SubmitQuizRequest struct {
	SessionID   string            `json:"session_id" validate:"required"`
	NamaPeserta string            `json:"nama_peserta" validate:"required,max=100"`
	Jawaban     map[string]string `json:"jawaban" validate:"required"`
}

// SubmitQuizResponse is the graded result
type SubmitQuizResponse struct {
	Success    bool `json:"success"`
	Skor       int  `json:"skor"`
	TotalSoal  int  `json:"total_soal"`
	Persentase int  `json:"persentase"`
}

// SubmissionResponse is one row of a quiz's result list.
type SubmissionResponse struct {
	ID          string    `json:"id"`
	NamaPeserta string    `json:"nama_peserta"`
	Skor        int       `json:"skor"`
	TotalSoal   int       `json:"total_soal"`
	Persentase  int       `json:"persentase"`
	SubmittedAt time.Time `json:"submitted_at"`
}
