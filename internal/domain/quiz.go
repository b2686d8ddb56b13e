package domain

import (
	"math"
	"strings"
	"time"
)

// Valid answer letters for a multiple choice question.
const (
	OptionA = "A"
	OptionB = "B"
	OptionC = "C"
	OptionD = "D"
)

// Quiz is a multiple choice quiz administered through single-use session links.
type Quiz struct {
	ID        string
	Judul     string
	Slug      string
	Deskripsi string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
	Questions []*QuizQuestion
}

// NewQuiz creates a new Quiz instance
func NewQuiz(judul, deskripsi, createdBy string) *Quiz {
	now := time.Now()
	return &Quiz{
		Judul:     strings.TrimSpace(judul),
		Deskripsi: strings.TrimSpace(deskripsi),
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the quiz
func (q *Quiz) Validate() error {
	var errs ValidationErrors
	if q.Judul == "" {
		errs = append(errs, NewMissingFieldError("judul"))
	}
	for _, question := range q.Questions {
		if err := question.Validate(); err != nil {
			if verrs, ok := err.(ValidationErrors); ok {
				errs = append(errs, verrs...)
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// QuizQuestion is one question of a quiz. JawabanBenar is the answer key and
// must never reach the participant-facing read path.
type QuizQuestion struct {
	ID           string
	QuizID       string
	Pertanyaan   string
	OpsiA        string
	OpsiB        string
	OpsiC        string
	OpsiD        string
	JawabanBenar string
	Urutan       int
}

// IsValidOption reports whether s names one of the four options.
func IsValidOption(s string) bool {
	switch NormalizeOption(s) {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

// NormalizeOption trims and upper-cases an answer letter.
func NormalizeOption(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Validate validates the question
func (q *QuizQuestion) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(q.Pertanyaan) == "" {
		errs = append(errs, NewMissingFieldError("pertanyaan"))
	}
	options := []struct{ field, value string }{
		{"opsi_a", q.OpsiA}, {"opsi_b", q.OpsiB}, {"opsi_c", q.OpsiC}, {"opsi_d", q.OpsiD},
	}
	for _, opt := range options {
		if strings.TrimSpace(opt.value) == "" {
			errs = append(errs, NewMissingFieldError(opt.field))
		}
	}
	if !IsValidOption(q.JawabanBenar) {
		errs = append(errs, NewInvalidFormatError("jawaban_benar", q.JawabanBenar))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// QuizSession is a time-boxed access token for one quiz attempt.
type QuizSession struct {
	ID        string
	QuizID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewQuizSession creates a session for quizID that expires ttl after now.
func NewQuizSession(quizID, token string, now time.Time, ttl time.Duration) *QuizSession {
	return &QuizSession{
		QuizID:    quizID,
		Token:     token,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

// IsExpired reports whether the session is expired at now. The boundary
// instant itself counts as expired.
func (s *QuizSession) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// QuizSubmission is the single scored attempt attached to a session.
type QuizSubmission struct {
	ID          string
	SessionID   string
	NamaPeserta string
	Jawaban     map[string]string
	Skor        int
	TotalSoal   int
	SubmittedAt time.Time
}

// Persentase returns the rounded percentage score of the submission.
func (s *QuizSubmission) Persentase() int {
	return Percentage(s.Skor, s.TotalSoal)
}

// ScoreResult is the outcome of grading one answer sheet.
type ScoreResult struct {
	Skor       int
	TotalSoal  int
	Persentase int
}

// ScoreAnswers grades jawaban (question id to selected option) against the
// answer key carried by questions.
func ScoreAnswers(questions []*QuizQuestion, jawaban map[string]string) ScoreResult {
	skor := 0
	for _, q := range questions {
		selected, ok := jawaban[q.ID]
		if !ok {
			continue
		}
		if NormalizeOption(selected) == NormalizeOption(q.JawabanBenar) {
			skor++
		}
	}
	return ScoreResult{
		Skor:       skor,
		TotalSoal:  len(questions),
		Persentase: Percentage(skor, len(questions)),
	}
}

// Percentage returns round(100*part/total), half away from zero. A zero
// total yields 0.
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}
