package repository

import (
	"context"
	"fmt"
	"time"

	"dcn-community/internal/domain"
	"dcn-community/internal/repository/models"
	"dcn-community/internal/util"

	"github.com/jmoiron/sqlx"
)

// QuizSessionDatabaseAdapter implements domain.QuizSessionRepository using sqlx
type QuizSessionDatabaseAdapter struct {
	db DBTX
}

// NewQuizSessionDatabaseAdapter creates a new instance of QuizSessionDatabaseAdapter
func NewQuizSessionDatabaseAdapter(db *sqlx.DB) domain.QuizSessionRepository {
	return &QuizSessionDatabaseAdapter{db: db}
}

const sessionColumns = `id, quiz_id, token, expires_at, created_at`

// CreateSession implements domain.QuizSessionRepository
func (a *QuizSessionDatabaseAdapter) CreateSession(ctx context.Context, s *domain.QuizSession) error {
	if s.ID == "" {
		s.ID = util.NewULID()
	}
	query := `INSERT INTO quiz_session (id, quiz_id, token, expires_at, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := GetExecutor(ctx, a.db).ExecContext(ctx, query, s.ID, s.QuizID, s.Token, s.ExpiresAt, s.CreatedAt); err != nil {
		return fmt.Errorf("failed to create quiz session: %w", err)
	}
	return nil
}

func (a *QuizSessionDatabaseAdapter) getSession(ctx context.Context, where string, arg interface{}) (*domain.QuizSession, error) {
	var m models.QuizSession
	query := `SELECT ` + sessionColumns + ` FROM quiz_session WHERE ` + where
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, arg); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz session: %w", err)
	}
	return toDomainSession(&m), nil
}

// GetSessionByID implements domain.QuizSessionRepository
func (a *QuizSessionDatabaseAdapter) GetSessionByID(ctx context.Context, id string) (*domain.QuizSession, error) {
	return a.getSession(ctx, "id = $1", id)
}

// GetSessionByToken implements domain.QuizSessionRepository
func (a *QuizSessionDatabaseAdapter) GetSessionByToken(ctx context.Context, token string) (*domain.QuizSession, error) {
	return a.getSession(ctx, "token = $1", token)
}

// GetLatestActiveSession implements domain.QuizSessionRepository
func (a *QuizSessionDatabaseAdapter) GetLatestActiveSession(ctx context.Context, quizID string, now time.Time) (*domain.QuizSession, error) {
	var m models.QuizSession
	query := `SELECT s.id, s.quiz_id, s.token, s.expires_at, s.created_at
		FROM quiz_session s
		WHERE s.quiz_id = $1
		  AND s.expires_at > $2
		  AND NOT EXISTS (SELECT 1 FROM quiz_submission sub WHERE sub.session_id = s.id)
		ORDER BY s.created_at DESC
		LIMIT 1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, quizID, now); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active quiz session: %w", err)
	}
	return toDomainSession(&m), nil
}

// HasSubmission implements domain.QuizSessionRepository
func (a *QuizSessionDatabaseAdapter) HasSubmission(ctx context.Context, sessionID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM quiz_submission WHERE session_id = $1)`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &exists, query, sessionID); err != nil {
		return false, fmt.Errorf("failed to check quiz submission: %w", err)
	}
	return exists, nil
}

// HasSubmissionByName implements domain.QuizSessionRepository
func (a *QuizSessionDatabaseAdapter) HasSubmissionByName(ctx context.Context, sessionID, namaPeserta string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM quiz_submission WHERE session_id = $1 AND nama_peserta = $2)`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &exists, query, sessionID, namaPeserta); err != nil {
		return false, fmt.Errorf("failed to check quiz submission: %w", err)
	}
	return exists, nil
}

// CreateSubmission implements domain.QuizSessionRepository
func (a *QuizSessionDatabaseAdapter) CreateSubmission(ctx context.Context, s *domain.QuizSubmission) error {
	if s.ID == "" {
		s.ID = util.NewULID()
	}
	jawaban, err := models.AnswerMap(s.Jawaban).Value()
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}
	query := `INSERT INTO quiz_submission (id, session_id, nama_peserta, jawaban, skor, total_soal, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = GetExecutor(ctx, a.db).ExecContext(ctx, query,
		s.ID, s.SessionID, s.NamaPeserta, jawaban, s.Skor, s.TotalSoal, s.SubmittedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewAlreadySubmittedError("Kuis ini sudah pernah dikerjakan")
		}
		return fmt.Errorf("failed to create quiz submission: %w", err)
	}
	return nil
}

// ListSubmissions implements domain.QuizSessionRepository
func (a *QuizSessionDatabaseAdapter) ListSubmissions(ctx context.Context, quizID string) ([]*domain.QuizSubmission, error) {
	var rows []models.QuizSubmission
	query := `SELECT sub.id, sub.session_id, sub.nama_peserta, sub.jawaban, sub.skor, sub.total_soal, sub.submitted_at
		FROM quiz_submission sub
		JOIN quiz_session s ON s.id = sub.session_id
		WHERE s.quiz_id = $1
		ORDER BY sub.submitted_at ASC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to list quiz submissions: %w", err)
	}
	out := make([]*domain.QuizSubmission, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainSubmission(&rows[i]))
	}
	return out, nil
}

// CountSubmissionsByName implements domain.QuizSessionRepository. The match
// is a case-insensitive substring on the free-text participant name.
func (a *QuizSessionDatabaseAdapter) CountSubmissionsByName(ctx context.Context, nama string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM quiz_submission WHERE nama_peserta ILIKE '%' || $1 || '%'`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &n, query, escapeLike(nama)); err != nil {
		return 0, fmt.Errorf("failed to count quiz submissions: %w", err)
	}
	return n, nil
}
