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

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx
type QuizDatabaseAdapter struct {
	db DBTX
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

const insertQuestionQuery = `INSERT INTO quiz_question
	(id, quiz_id, pertanyaan, opsi_a, opsi_b, opsi_c, opsi_d, jawaban_benar, urutan)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// CreateQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	exec := GetExecutor(ctx, a.db)
	if quiz.ID == "" {
		quiz.ID = util.NewULID()
	}
	now := time.Now()
	quiz.CreatedAt, quiz.UpdatedAt = now, now

	query := `INSERT INTO quiz (id, judul, slug, deskripsi, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := exec.ExecContext(ctx, query,
		quiz.ID, quiz.Judul, quiz.Slug, quiz.Deskripsi, util.StringToNullString(quiz.CreatedBy), quiz.CreatedAt, quiz.UpdatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("Slug kuis sudah digunakan")
		}
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return a.insertQuestions(ctx, exec, quiz.ID, quiz.Questions)
}

// AddQuestions implements domain.QuizRepository
func (a *QuizDatabaseAdapter) AddQuestions(ctx context.Context, quizID string, questions []*domain.QuizQuestion) error {
	return a.insertQuestions(ctx, GetExecutor(ctx, a.db), quizID, questions)
}

func (a *QuizDatabaseAdapter) insertQuestions(ctx context.Context, exec DBTX, quizID string, questions []*domain.QuizQuestion) error {
	for _, q := range questions {
		if q.ID == "" {
			q.ID = util.NewULID()
		}
		q.QuizID = quizID
		if _, err := exec.ExecContext(ctx, insertQuestionQuery,
			q.ID, q.QuizID, q.Pertanyaan, q.OpsiA, q.OpsiB, q.OpsiC, q.OpsiD, domain.NormalizeOption(q.JawabanBenar), q.Urutan,
		); err != nil {
			return fmt.Errorf("failed to insert quiz question: %w", err)
		}
	}
	return nil
}

// GetQuizByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var m models.Quiz
	query := `SELECT id, judul, slug, deskripsi, created_by, created_at, updated_at FROM quiz WHERE id = $1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, id); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by id: %w", err)
	}
	return toDomainQuiz(&m), nil
}

// GetQuestions implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuestions(ctx context.Context, quizID string) ([]*domain.QuizQuestion, error) {
	var rows []models.QuizQuestion
	query := `SELECT id, quiz_id, pertanyaan, opsi_a, opsi_b, opsi_c, opsi_d, jawaban_benar, urutan
		FROM quiz_question WHERE quiz_id = $1 ORDER BY urutan ASC, id ASC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to get quiz questions: %w", err)
	}
	out := make([]*domain.QuizQuestion, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainQuestion(&rows[i]))
	}
	return out, nil
}

// ListQuizzes implements domain.QuizRepository
func (a *QuizDatabaseAdapter) ListQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	var rows []models.Quiz
	query := `SELECT id, judul, slug, deskripsi, created_by, created_at, updated_at FROM quiz ORDER BY created_at DESC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	out := make([]*domain.Quiz, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainQuiz(&rows[i]))
	}
	return out, nil
}

// DeleteQuiz implements domain.QuizRepository. Sessions, questions and
// submissions go with it through ON DELETE CASCADE.
func (a *QuizDatabaseAdapter) DeleteQuiz(ctx context.Context, id string) error {
	res, err := GetExecutor(ctx, a.db).ExecContext(ctx, `DELETE FROM quiz WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return domain.NewNotFoundError("Kuis tidak ditemukan")
	}
	return nil
}

// SlugExists implements domain.QuizRepository
func (a *QuizDatabaseAdapter) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM quiz WHERE LOWER(slug) = LOWER($1))`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &exists, query, slug); err != nil {
		return false, fmt.Errorf("failed to check quiz slug: %w", err)
	}
	return exists, nil
}
