package service

import (
	"context"
	"strings"
	"time"

	"dcn-community/internal/domain"
	"dcn-community/internal/dto"
	"dcn-community/internal/export"
	"dcn-community/internal/logger"
	"dcn-community/internal/util"

	"go.uber.org/zap"
)

// QuizAdminService defines quiz management operations for admins.
type QuizAdminService interface {
	CreateQuiz(ctx context.Context, createdBy string, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	// AddQuestions appends questions to an existing quiz and returns how many were added.
	AddQuestions(ctx context.Context, quizID string, questions []dto.QuestionInput) (int, error)
	ListQuizzes(ctx context.Context) ([]dto.QuizResponse, error)
	GetQuizDetail(ctx context.Context, id string) (*dto.QuizResponse, error)
	DeleteQuiz(ctx context.Context, id string) error
	ListSubmissions(ctx context.Context, quizID string) ([]dto.SubmissionResponse, error)
	// ExportSubmissions returns an xlsx workbook and its file name.
	ExportSubmissions(ctx context.Context, quizID string) ([]byte, string, error)
}

type quizAdminService struct {
	quizRepo    domain.QuizRepository
	sessionRepo domain.QuizSessionRepository
	txManager   domain.TransactionManager
}

// NewQuizAdminService creates a new instance of QuizAdminService
func NewQuizAdminService(
	quizRepo domain.QuizRepository,
	sessionRepo domain.QuizSessionRepository,
	txManager domain.TransactionManager,
) QuizAdminService {
	return &quizAdminService{
		quizRepo:    quizRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
	}
}

func (s *quizAdminService) CreateQuiz(ctx context.Context, createdBy string, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	quiz := domain.NewQuiz(req.Judul, req.Deskripsi, createdBy)
	quiz.Questions = toDomainQuestions(req.Questions, 0)
	if len(quiz.Questions) == 0 {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("questions")}
	}
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		slug, err := util.UniqueSlug(txCtx, quiz.Judul, "kuis", s.quizRepo.SlugExists)
		if err != nil {
			return err
		}
		quiz.Slug = slug
		return s.quizRepo.CreateQuiz(txCtx, quiz)
	})
	if err != nil {
		if _, ok := domain.AsDomainError(err); ok {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to create quiz", err)
	}

	logger.Get().Info("Quiz created",
		zap.String("quizID", quiz.ID),
		zap.String("slug", quiz.Slug),
		zap.Int("questions", len(quiz.Questions)))

	resp := toQuizResponse(quiz)
	resp.Questions = toAdminQuestions(quiz.Questions)
	return &resp, nil
}

func (s *quizAdminService) AddQuestions(ctx context.Context, quizID string, inputs []dto.QuestionInput) (int, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return 0, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return 0, domain.NewNotFoundError("Kuis tidak ditemukan")
	}
	existing, err := s.quizRepo.GetQuestions(ctx, quizID)
	if err != nil {
		return 0, domain.NewInternalError("Failed to get quiz questions", err)
	}

	offset := 0
	for _, q := range existing {
		if q.Urutan > offset {
			offset = q.Urutan
		}
	}
	questions := toDomainQuestions(inputs, offset)
	var verrs domain.ValidationErrors
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			if v, ok := err.(domain.ValidationErrors); ok {
				verrs = append(verrs, v...)
			}
		}
	}
	if len(verrs) > 0 {
		return 0, verrs
	}
	if len(questions) == 0 {
		return 0, nil
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.quizRepo.AddQuestions(txCtx, quizID, questions)
	})
	if err != nil {
		return 0, domain.NewInternalError("Failed to add quiz questions", err)
	}
	return len(questions), nil
}

func (s *quizAdminService) ListQuizzes(ctx context.Context) ([]dto.QuizResponse, error) {
	quizzes, err := s.quizRepo.ListQuizzes(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}
	out := make([]dto.QuizResponse, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, toQuizResponse(q))
	}
	return out, nil
}

func (s *quizAdminService) GetQuizDetail(ctx context.Context, id string) (*dto.QuizResponse, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewNotFoundError("Kuis tidak ditemukan")
	}
	questions, err := s.quizRepo.GetQuestions(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz questions", err)
	}
	resp := toQuizResponse(quiz)
	resp.Questions = toAdminQuestions(questions)
	return &resp, nil
}

func (s *quizAdminService) DeleteQuiz(ctx context.Context, id string) error {
	if err := s.quizRepo.DeleteQuiz(ctx, id); err != nil {
		if domain.IsCode(err, domain.CodeNotFound) {
			return err
		}
		return domain.NewInternalError("Failed to delete quiz", err)
	}
	return nil
}

func (s *quizAdminService) ListSubmissions(ctx context.Context, quizID string) ([]dto.SubmissionResponse, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewNotFoundError("Kuis tidak ditemukan")
	}
	subs, err := s.sessionRepo.ListSubmissions(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quiz submissions", err)
	}
	out := make([]dto.SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, dto.SubmissionResponse{
			ID:          sub.ID,
			NamaPeserta: sub.NamaPeserta,
			Skor:        sub.Skor,
			TotalSoal:   sub.TotalSoal,
			Persentase:  sub.Persentase(),
			SubmittedAt: sub.SubmittedAt,
		})
	}
	return out, nil
}

func (s *quizAdminService) ExportSubmissions(ctx context.Context, quizID string) ([]byte, string, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, "", domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, "", domain.NewNotFoundError("Kuis tidak ditemukan")
	}
	subs, err := s.sessionRepo.ListSubmissions(ctx, quizID)
	if err != nil {
		return nil, "", domain.NewInternalError("Failed to list quiz submissions", err)
	}

	rows := make([][]interface{}, 0, len(subs))
	for i, sub := range subs {
		rows = append(rows, []interface{}{
			i + 1,
			sub.NamaPeserta,
			sub.Skor,
			sub.TotalSoal,
			sub.Persentase(),
			sub.SubmittedAt.Format("2006-01-02 15:04:05"),
		})
	}
	b, err := export.BuildWorkbook(export.SheetSpec{
		Title:  "Hasil Kuis",
		Header: []string{"No", "Nama Peserta", "Skor", "Total Soal", "Persentase", "Waktu Submit"},
		Rows:   rows,
	})
	if err != nil {
		return nil, "", domain.NewInternalError("Failed to build quiz result workbook", err)
	}
	return b, export.FileName("hasil_"+quiz.Slug, time.Now().Format("2006-01-02")), nil
}

// toDomainQuestions converts inputs, numbering any question without urutan
// after offset in input order.
func toDomainQuestions(inputs []dto.QuestionInput, offset int) []*domain.QuizQuestion {
	out := make([]*domain.QuizQuestion, 0, len(inputs))
	for i, in := range inputs {
		urutan := in.Urutan
		if urutan == 0 {
			urutan = offset + i + 1
		}
		out = append(out, &domain.QuizQuestion{
			Pertanyaan:   strings.TrimSpace(in.Pertanyaan),
			OpsiA:        strings.TrimSpace(in.OpsiA),
			OpsiB:        strings.TrimSpace(in.OpsiB),
			OpsiC:        strings.TrimSpace(in.OpsiC),
			OpsiD:        strings.TrimSpace(in.OpsiD),
			JawabanBenar: domain.NormalizeOption(in.JawabanBenar),
			Urutan:       urutan,
		})
	}
	return out
}

func toQuizResponse(q *domain.Quiz) dto.QuizResponse {
	return dto.QuizResponse{
		ID:        q.ID,
		Judul:     q.Judul,
		Slug:      q.Slug,
		Deskripsi: q.Deskripsi,
		CreatedAt: q.CreatedAt,
	}
}

func toAdminQuestions(questions []*domain.QuizQuestion) []dto.QuestionAdminResponse {
	out := make([]dto.QuestionAdminResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.QuestionAdminResponse{
			ID:           q.ID,
			Pertanyaan:   q.Pertanyaan,
			OpsiA:        q.OpsiA,
			OpsiB:        q.OpsiB,
			OpsiC:        q.OpsiC,
			OpsiD:        q.OpsiD,
			JawabanBenar: q.JawabanBenar,
			Urutan:       q.Urutan,
		})
	}
	return out
}
