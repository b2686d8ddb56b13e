package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"dcn-community/internal/cache"
	"dcn-community/internal/config"
	"dcn-community/internal/domain"
	"dcn-community/internal/dto"
	"dcn-community/internal/logger"
	"dcn-community/internal/metrics"
	"dcn-community/internal/util"

	"go.uber.org/zap"
)

// QuizSessionService defines the shareable quiz link lifecycle and grading.
type QuizSessionService interface {
	GenerateSession(ctx context.Context, quizID string) (*dto.GenerateLinkResponse, error)
	GetActiveSession(ctx context.Context, quizID string) (*dto.ActiveSessionResponse, error)
	ResolveSession(ctx context.Context, token string) (*dto.SessionQuizResponse, error)
	Submit(ctx context.Context, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
}

type quizSessionService struct {
	quizRepo    domain.QuizRepository
	sessionRepo domain.QuizSessionRepository
	cache       domain.Cache
	cfg         *config.Config
	now         func() time.Time
}

// NewQuizSessionService creates a new instance of QuizSessionService. cache may be nil.
func NewQuizSessionService(
	quizRepo domain.QuizRepository,
	sessionRepo domain.QuizSessionRepository,
	cache domain.Cache,
	cfg *config.Config,
) QuizSessionService {
	return &quizSessionService{
		quizRepo:    quizRepo,
		sessionRepo: sessionRepo,
		cache:       cache,
		cfg:         cfg,
		now:         time.Now,
	}
}

// cachedSession is the cache representation of an active session.
type cachedSession struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *quizSessionService) quizURL(token string) string {
	return s.cfg.Server.PublicBaseURL + "/quiz/" + token
}

// GenerateSession implements QuizSessionService
func (s *quizSessionService) GenerateSession(ctx context.Context, quizID string) (*dto.GenerateLinkResponse, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewNotFoundError("Kuis tidak ditemukan")
	}

	token, err := util.NewSessionToken()
	if err != nil {
		return nil, domain.NewInternalError("Failed to generate session token", err)
	}
	now := s.now()
	session := domain.NewQuizSession(quiz.ID, token, now, s.cfg.Quiz.SessionTTL)
	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, domain.NewInternalError("Failed to create quiz session", err)
	}
	metrics.QuizSessionsCreated.Inc()

	cache.SetJSON(ctx, s.cache, cache.ActiveSessionKey(quiz.ID), cachedSession{
		ID:        session.ID,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}, session.ExpiresAt.Sub(now))

	logger.Get().Info("Quiz session generated",
		zap.String("quizID", quiz.ID),
		zap.String("sessionID", session.ID),
		zap.Time("expiresAt", session.ExpiresAt))

	return &dto.GenerateLinkResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		URL:       s.quizURL(session.Token),
	}, nil
}

// GetActiveSession implements QuizSessionService
func (s *quizSessionService) GetActiveSession(ctx context.Context, quizID string) (*dto.ActiveSessionResponse, error) {
	now := s.now()
	key := cache.ActiveSessionKey(quizID)

	var cached cachedSession
	if cache.GetJSON(ctx, s.cache, key, &cached) && now.Before(cached.ExpiresAt) {
		// A submission may have arrived on another instance since caching.
		submitted, err := s.sessionRepo.HasSubmission(ctx, cached.ID)
		if err != nil {
			return nil, domain.NewInternalError("Failed to check quiz submission", err)
		}
		if !submitted {
			return s.activeResponse(cached.Token, cached.ExpiresAt), nil
		}
		cache.Invalidate(ctx, s.cache, key)
	}

	session, err := s.sessionRepo.GetLatestActiveSession(ctx, quizID, now)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get active quiz session", err)
	}
	if session == nil {
		return &dto.ActiveSessionResponse{IsActive: false}, nil
	}

	cache.SetJSON(ctx, s.cache, key, cachedSession{
		ID:        session.ID,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}, session.ExpiresAt.Sub(now))
	return s.activeResponse(session.Token, session.ExpiresAt), nil
}

func (s *quizSessionService) activeResponse(token string, expiresAt time.Time) *dto.ActiveSessionResponse {
	return &dto.ActiveSessionResponse{
		IsActive:  true,
		Token:     token,
		ExpiresAt: &expiresAt,
		URL:       s.quizURL(token),
	}
}

// ResolveSession implements QuizSessionService
func (s *quizSessionService) ResolveSession(ctx context.Context, token string) (*dto.SessionQuizResponse, error) {
	session, err := s.sessionRepo.GetSessionByToken(ctx, token)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz session", err)
	}
	if session == nil {
		return nil, domain.NewNotFoundError("Link kuis tidak valid")
	}
	if session.IsExpired(s.now()) {
		return nil, domain.NewExpiredError("Link kuis sudah kedaluwarsa")
	}

	submitted, err := s.sessionRepo.HasSubmission(ctx, session.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to check quiz submission", err)
	}
	if submitted {
		return nil, domain.NewAlreadySubmittedError("Kuis ini sudah pernah dikerjakan")
	}

	quiz, err := s.quizRepo.GetQuizByID(ctx, session.QuizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewNotFoundError("Kuis tidak ditemukan")
	}
	questions, err := s.quizRepo.GetQuestions(ctx, quiz.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz questions", err)
	}
	sort.SliceStable(questions, func(i, j int) bool { return questions[i].Urutan < questions[j].Urutan })

	resp := &dto.SessionQuizResponse{
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
		Quiz: dto.QuizInfo{
			ID:        quiz.ID,
			Judul:     quiz.Judul,
			Deskripsi: quiz.Deskripsi,
		},
		Questions: make([]dto.PublicQuestionResponse, 0, len(questions)),
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, toPublicQuestion(q))
	}
	return resp, nil
}

// Submit implements QuizSessionService
func (s *quizSessionService) Submit(ctx context.Context, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	nama := strings.TrimSpace(req.NamaPeserta)
	if strings.TrimSpace(req.SessionID) == "" || nama == "" || req.Jawaban == nil {
		return nil, domain.NewInvalidInputError("Data tidak lengkap")
	}

	session, err := s.sessionRepo.GetSessionByID(ctx, req.SessionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz session", err)
	}
	if session == nil {
		metrics.QuizSubmissions.WithLabelValues("not_found").Inc()
		return nil, domain.NewNotFoundError("Sesi kuis tidak valid")
	}
	if session.IsExpired(s.now()) {
		metrics.QuizSubmissions.WithLabelValues("expired").Inc()
		return nil, domain.NewExpiredError("Waktu pengerjaan kuis sudah habis")
	}

	duplicate, err := s.sessionRepo.HasSubmissionByName(ctx, session.ID, nama)
	if err != nil {
		return nil, domain.NewInternalError("Failed to check quiz submission", err)
	}
	if duplicate {
		metrics.QuizSubmissions.WithLabelValues("duplicate").Inc()
		return nil, domain.NewError(domain.CodeDuplicateSubmission, "Kuis ini sudah pernah dikerjakan", nil)
	}

	questions, err := s.quizRepo.GetQuestions(ctx, session.QuizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz questions", err)
	}
	result := domain.ScoreAnswers(questions, req.Jawaban)

	submission := &domain.QuizSubmission{
		SessionID:   session.ID,
		NamaPeserta: nama,
		Jawaban:     req.Jawaban,
		Skor:        result.Skor,
		TotalSoal:   result.TotalSoal,
		SubmittedAt: s.now(),
	}
	if err := s.sessionRepo.CreateSubmission(ctx, submission); err != nil {
		if domain.IsCode(err, domain.CodeAlreadySubmitted) {
			metrics.QuizSubmissions.WithLabelValues("duplicate").Inc()
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to save quiz submission", err)
	}
	metrics.QuizSubmissions.WithLabelValues("ok").Inc()
	cache.Invalidate(ctx, s.cache, cache.ActiveSessionKey(session.QuizID))

	logger.Get().Info("Quiz submitted",
		zap.String("sessionID", session.ID),
		zap.Int("skor", result.Skor),
		zap.Int("totalSoal", result.TotalSoal))

	return &dto.SubmitQuizResponse{
		Success:    true,
		Skor:       result.Skor,
		TotalSoal:  result.TotalSoal,
		Persentase: result.Persentase,
	}, nil
}

func toPublicQuestion(q *domain.QuizQuestion) dto.PublicQuestionResponse {
	return dto.PublicQuestionResponse{
		ID:         q.ID,
		Pertanyaan: q.Pertanyaan,
		OpsiA:      q.OpsiA,
		OpsiB:      q.OpsiB,
		OpsiC:      q.OpsiC,
		OpsiD:      q.OpsiD,
		Urutan:     q.Urutan,
	}
}
