package service

import (
	"context"
	"sync"
	"time"

	"dcn-community/internal/domain"
	"dcn-community/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockQuizRepository ---
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	return m.Called(ctx, quiz).Error(0)
}

func (m *MockQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetQuestions(ctx context.Context, quizID string) ([]*domain.QuizQuestion, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuizQuestion), args.Error(1)
}

func (m *MockQuizRepository) AddQuestions(ctx context.Context, quizID string, questions []*domain.QuizQuestion) error {
	return m.Called(ctx, quizID, questions).Error(0)
}

func (m *MockQuizRepository) ListQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) DeleteQuiz(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockQuizRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

// --- MockQuizSessionRepository ---
type MockQuizSessionRepository struct {
	mock.Mock
}

func (m *MockQuizSessionRepository) CreateSession(ctx context.Context, session *domain.QuizSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockQuizSessionRepository) getSession(args mock.Arguments) (*domain.QuizSession, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizSession), args.Error(1)
}

func (m *MockQuizSessionRepository) GetSessionByID(ctx context.Context, id string) (*domain.QuizSession, error) {
	return m.getSession(m.Called(ctx, id))
}

func (m *MockQuizSessionRepository) GetSessionByToken(ctx context.Context, token string) (*domain.QuizSession, error) {
	return m.getSession(m.Called(ctx, token))
}

func (m *MockQuizSessionRepository) GetLatestActiveSession(ctx context.Context, quizID string, now time.Time) (*domain.QuizSession, error) {
	return m.getSession(m.Called(ctx, quizID, now))
}

func (m *MockQuizSessionRepository) HasSubmission(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuizSessionRepository) HasSubmissionByName(ctx context.Context, sessionID, namaPeserta string) (bool, error) {
	args := m.Called(ctx, sessionID, namaPeserta)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuizSessionRepository) CreateSubmission(ctx context.Context, submission *domain.QuizSubmission) error {
	return m.Called(ctx, submission).Error(0)
}

func (m *MockQuizSessionRepository) ListSubmissions(ctx context.Context, quizID string) ([]*domain.QuizSubmission, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuizSubmission), args.Error(1)
}

func (m *MockQuizSessionRepository) CountSubmissionsByName(ctx context.Context, nama string) (int, error) {
	args := m.Called(ctx, nama)
	return args.Int(0), args.Error(1)
}

// --- MockKontributorRepository ---
type MockKontributorRepository struct {
	mock.Mock
}

func (m *MockKontributorRepository) get(args mock.Arguments) (*domain.Kontributor, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Kontributor), args.Error(1)
}

func (m *MockKontributorRepository) Create(ctx context.Context, k *domain.Kontributor) error {
	return m.Called(ctx, k).Error(0)
}

func (m *MockKontributorRepository) GetByID(ctx context.Context, id string) (*domain.Kontributor, error) {
	return m.get(m.Called(ctx, id))
}

func (m *MockKontributorRepository) GetByNIM(ctx context.Context, nim string) (*domain.Kontributor, error) {
	return m.get(m.Called(ctx, nim))
}

func (m *MockKontributorRepository) GetByEmail(ctx context.Context, email string) (*domain.Kontributor, error) {
	return m.get(m.Called(ctx, email))
}

func (m *MockKontributorRepository) AddPoin(ctx context.Context, id string, delta int) (int, error) {
	args := m.Called(ctx, id, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockKontributorRepository) Leaderboard(ctx context.Context, limit int) ([]*domain.Kontributor, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Kontributor), args.Error(1)
}

// --- MockSertifikatRepository ---
type MockSertifikatRepository struct {
	mock.Mock
}

func (m *MockSertifikatRepository) Insert(ctx context.Context, s *domain.Sertifikat) (bool, error) {
	args := m.Called(ctx, s)
	return args.Bool(0), args.Error(1)
}

func (m *MockSertifikatRepository) FindExisting(ctx context.Context, kontributorID, tipe, pertemuanID string) (*domain.Sertifikat, error) {
	args := m.Called(ctx, kontributorID, tipe, pertemuanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sertifikat), args.Error(1)
}

func (m *MockSertifikatRepository) ListByKontributor(ctx context.Context, kontributorID string) ([]*domain.Sertifikat, error) {
	args := m.Called(ctx, kontributorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Sertifikat), args.Error(1)
}

func (m *MockSertifikatRepository) NomorExists(ctx context.Context, nomor string) (bool, error) {
	args := m.Called(ctx, nomor)
	return args.Bool(0), args.Error(1)
}

func (m *MockSertifikatRepository) GetDetailByNomor(ctx context.Context, nomor string) (*domain.SertifikatDetail, error) {
	args := m.Called(ctx, nomor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SertifikatDetail), args.Error(1)
}

func (m *MockSertifikatRepository) List(ctx context.Context, limit, offset int) ([]*domain.SertifikatDetail, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SertifikatDetail), args.Error(1)
}

// --- MockCodeRedeemRepository ---
type MockCodeRedeemRepository struct {
	mock.Mock
}

func (m *MockCodeRedeemRepository) get(args mock.Arguments) (*domain.CodeRedeem, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CodeRedeem), args.Error(1)
}

func (m *MockCodeRedeemRepository) Create(ctx context.Context, c *domain.CodeRedeem) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCodeRedeemRepository) GetByCode(ctx context.Context, code string) (*domain.CodeRedeem, error) {
	return m.get(m.Called(ctx, code))
}

func (m *MockCodeRedeemRepository) GetByCodeForUpdate(ctx context.Context, code string) (*domain.CodeRedeem, error) {
	return m.get(m.Called(ctx, code))
}

func (m *MockCodeRedeemRepository) GetByID(ctx context.Context, id string) (*domain.CodeRedeem, error) {
	return m.get(m.Called(ctx, id))
}

func (m *MockCodeRedeemRepository) List(ctx context.Context) ([]*domain.CodeRedeem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CodeRedeem), args.Error(1)
}

func (m *MockCodeRedeemRepository) SetActive(ctx context.Context, id string, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *MockCodeRedeemRepository) HasUsage(ctx context.Context, codeID, kontributorID string) (bool, error) {
	args := m.Called(ctx, codeID, kontributorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCodeRedeemRepository) InsertUsage(ctx context.Context, usage *domain.CodeRedeemUsage) error {
	return m.Called(ctx, usage).Error(0)
}

func (m *MockCodeRedeemRepository) CountUsage(ctx context.Context, codeID string) (int, error) {
	args := m.Called(ctx, codeID)
	return args.Int(0), args.Error(1)
}

func (m *MockCodeRedeemRepository) SetCurrentUsage(ctx context.Context, codeID string, usage int) error {
	return m.Called(ctx, codeID, usage).Error(0)
}

func (m *MockCodeRedeemRepository) ListUsage(ctx context.Context, codeID string) ([]*domain.CodeRedeemUsage, error) {
	args := m.Called(ctx, codeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CodeRedeemUsage), args.Error(1)
}

// --- MockPertemuanRepository ---
type MockPertemuanRepository struct {
	mock.Mock
}

func (m *MockPertemuanRepository) Create(ctx context.Context, p *domain.Pertemuan) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPertemuanRepository) GetByID(ctx context.Context, id string) (*domain.Pertemuan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pertemuan), args.Error(1)
}

func (m *MockPertemuanRepository) List(ctx context.Context) ([]*domain.Pertemuan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Pertemuan), args.Error(1)
}

func (m *MockPertemuanRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockPertemuanRepository) UpsertAbsensi(ctx context.Context, records []*domain.Absensi) error {
	return m.Called(ctx, records).Error(0)
}

func (m *MockPertemuanRepository) ListEligibleForSertifikat(ctx context.Context, kontributorID string) ([]*domain.Pertemuan, error) {
	args := m.Called(ctx, kontributorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Pertemuan), args.Error(1)
}

// --- MockAdminRepository ---
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) Upsert(ctx context.Context, a *domain.Admin) error {
	return m.Called(ctx, a).Error(0)
}

// --- MockActivityLogRepository ---
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) Insert(ctx context.Context, entry *domain.ActivityLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockActivityLogRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ActivityLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ActivityLog), args.Error(1)
}

// --- MockPushSubscriptionRepository ---
type MockPushSubscriptionRepository struct {
	mock.Mock
}

func (m *MockPushSubscriptionRepository) Upsert(ctx context.Context, sub *domain.PushSubscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *MockPushSubscriptionRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	return m.Called(ctx, endpoint).Error(0)
}

func (m *MockPushSubscriptionRepository) ListAll(ctx context.Context) ([]*domain.PushSubscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PushSubscription), args.Error(1)
}

// --- MockPushSender ---
type MockPushSender struct {
	mock.Mock
}

func (m *MockPushSender) Send(ctx context.Context, sub *domain.PushSubscription, msg domain.PushMessage) error {
	return m.Called(ctx, sub, msg).Error(0)
}

// --- MockTransactionManager ---
// Runs fn directly; rollback is the repositories' concern in these tests.
type MockTransactionManager struct {
	calls int
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// --- recordingActivityLogger ---
type recordingActivityLogger struct {
	mu      sync.Mutex
	entries []*domain.ActivityLog
}

func (r *recordingActivityLogger) Log(_ context.Context, entry *domain.ActivityLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *recordingActivityLogger) ListRecent(context.Context, int) ([]dto.ActivityLogResponse, error) {
	return nil, nil
}

func (r *recordingActivityLogger) Wait() {}

func (r *recordingActivityLogger) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

// --- countingInvalidator ---
type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) InvalidateLeaderboard(context.Context) {
	c.calls++
}
