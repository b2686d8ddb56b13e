package handler_test

import (
	"context"
	"time"

	"dcn-community/internal/domain"
	"dcn-community/internal/dto"
)

// --- Manual Mocks ---

type MockQuizAdminService struct {
	CreateQuizFunc        func(ctx context.Context, createdBy string, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	AddQuestionsFunc      func(ctx context.Context, quizID string, questions []dto.QuestionInput) (int, error)
	ListQuizzesFunc       func(ctx context.Context) ([]dto.QuizResponse, error)
	GetQuizDetailFunc     func(ctx context.Context, id string) (*dto.QuizResponse, error)
	DeleteQuizFunc        func(ctx context.Context, id string) error
	ListSubmissionsFunc   func(ctx context.Context, quizID string) ([]dto.SubmissionResponse, error)
	ExportSubmissionsFunc func(ctx context.Context, quizID string) ([]byte, string, error)
}

func (m *MockQuizAdminService) CreateQuiz(ctx context.Context, createdBy string, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	if m.CreateQuizFunc != nil {
		return m.CreateQuizFunc(ctx, createdBy, req)
	}
	panic("MockQuizAdminService.CreateQuizFunc not implemented")
}
func (m *MockQuizAdminService) AddQuestions(ctx context.Context, quizID string, questions []dto.QuestionInput) (int, error) {
	if m.AddQuestionsFunc != nil {
		return m.AddQuestionsFunc(ctx, quizID, questions)
	}
	panic("MockQuizAdminService.AddQuestionsFunc not implemented")
}
func (m *MockQuizAdminService) ListQuizzes(ctx context.Context) ([]dto.QuizResponse, error) {
	if m.ListQuizzesFunc != nil {
		return m.ListQuizzesFunc(ctx)
	}
	panic("MockQuizAdminService.ListQuizzesFunc not implemented")
}
func (m *MockQuizAdminService) GetQuizDetail(ctx context.Context, id string) (*dto.QuizResponse, error) {
	if m.GetQuizDetailFunc != nil {
		return m.GetQuizDetailFunc(ctx, id)
	}
	panic("MockQuizAdminService.GetQuizDetailFunc not implemented")
}
func (m *MockQuizAdminService) DeleteQuiz(ctx context.Context, id string) error {
	if m.DeleteQuizFunc != nil {
		return m.DeleteQuizFunc(ctx, id)
	}
	panic("MockQuizAdminService.DeleteQuizFunc not implemented")
}
func (m *MockQuizAdminService) ListSubmissions(ctx context.Context, quizID string) ([]dto.SubmissionResponse, error) {
	if m.ListSubmissionsFunc != nil {
		return m.ListSubmissionsFunc(ctx, quizID)
	}
	panic("MockQuizAdminService.ListSubmissionsFunc not implemented")
}
func (m *MockQuizAdminService) ExportSubmissions(ctx context.Context, quizID string) ([]byte, string, error) {
	if m.ExportSubmissionsFunc != nil {
		return m.ExportSubmissionsFunc(ctx, quizID)
	}
	panic("MockQuizAdminService.ExportSubmissionsFunc not implemented")
}

type MockQuizSessionService struct {
	GenerateSessionFunc  func(ctx context.Context, quizID string) (*dto.GenerateLinkResponse, error)
	GetActiveSessionFunc func(ctx context.Context, quizID string) (*dto.ActiveSessionResponse, error)
	ResolveSessionFunc   func(ctx context.Context, token string) (*dto.SessionQuizResponse, error)
	SubmitFunc           func(ctx context.Context, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
}

func (m *MockQuizSessionService) GenerateSession(ctx context.Context, quizID string) (*dto.GenerateLinkResponse, error) {
	if m.GenerateSessionFunc != nil {
		return m.GenerateSessionFunc(ctx, quizID)
	}
	panic("MockQuizSessionService.GenerateSessionFunc not implemented")
}
func (m *MockQuizSessionService) GetActiveSession(ctx context.Context, quizID string) (*dto.ActiveSessionResponse, error) {
	if m.GetActiveSessionFunc != nil {
		return m.GetActiveSessionFunc(ctx, quizID)
	}
	panic("MockQuizSessionService.GetActiveSessionFunc not implemented")
}
func (m *MockQuizSessionService) ResolveSession(ctx context.Context, token string) (*dto.SessionQuizResponse, error) {
	if m.ResolveSessionFunc != nil {
		return m.ResolveSessionFunc(ctx, token)
	}
	panic("MockQuizSessionService.ResolveSessionFunc not implemented")
}
func (m *MockQuizSessionService) Submit(ctx context.Context, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, req)
	}
	panic("MockQuizSessionService.SubmitFunc not implemented")
}

type MockSertifikatService struct {
	CheckEligibilityFunc  func(ctx context.Context, email string) (*dto.EligibilityResponse, error)
	IssueCertificateFunc  func(ctx context.Context, req *dto.IssueSertifikatRequest) (*dto.IssueSertifikatResponse, error)
	VerifyCertificateFunc func(ctx context.Context, nomor string) (*dto.VerifySertifikatResponse, error)
	ListFunc              func(ctx context.Context, limit, offset int) ([]dto.SertifikatListItem, error)
}

func (m *MockSertifikatService) CheckEligibility(ctx context.Context, email string) (*dto.EligibilityResponse, error) {
	if m.CheckEligibilityFunc != nil {
		return m.CheckEligibilityFunc(ctx, email)
	}
	panic("MockSertifikatService.CheckEligibilityFunc not implemented")
}
func (m *MockSertifikatService) IssueCertificate(ctx context.Context, req *dto.IssueSertifikatRequest) (*dto.IssueSertifikatResponse, error) {
	if m.IssueCertificateFunc != nil {
		return m.IssueCertificateFunc(ctx, req)
	}
	panic("MockSertifikatService.IssueCertificateFunc not implemented")
}
func (m *MockSertifikatService) VerifyCertificate(ctx context.Context, nomor string) (*dto.VerifySertifikatResponse, error) {
	if m.VerifyCertificateFunc != nil {
		return m.VerifyCertificateFunc(ctx, nomor)
	}
	panic("MockSertifikatService.VerifyCertificateFunc not implemented")
}
func (m *MockSertifikatService) List(ctx context.Context, limit, offset int) ([]dto.SertifikatListItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	panic("MockSertifikatService.ListFunc not implemented")
}

type MockCodeRedeemService struct {
	ClaimFunc      func(ctx context.Context, req *dto.ClaimCodeRequest) (*dto.ClaimCodeResponse, error)
	CreateCodeFunc func(ctx context.Context, adminID string, req *dto.CreateCodeRequest) (*dto.CodeRedeemResponse, error)
	ListCodesFunc  func(ctx context.Context) ([]dto.CodeRedeemResponse, error)
	SetActiveFunc  func(ctx context.Context, adminID, id string, active bool) (*dto.CodeRedeemResponse, error)
	ListUsageFunc  func(ctx context.Context, id string) ([]dto.CodeUsageResponse, error)
}

func (m *MockCodeRedeemService) Claim(ctx context.Context, req *dto.ClaimCodeRequest) (*dto.ClaimCodeResponse, error) {
	if m.ClaimFunc != nil {
		return m.ClaimFunc(ctx, req)
	}
	panic("MockCodeRedeemService.ClaimFunc not implemented")
}
func (m *MockCodeRedeemService) CreateCode(ctx context.Context, adminID string, req *dto.CreateCodeRequest) (*dto.CodeRedeemResponse, error) {
	if m.CreateCodeFunc != nil {
		return m.CreateCodeFunc(ctx, adminID, req)
	}
	panic("MockCodeRedeemService.CreateCodeFunc not implemented")
}
func (m *MockCodeRedeemService) ListCodes(ctx context.Context) ([]dto.CodeRedeemResponse, error) {
	if m.ListCodesFunc != nil {
		return m.ListCodesFunc(ctx)
	}
	panic("MockCodeRedeemService.ListCodesFunc not implemented")
}
func (m *MockCodeRedeemService) SetActive(ctx context.Context, adminID, id string, active bool) (*dto.CodeRedeemResponse, error) {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, adminID, id, active)
	}
	panic("MockCodeRedeemService.SetActiveFunc not implemented")
}
func (m *MockCodeRedeemService) ListUsage(ctx context.Context, id string) ([]dto.CodeUsageResponse, error) {
	if m.ListUsageFunc != nil {
		return m.ListUsageFunc(ctx, id)
	}
	panic("MockCodeRedeemService.ListUsageFunc not implemented")
}

type MockKontributorService struct {
	InvalidateLeaderboardFunc func(ctx context.Context)
	LeaderboardFunc           func(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error)
	GetByNIMFunc              func(ctx context.Context, nim string) (*dto.KontributorProfileResponse, error)
	CreateFunc                func(ctx context.Context, adminID string, req *dto.CreateKontributorRequest) (*dto.KontributorResponse, error)
	AdjustPoinFunc            func(ctx context.Context, adminID, id string, req *dto.AdjustPoinRequest) (*dto.AdjustPoinResponse, error)
	ExportLeaderboardFunc     func(ctx context.Context) ([]byte, string, error)
}

func (m *MockKontributorService) InvalidateLeaderboard(ctx context.Context) {
	if m.InvalidateLeaderboardFunc != nil {
		m.InvalidateLeaderboardFunc(ctx)
	}
}
func (m *MockKontributorService) Leaderboard(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error) {
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc(ctx, limit)
	}
	panic("MockKontributorService.LeaderboardFunc not implemented")
}
func (m *MockKontributorService) GetByNIM(ctx context.Context, nim string) (*dto.KontributorProfileResponse, error) {
	if m.GetByNIMFunc != nil {
		return m.GetByNIMFunc(ctx, nim)
	}
	panic("MockKontributorService.GetByNIMFunc not implemented")
}
func (m *MockKontributorService) Create(ctx context.Context, adminID string, req *dto.CreateKontributorRequest) (*dto.KontributorResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, adminID, req)
	}
	panic("MockKontributorService.CreateFunc not implemented")
}
func (m *MockKontributorService) AdjustPoin(ctx context.Context, adminID, id string, req *dto.AdjustPoinRequest) (*dto.AdjustPoinResponse, error) {
	if m.AdjustPoinFunc != nil {
		return m.AdjustPoinFunc(ctx, adminID, id, req)
	}
	panic("MockKontributorService.AdjustPoinFunc not implemented")
}
func (m *MockKontributorService) ExportLeaderboard(ctx context.Context) ([]byte, string, error) {
	if m.ExportLeaderboardFunc != nil {
		return m.ExportLeaderboardFunc(ctx)
	}
	panic("MockKontributorService.ExportLeaderboardFunc not implemented")
}

type MockPertemuanService struct {
	CreateFunc        func(ctx context.Context, adminID string, req *dto.CreatePertemuanRequest) (*dto.PertemuanResponse, error)
	ListFunc          func(ctx context.Context) ([]dto.PertemuanResponse, error)
	UpsertAbsensiFunc func(ctx context.Context, adminID, pertemuanID string, req *dto.UpsertAbsensiRequest) (int, error)
}

func (m *MockPertemuanService) Create(ctx context.Context, adminID string, req *dto.CreatePertemuanRequest) (*dto.PertemuanResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, adminID, req)
	}
	panic("MockPertemuanService.CreateFunc not implemented")
}
func (m *MockPertemuanService) List(ctx context.Context) ([]dto.PertemuanResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	panic("MockPertemuanService.ListFunc not implemented")
}
func (m *MockPertemuanService) UpsertAbsensi(ctx context.Context, adminID, pertemuanID string, req *dto.UpsertAbsensiRequest) (int, error) {
	if m.UpsertAbsensiFunc != nil {
		return m.UpsertAbsensiFunc(ctx, adminID, pertemuanID, req)
	}
	panic("MockPertemuanService.UpsertAbsensiFunc not implemented")
}

type MockNotificationService struct {
	SubscribeFunc   func(ctx context.Context, req *dto.SubscribeRequest) error
	UnsubscribeFunc func(ctx context.Context, endpoint string) error
	BroadcastFunc   func(ctx context.Context, adminID string, req *dto.BroadcastRequest) (*dto.BroadcastResponse, error)
}

func (m *MockNotificationService) Subscribe(ctx context.Context, req *dto.SubscribeRequest) error {
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(ctx, req)
	}
	panic("MockNotificationService.SubscribeFunc not implemented")
}
func (m *MockNotificationService) Unsubscribe(ctx context.Context, endpoint string) error {
	if m.UnsubscribeFunc != nil {
		return m.UnsubscribeFunc(ctx, endpoint)
	}
	panic("MockNotificationService.UnsubscribeFunc not implemented")
}
func (m *MockNotificationService) Broadcast(ctx context.Context, adminID string, req *dto.BroadcastRequest) (*dto.BroadcastResponse, error) {
	if m.BroadcastFunc != nil {
		return m.BroadcastFunc(ctx, adminID, req)
	}
	panic("MockNotificationService.BroadcastFunc not implemented")
}

type MockActivityLogger struct {
	ListRecentFunc func(ctx context.Context, limit int) ([]dto.ActivityLogResponse, error)
}

func (m *MockActivityLogger) Log(context.Context, *domain.ActivityLog) {}
func (m *MockActivityLogger) Wait()                                    {}
func (m *MockActivityLogger) ListRecent(ctx context.Context, limit int) ([]dto.ActivityLogResponse, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	panic("MockActivityLogger.ListRecentFunc not implemented")
}

type MockAuthService struct {
	GetGoogleLoginURLFunc    func(state string) string
	HandleGoogleCallbackFunc func(ctx context.Context, code, receivedState, expectedState string) (*dto.SessionResponse, error)
	AuthenticateFunc         func(ctx context.Context, token string) (*domain.Admin, error)
}

func (m *MockAuthService) GetGoogleLoginURL(state string) string {
	if m.GetGoogleLoginURLFunc != nil {
		return m.GetGoogleLoginURLFunc(state)
	}
	panic("MockAuthService.GetGoogleLoginURLFunc not implemented")
}
func (m *MockAuthService) HandleGoogleCallback(ctx context.Context, code, receivedState, expectedState string) (*dto.SessionResponse, error) {
	if m.HandleGoogleCallbackFunc != nil {
		return m.HandleGoogleCallbackFunc(ctx, code, receivedState, expectedState)
	}
	panic("MockAuthService.HandleGoogleCallbackFunc not implemented")
}
func (m *MockAuthService) CreateJWT(*domain.Admin) (string, time.Time, error) {
	panic("not implemented in mock")
}
func (m *MockAuthService) ValidateJWT(context.Context, string) (*dto.AuthClaims, error) {
	panic("not implemented in mock")
}
func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.Admin, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	panic("MockAuthService.AuthenticateFunc not implemented")
}
