package domain

import (
	"context"
	"time"
)

// TransactionManager runs fn inside one database transaction. Repositories
// called with the context passed to fn take part in that transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// QuizRepository defines the interface for quiz persistence
type QuizRepository interface {
	// CreateQuiz stores the quiz and its questions. The slug must already be set.
	CreateQuiz(ctx context.Context, quiz *Quiz) error
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)
	// GetQuestions returns the questions of a quiz ordered by urutan.
	GetQuestions(ctx context.Context, quizID string) ([]*QuizQuestion, error)
	AddQuestions(ctx context.Context, quizID string, questions []*QuizQuestion) error
	ListQuizzes(ctx context.Context) ([]*Quiz, error)
	DeleteQuiz(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// QuizSessionRepository defines the interface for quiz session and
// submission persistence.
type QuizSessionRepository interface {
	CreateSession(ctx context.Context, session *QuizSession) error
	GetSessionByID(ctx context.Context, id string) (*QuizSession, error)
	GetSessionByToken(ctx context.Context, token string) (*QuizSession, error)
	// GetLatestActiveSession returns the newest unexpired session of the quiz
	// that has no submission, or nil.
	GetLatestActiveSession(ctx context.Context, quizID string, now time.Time) (*QuizSession, error)
	HasSubmission(ctx context.Context, sessionID string) (bool, error)
	HasSubmissionByName(ctx context.Context, sessionID, namaPeserta string) (bool, error)
	// CreateSubmission returns a CodeAlreadySubmitted error when the session
	// already holds a submission.
	CreateSubmission(ctx context.Context, submission *QuizSubmission) error
	ListSubmissions(ctx context.Context, quizID string) ([]*QuizSubmission, error)
	// CountSubmissionsByName counts submissions whose participant name
	// contains nama, case-insensitively.
	CountSubmissionsByName(ctx context.Context, nama string) (int, error)
}

// KontributorRepository defines the interface for contributor persistence
type KontributorRepository interface {
	Create(ctx context.Context, k *Kontributor) error
	GetByID(ctx context.Context, id string) (*Kontributor, error)
	GetByNIM(ctx context.Context, nim string) (*Kontributor, error)
	GetByEmail(ctx context.Context, email string) (*Kontributor, error)
	// AddPoin adds delta to total_poin, clamping at zero, and returns the new total.
	AddPoin(ctx context.Context, id string, delta int) (int, error)
	Leaderboard(ctx context.Context, limit int) ([]*Kontributor, error)
}

// SertifikatRepository defines the interface for certificate persistence
type SertifikatRepository interface {
	// Insert stores s unless a row with the same nomor or the same
	// contributor/tipe/pertemuan already exists. It reports whether a row
	// was written.
	Insert(ctx context.Context, s *Sertifikat) (bool, error)
	FindExisting(ctx context.Context, kontributorID, tipe, pertemuanID string) (*Sertifikat, error)
	ListByKontributor(ctx context.Context, kontributorID string) ([]*Sertifikat, error)
	NomorExists(ctx context.Context, nomor string) (bool, error)
	GetDetailByNomor(ctx context.Context, nomor string) (*SertifikatDetail, error)
	List(ctx context.Context, limit, offset int) ([]*SertifikatDetail, error)
}

// CodeRedeemRepository defines the interface for redeem code persistence
type CodeRedeemRepository interface {
	Create(ctx context.Context, c *CodeRedeem) error
	GetByCode(ctx context.Context, code string) (*CodeRedeem, error)
	// GetByCodeForUpdate loads the code and locks its row until the
	// surrounding transaction ends.
	GetByCodeForUpdate(ctx context.Context, code string) (*CodeRedeem, error)
	GetByID(ctx context.Context, id string) (*CodeRedeem, error)
	List(ctx context.Context) ([]*CodeRedeem, error)
	SetActive(ctx context.Context, id string, active bool) error
	HasUsage(ctx context.Context, codeID, kontributorID string) (bool, error)
	// InsertUsage returns a CodeAlreadyClaimed error when the contributor
	// already redeemed the code.
	InsertUsage(ctx context.Context, usage *CodeRedeemUsage) error
	CountUsage(ctx context.Context, codeID string) (int, error)
	SetCurrentUsage(ctx context.Context, codeID string, usage int) error
	ListUsage(ctx context.Context, codeID string) ([]*CodeRedeemUsage, error)
}

// PertemuanRepository defines the interface for meeting and attendance persistence
type PertemuanRepository interface {
	Create(ctx context.Context, p *Pertemuan) error
	GetByID(ctx context.Context, id string) (*Pertemuan, error)
	List(ctx context.Context) ([]*Pertemuan, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	UpsertAbsensi(ctx context.Context, records []*Absensi) error
	// ListEligibleForSertifikat returns meetings with has_sertifikat where the
	// contributor was present.
	ListEligibleForSertifikat(ctx context.Context, kontributorID string) ([]*Pertemuan, error)
}

// AdminRepository defines the interface for admin persistence
type AdminRepository interface {
	GetByID(ctx context.Context, id string) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	// Upsert inserts or updates the admin keyed by email.
	Upsert(ctx context.Context, a *Admin) error
}

// ActivityLogRepository defines the interface for audit log persistence
type ActivityLogRepository interface {
	Insert(ctx context.Context, entry *ActivityLog) error
	ListRecent(ctx context.Context, limit int) ([]*ActivityLog, error)
}

// PushSubscriptionRepository defines the interface for push subscription persistence
type PushSubscriptionRepository interface {
	Upsert(ctx context.Context, sub *PushSubscription) error
	DeleteByEndpoint(ctx context.Context, endpoint string) error
	ListAll(ctx context.Context) ([]*PushSubscription, error)
}
