package handler

import (
	"dcn-community/internal/config"
	"dcn-community/internal/domain"
	"dcn-community/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	Auth        *AuthHandler
	QuizAdmin   *QuizAdminHandler
	QuizSession *QuizSessionHandler
	Sertifikat  *SertifikatHandler
	CodeRedeem  *CodeRedeemHandler
	Kontributor *KontributorHandler
	Pertemuan   *PertemuanHandler
	Push        *PushHandler
	Activity    *ActivityHandler
}

// RegisterRoutes mounts the API under router. Literal paths are registered
// before parameterized ones that could shadow them.
func RegisterRoutes(router fiber.Router, h *Handlers, auth middleware.Authenticator, cfg *config.Config) {
	admin := middleware.RequireAdmin(auth, cfg.JWT.CookieName)
	can := middleware.RequirePermission
	// Each public write endpoint gets its own per-IP budget.
	publicWrite := func() fiber.Handler { return middleware.PublicWriteLimiter(cfg.RateLimit) }

	// Auth routes
	authGroup := router.Group("/auth")
	authGroup.Get("/google/login", h.Auth.GoogleLogin)
	authGroup.Get("/google/callback", h.Auth.GoogleCallback)
	authGroup.Post("/logout", h.Auth.Logout)
	authGroup.Get("/me", admin, h.Auth.Me)

	// Quiz routes
	quiz := router.Group("/quiz")
	quiz.Get("/session/:token", h.QuizSession.GetSession)
	quiz.Post("/submit", publicWrite(), h.QuizSession.Submit)
	quiz.Post("/", admin, can(domain.PermQuizManage), h.QuizAdmin.CreateQuiz)
	quiz.Get("/", admin, can(domain.PermQuizManage), h.QuizAdmin.ListQuizzes)
	quiz.Get("/:id", admin, can(domain.PermQuizManage), h.QuizAdmin.GetQuiz)
	quiz.Delete("/:id", admin, can(domain.PermQuizManage), h.QuizAdmin.DeleteQuiz)
	quiz.Get("/:id/results", admin, can(domain.PermQuizManage), h.QuizAdmin.ListResults)
	quiz.Get("/:id/results/export", admin, can(domain.PermQuizManage), h.QuizAdmin.ExportResults)
	quiz.Post("/:id/generate-link", admin, can(domain.PermQuizManage), h.QuizAdmin.GenerateLink)
	quiz.Get("/:id/generate-link", admin, can(domain.PermQuizManage), h.QuizAdmin.GetActiveLink)

	// Certificate routes
	sertifikat := router.Group("/sertifikat")
	sertifikat.Get("/verify", h.Sertifikat.Verify)
	sertifikat.Get("/list", admin, can(domain.PermSertifikatManage), h.Sertifikat.List)
	sertifikat.Get("/", h.Sertifikat.CheckEligibility)
	sertifikat.Post("/", publicWrite(), h.Sertifikat.Issue)

	// Code redeem routes
	code := router.Group("/code-redeem")
	code.Post("/claim", publicWrite(), h.CodeRedeem.Claim)
	code.Post("/", admin, can(domain.PermCodeRedeemManage), h.CodeRedeem.CreateCode)
	code.Get("/", admin, can(domain.PermCodeRedeemManage), h.CodeRedeem.ListCodes)
	code.Patch("/:id", admin, can(domain.PermCodeRedeemManage), h.CodeRedeem.ToggleCode)
	code.Get("/:id/usage", admin, can(domain.PermCodeRedeemManage), h.CodeRedeem.ListUsage)

	// Contributor routes
	kontributor := router.Group("/kontributor")
	kontributor.Get("/leaderboard", h.Kontributor.Leaderboard)
	kontributor.Get("/export", admin, can(domain.PermKontributorManage), h.Kontributor.Export)
	kontributor.Post("/", admin, can(domain.PermKontributorManage), h.Kontributor.Create)
	kontributor.Post("/:id/poin", admin, can(domain.PermKontributorManage), h.Kontributor.AdjustPoin)
	kontributor.Get("/:nim", h.Kontributor.GetByNIM)

	// Meeting routes
	pertemuan := router.Group("/pertemuan", admin, can(domain.PermPertemuanManage))
	pertemuan.Post("/", h.Pertemuan.Create)
	pertemuan.Get("/", h.Pertemuan.List)
	pertemuan.Post("/:id/absensi", h.Pertemuan.UpsertAbsensi)

	// Push routes
	push := router.Group("/push")
	push.Get("/public-key", h.Push.PublicKey)
	push.Post("/subscribe", h.Push.Subscribe)
	push.Post("/unsubscribe", h.Push.Unsubscribe)
	push.Post("/broadcast", admin, can(domain.PermNotifikasiSend), h.Push.Broadcast)

	router.Get("/activity-log", admin, middleware.RequireSuperAdmin(), h.Activity.ListRecent)
}
