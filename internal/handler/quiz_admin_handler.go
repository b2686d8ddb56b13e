package handler

import (
	"dcn-community/internal/dto"
	"dcn-community/internal/logger"
	"dcn-community/internal/middleware"
	"dcn-community/internal/service"
	"dcn-community/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizAdminHandler handles quiz management requests
type QuizAdminHandler struct {
	quizService    service.QuizAdminService
	sessionService service.QuizSessionService
	validator      *validation.Validator
}

// NewQuizAdminHandler creates a new QuizAdminHandler instance
func NewQuizAdminHandler(quizService service.QuizAdminService, sessionService service.QuizSessionService, v *validation.Validator) *QuizAdminHandler {
	return &QuizAdminHandler{
		quizService:    quizService,
		sessionService: sessionService,
		validator:      v,
	}
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description Creates a quiz together with its questions. The slug is generated from the title.
// @Tags quiz-admin
// @Accept json
// @Produce json
// @Param request body dto.CreateQuizRequest true "Quiz"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /quiz [post]
func (h *QuizAdminHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	admin := middleware.CurrentAdmin(c)
	resp, err := h.quizService.CreateQuiz(c.UserContext(), admin.ID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListQuizzes godoc
// @Summary List quizzes
// @Tags quiz-admin
// @Produce json
// @Success 200 {array} dto.QuizResponse
// @Security ApiKeyAuth
// @Router /quiz [get]
func (h *QuizAdminHandler) ListQuizzes(c *fiber.Ctx) error {
	quizzes, err := h.quizService.ListQuizzes(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}

// GetQuiz godoc
// @Summary Get quiz detail
// @Description Returns the quiz with its questions and answer key.
// @Tags quiz-admin
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /quiz/{id} [get]
func (h *QuizAdminHandler) GetQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); errs != nil {
		return errs
	}
	quiz, err := h.quizService.GetQuizDetail(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Deletes the quiz with its sessions and submissions.
// @Tags quiz-admin
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /quiz/{id} [delete]
func (h *QuizAdminHandler) DeleteQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); errs != nil {
		return errs
	}
	if err := h.quizService.DeleteQuiz(c.UserContext(), id); err != nil {
		return err
	}
	logger.Get().Info("Quiz deleted", zap.String("quizID", id), zap.String("adminID", middleware.CurrentAdmin(c).ID))
	return c.JSON(dto.MessageResponse{Success: true, Message: "Kuis berhasil dihapus"})
}

// ListResults godoc
// @Summary List quiz results
// @Tags quiz-admin
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {array} dto.SubmissionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /quiz/{id}/results [get]
func (h *QuizAdminHandler) ListResults(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); errs != nil {
		return errs
	}
	subs, err := h.quizService.ListSubmissions(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(subs)
}

// ExportResults godoc
// @Summary Export quiz results
// @Tags quiz-admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Quiz ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /quiz/{id}/results/export [get]
func (h *QuizAdminHandler) ExportResults(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); errs != nil {
		return errs
	}
	b, name, err := h.quizService.ExportSubmissions(c.UserContext(), id)
	if err != nil {
		return err
	}
	return sendWorkbook(c, b, name)
}

// GenerateLink godoc
// @Summary Generate a quiz link
// @Description Creates a new time-limited single-use session link for the quiz.
// @Tags quiz-admin
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 201 {object} dto.GenerateLinkResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /quiz/{id}/generate-link [post]
func (h *QuizAdminHandler) GenerateLink(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); errs != nil {
		return errs
	}
	link, err := h.sessionService.GenerateSession(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// GetActiveLink godoc
// @Summary Get the active quiz link
// @Description Returns the newest unexpired, unsubmitted link of the quiz, or is_active=false.
// @Tags quiz-admin
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.ActiveSessionResponse
// @Security ApiKeyAuth
// @Router /quiz/{id}/generate-link [get]
func (h *QuizAdminHandler) GetActiveLink(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); errs != nil {
		return errs
	}
	active, err := h.sessionService.GetActiveSession(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(active)
}
