package handler

import (
	"dcn-community/internal/domain"
	"dcn-community/internal/dto"
	"dcn-community/internal/service"
	"dcn-community/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizSessionHandler serves the participant side of a quiz link.
type QuizSessionHandler struct {
	service   service.QuizSessionService
	validator *validation.Validator
}

// NewQuizSessionHandler creates a new QuizSessionHandler instance
func NewQuizSessionHandler(s service.QuizSessionService, v *validation.Validator) *QuizSessionHandler {
	return &QuizSessionHandler{service: s, validator: v}
}

// GetSession godoc
// @Summary Open a quiz link
// @Description Resolves a session token to its quiz. Questions never include the answer key.
// @Tags quiz
// @Produce json
// @Param token path string true "Session token"
// @Success 200 {object} dto.SessionQuizResponse
// @Failure 403 {object} dto.ErrorResponse "already_submitted=true"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 410 {object} dto.ErrorResponse "expired=true"
// @Router /quiz/session/{token} [get]
func (h *QuizSessionHandler) GetSession(c *fiber.Ctx) error {
	token := c.Params("token")
	// A malformed token is reported the same way as an unknown one.
	if errs := h.validator.ValidateSessionToken(token); errs != nil {
		return domain.NewNotFoundError("Link kuis tidak valid")
	}
	resp, err := h.service.ResolveSession(c.UserContext(), token)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Submit godoc
// @Summary Submit quiz answers
// @Description Scores the answer sheet. Each session accepts one submission.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SubmitQuizRequest true "Answers keyed by question id"
// @Success 200 {object} dto.SubmitQuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 410 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /quiz/submit [post]
func (h *QuizSessionHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Data tidak lengkap")
	}
	resp, err := h.service.Submit(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
