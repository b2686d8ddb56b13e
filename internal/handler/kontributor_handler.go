package handler

import (
	"strings"

	"dcn-community/internal/domain"
	"dcn-community/internal/dto"
	"dcn-community/internal/middleware"
	"dcn-community/internal/service"
	"dcn-community/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// KontributorHandler handles contributor profiles and the leaderboard
type KontributorHandler struct {
	service   service.KontributorService
	validator *validation.Validator
}

// NewKontributorHandler creates a new KontributorHandler instance
func NewKontributorHandler(s service.KontributorService, v *validation.Validator) *KontributorHandler {
	return &KontributorHandler{service: s, validator: v}
}

// Leaderboard godoc
// @Summary Contributor leaderboard
// @Description Contributors ordered by points. Equal totals share a rank.
// @Tags kontributor
// @Produce json
// @Param limit query int false "Number of entries (default 10, max 100)"
// @Success 200 {array} dto.LeaderboardEntry
// @Router /kontributor/leaderboard [get]
func (h *KontributorHandler) Leaderboard(c *fiber.Ctx) error {
	entries, err := h.service.Leaderboard(c.UserContext(), queryInt(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

// GetByNIM godoc
// @Summary Contributor profile
// @Tags kontributor
// @Produce json
// @Param nim path string true "NIM"
// @Success 200 {object} dto.KontributorProfileResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /kontributor/{nim} [get]
func (h *KontributorHandler) GetByNIM(c *fiber.Ctx) error {
	nim := strings.TrimSpace(c.Params("nim"))
	if nim == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("nim")}
	}
	profile, err := h.service.GetByNIM(c.UserContext(), nim)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// Create godoc
// @Summary Register a contributor
// @Tags kontributor
// @Accept json
// @Produce json
// @Param request body dto.CreateKontributorRequest true "Contributor"
// @Success 201 {object} dto.KontributorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /kontributor [post]
func (h *KontributorHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateKontributorRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	resp, err := h.service.Create(c.UserContext(), middleware.CurrentAdmin(c).ID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// AdjustPoin godoc
// @Summary Adjust contributor points
// @Description Adds delta (may be negative) to the total. The total never drops below zero.
// @Tags kontributor
// @Accept json
// @Produce json
// @Param id path string true "Kontributor ID"
// @Param request body dto.AdjustPoinRequest true "Adjustment"
// @Success 200 {object} dto.AdjustPoinResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /kontributor/{id}/poin [post]
func (h *KontributorHandler) AdjustPoin(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); errs != nil {
		return errs
	}
	var req dto.AdjustPoinRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	resp, err := h.service.AdjustPoin(c.UserContext(), middleware.CurrentAdmin(c).ID, id, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Export godoc
// @Summary Export the leaderboard
// @Tags kontributor
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Security ApiKeyAuth
// @Router /kontributor/export [get]
func (h *KontributorHandler) Export(c *fiber.Ctx) error {
	b, name, err := h.service.ExportLeaderboard(c.UserContext())
	if err != nil {
		return err
	}
	return sendWorkbook(c, b, name)
}
