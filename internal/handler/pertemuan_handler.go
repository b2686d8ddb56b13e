package handler

import (
	"dcn-community/internal/dto"
	"dcn-community/internal/middleware"
	"dcn-community/internal/service"
	"dcn-community/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// PertemuanHandler handles meetings and attendance
type PertemuanHandler struct {
	service   service.PertemuanService
	validator *validation.Validator
}

// NewPertemuanHandler creates a new PertemuanHandler instance
func NewPertemuanHandler(s service.PertemuanService, v *validation.Validator) *PertemuanHandler {
	return &PertemuanHandler{service: s, validator: v}
}

// Create godoc
// @Summary Create a meeting
// @Tags pertemuan
// @Accept json
// @Produce json
// @Param request body dto.CreatePertemuanRequest true "Meeting"
// @Success 201 {object} dto.PertemuanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /pertemuan [post]
func (h *PertemuanHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePertemuanRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	resp, err := h.service.Create(c.UserContext(), middleware.CurrentAdmin(c).ID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List meetings
// @Tags pertemuan
// @Produce json
// @Success 200 {array} dto.PertemuanResponse
// @Security ApiKeyAuth
// @Router /pertemuan [get]
func (h *PertemuanHandler) List(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// UpsertAbsensi godoc
// @Summary Record attendance
// @Description Creates or updates the attendance status of each listed contributor.
// @Tags pertemuan
// @Accept json
// @Produce json
// @Param id path string true "Pertemuan ID"
// @Param request body dto.UpsertAbsensiRequest true "Attendance"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /pertemuan/{id}/absensi [post]
func (h *PertemuanHandler) UpsertAbsensi(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); errs != nil {
		return errs
	}
	var req dto.UpsertAbsensiRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	n, err := h.service.UpsertAbsensi(c.UserContext(), middleware.CurrentAdmin(c).ID, id, &req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Absensi berhasil disimpan", "jumlah": n})
}
