package handler

import (
	"dcn-community/internal/dto"
	"dcn-community/internal/middleware"
	"dcn-community/internal/service"
	"dcn-community/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CodeRedeemHandler handles redemption codes
type CodeRedeemHandler struct {
	service   service.CodeRedeemService
	validator *validation.Validator
}

// NewCodeRedeemHandler creates a new CodeRedeemHandler instance
func NewCodeRedeemHandler(s service.CodeRedeemService, v *validation.Validator) *CodeRedeemHandler {
	return &CodeRedeemHandler{service: s, validator: v}
}

// Claim godoc
// @Summary Redeem a code
// @Description Credits the code's points to the contributor owning the NIM. Each contributor may redeem a code once.
// @Tags code-redeem
// @Accept json
// @Produce json
// @Param request body dto.ClaimCodeRequest true "Code and NIM"
// @Success 200 {object} dto.ClaimCodeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /code-redeem/claim [post]
func (h *CodeRedeemHandler) Claim(c *fiber.Ctx) error {
	var req dto.ClaimCodeRequest
	// The service reports missing fields with its own message.
	_ = c.BodyParser(&req)
	resp, err := h.service.Claim(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateCode godoc
// @Summary Create a redemption code
// @Description An empty code is replaced by a generated one.
// @Tags code-redeem
// @Accept json
// @Produce json
// @Param request body dto.CreateCodeRequest true "Code"
// @Success 201 {object} dto.CodeRedeemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /code-redeem [post]
func (h *CodeRedeemHandler) CreateCode(c *fiber.Ctx) error {
	var req dto.CreateCodeRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	resp, err := h.service.CreateCode(c.UserContext(), middleware.CurrentAdmin(c).ID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListCodes godoc
// @Summary List redemption codes
// @Tags code-redeem
// @Produce json
// @Success 200 {array} dto.CodeRedeemResponse
// @Security ApiKeyAuth
// @Router /code-redeem [get]
func (h *CodeRedeemHandler) ListCodes(c *fiber.Ctx) error {
	codes, err := h.service.ListCodes(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(codes)
}

// ToggleCode godoc
// @Summary Activate or deactivate a code
// @Tags code-redeem
// @Accept json
// @Produce json
// @Param id path string true "Code ID"
// @Param request body dto.ToggleCodeRequest true "Active flag"
// @Success 200 {object} dto.CodeRedeemResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /code-redeem/{id} [patch]
func (h *CodeRedeemHandler) ToggleCode(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); errs != nil {
		return errs
	}
	var req dto.ToggleCodeRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	resp, err := h.service.SetActive(c.UserContext(), middleware.CurrentAdmin(c).ID, id, *req.IsActive)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListUsage godoc
// @Summary List who redeemed a code
// @Tags code-redeem
// @Produce json
// @Param id path string true "Code ID"
// @Success 200 {array} dto.CodeUsageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /code-redeem/{id}/usage [get]
func (h *CodeRedeemHandler) ListUsage(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); errs != nil {
		return errs
	}
	usage, err := h.service.ListUsage(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(usage)
}
