package handler

import (
	"dcn-community/internal/dto"
	"dcn-community/internal/service"
	"dcn-community/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const defaultSertifikatPageSize = 50

// SertifikatHandler handles certificate eligibility, issuance and verification
type SertifikatHandler struct {
	service   service.SertifikatService
	validator *validation.Validator
}

// NewSertifikatHandler creates a new SertifikatHandler instance
func NewSertifikatHandler(s service.SertifikatService, v *validation.Validator) *SertifikatHandler {
	return &SertifikatHandler{service: s, validator: v}
}

// CheckEligibility godoc
// @Summary Check certificate eligibility
// @Description Lists the meetings and the quiz certificate a contributor can claim.
// @Tags sertifikat
// @Produce json
// @Param email query string true "Contributor email"
// @Success 200 {object} dto.EligibilityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sertifikat [get]
func (h *SertifikatHandler) CheckEligibility(c *fiber.Ctx) error {
	resp, err := h.service.CheckEligibility(c.UserContext(), c.Query("email"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Issue godoc
// @Summary Claim a certificate
// @Description Issues the certificate, or returns the one already issued for the same claim.
// @Tags sertifikat
// @Accept json
// @Produce json
// @Param request body dto.IssueSertifikatRequest true "Claim"
// @Success 200 {object} dto.IssueSertifikatResponse "Already issued"
// @Success 201 {object} dto.IssueSertifikatResponse "Newly issued"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sertifikat [post]
func (h *SertifikatHandler) Issue(c *fiber.Ctx) error {
	var req dto.IssueSertifikatRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	resp, err := h.service.IssueCertificate(c.UserContext(), &req)
	if err != nil {
		return err
	}
	status := fiber.StatusOK
	if resp.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(resp)
}

// Verify godoc
// @Summary Verify a certificate number
// @Tags sertifikat
// @Produce json
// @Param nomor query string true "Certificate number"
// @Success 200 {object} dto.VerifySertifikatResponse
// @Failure 404 {object} dto.ErrorResponse "valid=false"
// @Router /sertifikat/verify [get]
func (h *SertifikatHandler) Verify(c *fiber.Ctx) error {
	resp, err := h.service.VerifyCertificate(c.UserContext(), c.Query("nomor"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// List godoc
// @Summary List issued certificates
// @Tags sertifikat
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.SertifikatListItem
// @Security ApiKeyAuth
// @Router /sertifikat/list [get]
func (h *SertifikatHandler) List(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext(), queryInt(c, "limit", defaultSertifikatPageSize), queryInt(c, "offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(items)
}
