package handler

import (
	"dcn-community/internal/dto"
	"dcn-community/internal/middleware"
	"dcn-community/internal/service"
	"dcn-community/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// PushHandler handles web push subscriptions and broadcasts
type PushHandler struct {
	service        service.NotificationService
	validator      *validation.Validator
	vapidPublicKey string
}

// NewPushHandler creates a new PushHandler instance
func NewPushHandler(s service.NotificationService, v *validation.Validator, vapidPublicKey string) *PushHandler {
	return &PushHandler{service: s, validator: v, vapidPublicKey: vapidPublicKey}
}

// PublicKey godoc
// @Summary VAPID public key
// @Description Key the browser needs to create a push subscription.
// @Tags push
// @Produce json
// @Success 200 {object} map[string]string
// @Router /push/public-key [get]
func (h *PushHandler) PublicKey(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"public_key": h.vapidPublicKey})
}

// Subscribe godoc
// @Summary Subscribe to push notifications
// @Tags push
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Push subscription"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /push/subscribe [post]
func (h *PushHandler) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscribeRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	if err := h.service.Subscribe(c.UserContext(), &req); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Berhasil berlangganan notifikasi"})
}

// Unsubscribe godoc
// @Summary Unsubscribe from push notifications
// @Tags push
// @Accept json
// @Produce json
// @Param request body dto.UnsubscribeRequest true "Endpoint"
// @Success 200 {object} dto.MessageResponse
// @Router /push/unsubscribe [post]
func (h *PushHandler) Unsubscribe(c *fiber.Ctx) error {
	var req dto.UnsubscribeRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	if err := h.service.Unsubscribe(c.UserContext(), req.Endpoint); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Berhasil berhenti berlangganan notifikasi"})
}

// Broadcast godoc
// @Summary Broadcast a push notification
// @Description Sends to every subscription. Subscriptions reported gone are removed.
// @Tags push
// @Accept json
// @Produce json
// @Param request body dto.BroadcastRequest true "Message"
// @Success 200 {object} dto.BroadcastResponse
// @Security ApiKeyAuth
// @Router /push/broadcast [post]
func (h *PushHandler) Broadcast(c *fiber.Ctx) error {
	var req dto.BroadcastRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	resp, err := h.service.Broadcast(c.UserContext(), middleware.CurrentAdmin(c).ID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
