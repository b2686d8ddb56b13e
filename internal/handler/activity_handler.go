package handler

import (
	"dcn-community/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ActivityHandler exposes the audit log
type ActivityHandler struct {
	activity service.ActivityLogger
}

// NewActivityHandler creates a new ActivityHandler instance
func NewActivityHandler(activity service.ActivityLogger) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// ListRecent godoc
// @Summary Recent activity
// @Tags activity
// @Produce json
// @Param limit query int false "Number of entries (default 50, max 200)"
// @Success 200 {array} dto.ActivityLogResponse
// @Security ApiKeyAuth
// @Router /activity-log [get]
func (h *ActivityHandler) ListRecent(c *fiber.Ctx) error {
	entries, err := h.activity.ListRecent(c.UserContext(), queryInt(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(entries)
}
