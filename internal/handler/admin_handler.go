package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/backend/internal/models"
	"github.com/campusconnect/backend/internal/service"
)

type AdminHandler struct {
	adminService *service.AdminService
	eventService *service.EventService
}

func NewAdminHandler(adminService *service.AdminService, eventService *service.EventService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		eventService: eventService,
	}
}

func (h *AdminHandler) ListOrganizers(c *fiber.Ctx) error {
	organizers, err := h.adminService.ListOrganizers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(organizers, ""))
}

// VerifyOrganizer sets the verification flag on an organizer account. A
// missing flag in the body defaults to verified.
func (h *AdminHandler) VerifyOrganizer(c *fiber.Ctx) error {
	var req models.VerifyOrganizerRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	verified := req.IsVerifiedOrganizer == nil || *req.IsVerifiedOrganizer
	user, err := h.adminService.SetOrganizerVerification(c.Context(), c.Params("id"), verified)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(user, "Organizer updated"))
}

// ListAllEvents returns every event, blocked ones included.
func (h *AdminHandler) ListAllEvents(c *fiber.Ctx) error {
	events, err := h.eventService.ListAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.SuccessResponse(events, ""))
}
