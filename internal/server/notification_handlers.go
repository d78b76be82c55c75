package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications handles GET /api/notifications
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	userID := currentUserID(c)
	page := parsePagination(c, 50)

	notifs, err := s.notificationService.ListNotifications(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(notifs)
}

// GetUnreadCount handles GET /api/notifications/unread-count
func (s *Server) GetUnreadCount(c *fiber.Ctx) error {
	userID := currentUserID(c)

	count, err := s.notificationService.UnreadCount(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"unread": count})
}

// MarkNotificationRead handles PATCH /api/notifications/:id/read and
// PATCH /api/notifications/:id. The read flag only moves from false to
// true, so a body asking for anything else is rejected.
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := currentUserID(c)

	if len(c.Body()) > 0 {
		var req struct {
			Read *bool `json:"read"`
		}
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
		if req.Read != nil && !*req.Read {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Notifications cannot be marked unread"))
		}
	}

	notif, err := s.notificationService.MarkRead(c.Context(), userID, id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(notif)
}

// MarkAllNotificationsRead handles PATCH /api/notifications/mark_all_as_read
func (s *Server) MarkAllNotificationsRead(c *fiber.Ctx) error {
	userID := currentUserID(c)

	updated, err := s.notificationService.MarkAllRead(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"marked_read": updated})
}
