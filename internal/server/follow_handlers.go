package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateFollow handles POST /api/follows
func (s *Server) CreateFollow(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		FolloweeID uint `json:"followee_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.FolloweeID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("followee_id is required"))
	}

	follow, err := s.followService.Follow(c.Context(), userID, req.FolloweeID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(follow)
}

// GetFollowing handles GET /api/follows
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	userID := currentUserID(c)

	follows, err := s.followService.ListFollowing(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(follows)
}

// GetFollowStatus handles GET /api/follows/status/:userId
func (s *Server) GetFollowStatus(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	userID := currentUserID(c)

	following, err := s.followService.IsFollowing(c.Context(), userID, targetID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"following": following})
}

// DeleteFollow handles DELETE /api/follows/:id
func (s *Server) DeleteFollow(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := currentUserID(c)

	if err := s.followService.Unfollow(c.Context(), userID, id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Unfollowed"})
}
