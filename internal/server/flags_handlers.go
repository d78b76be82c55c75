package server

import "github.com/gofiber/fiber/v2"

// GetFeatureFlags handles GET /api/feature-flags. Clients use the evaluated
// snapshot to toggle UI behavior without redeploys.
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	userID := currentUserID(c)
	return c.JSON(fiber.Map{"flags": s.flags.Snapshot(userID)})
}
