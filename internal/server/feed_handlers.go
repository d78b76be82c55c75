package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed?q=&date=
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := currentUserID(c)
	page := parsePagination(c, 20)

	posts, err := s.feedService.ComposeFeed(c.Context(), userID, service.FeedOptions{
		Keyword: c.Query("q"),
		Date:    c.Query("date"),
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(posts)
}
