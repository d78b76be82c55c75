package server

import (
	"ripple/internal/cache"
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.userService.GetProfile(c.Context(), userID, 10)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Bio    string `json:"bio"`
		Avatar string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		ActorID: userID,
		UserID:  userID,
		Bio:     req.Bio,
		Avatar:  req.Avatar,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	cache.InvalidateUser(c.Context(), userID)

	return c.JSON(user)
}

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	users, err := s.userService.ListUsers(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return c.JSON(public)
}

// GetUserProfile handles GET /api/users/:id. Other users see the public
// projection with recent posts; the cache absorbs repeated profile views.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	type profileResponse struct {
		models.PublicUser
		Bio   string        `json:"bio"`
		Posts []models.Post `json:"posts"`
	}

	var resp profileResponse
	key := cache.UserKey(id)
	if cache.GetJSON(c.Context(), key, &resp) {
		return c.JSON(resp)
	}

	user, svcErr := s.userService.GetProfile(c.Context(), id, 10)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}

	resp = profileResponse{
		PublicUser: user.Public(),
		Bio:        user.Bio,
		Posts:      user.Posts,
	}
	cache.SetJSON(c.Context(), key, resp, cache.UserTTL)

	return c.JSON(resp)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)
	userID := currentUserID(c)

	posts, svcErr := s.postService.GetUserPosts(c.Context(), id, page.Limit, page.Offset, userID)
	if svcErr != nil {
		return models.RespondWithAppError(c, svcErr)
	}

	return c.JSON(posts)
}
