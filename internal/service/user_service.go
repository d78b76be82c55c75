package service

import (
	"context"

	"ripple/internal/authz"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

// UserService provides account and profile business logic.
type UserService struct {
	userRepo repository.UserRepository
}

type UpdateProfileInput struct {
	ActorID uint
	UserID  uint
	Bio     string
	Avatar  string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetProfile returns the user with their recent posts preloaded.
func (s *UserService) GetProfile(ctx context.Context, id uint, postLimit int) (*models.User, error) {
	return s.userRepo.GetByIDWithPosts(ctx, id, postLimit)
}

// UpdateProfile applies the non-empty fields to the target profile. Only
// the profile's own user may update it.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(authz.ActionUpdateProfile, in.ActorID, user); err != nil {
		return nil, err
	}

	if in.Bio != "" {
		if err := validation.ValidateBio(in.Bio); err != nil {
			return nil, err
		}
		user.Bio = in.Bio
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
