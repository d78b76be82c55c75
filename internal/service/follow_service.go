package service

import (
	"context"

	"ripple/internal/authz"
	"ripple/internal/models"
	"ripple/internal/repository"

	"gorm.io/gorm"
)

// FollowService provides follow-graph business logic. Edge creation and the
// matching notification commit in one transaction so the graph and the inbox
// never disagree.
type FollowService struct {
	db            *gorm.DB
	followRepo    repository.FollowRepository
	userRepo      repository.UserRepository
	notifications *NotificationService
}

// NewFollowService returns a new FollowService.
func NewFollowService(db *gorm.DB, followRepo repository.FollowRepository, userRepo repository.UserRepository, notifications *NotificationService) *FollowService {
	return &FollowService{
		db:            db,
		followRepo:    followRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// Follow creates a follower -> followee edge and notifies the followee.
// The uniqueness check here is advisory; the edge's unique constraint is
// what actually rejects a concurrent duplicate.
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID uint) (*models.Follow, error) {
	if followerID == followeeID {
		return nil, models.NewSelfReferenceError("You cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return nil, err
	}

	exists, err := s.followRepo.Exists(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewDuplicateError("You are already following this user")
	}

	follower, err := s.userRepo.GetByID(ctx, followerID)
	if err != nil {
		return nil, err
	}

	follow := &models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	notif := followNotification(follower, followeeID)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.NewFollowRepository(tx).Create(ctx, follow); err != nil {
			return err
		}
		return repository.NewNotificationRepository(tx).Create(ctx, notif)
	})
	if err != nil {
		return nil, err
	}

	s.notifications.Dispatch(ctx, notif)

	return s.followRepo.GetByID(ctx, follow.ID)
}

// Unfollow removes a follow edge. Edges are scoped to the follower who
// created them; anyone else observes the edge as absent.
func (s *FollowService) Unfollow(ctx context.Context, userID, followID uint) error {
	follow, err := s.followRepo.GetByID(ctx, followID)
	if err != nil {
		return err
	}
	if err := authz.Authorize(authz.ActionDeleteFollow, userID, follow); err != nil {
		return models.NewNotFoundError("Follow", followID)
	}
	return s.followRepo.Delete(ctx, followID)
}

// ListFollowing returns the user's outgoing follow edges, newest first.
func (s *FollowService) ListFollowing(ctx context.Context, userID uint) ([]models.Follow, error) {
	return s.followRepo.ListByFollower(ctx, userID)
}

// IsFollowing reports whether follower currently follows followee.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followeeID)
}
