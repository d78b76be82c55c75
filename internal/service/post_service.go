package service

import (
	"context"

	"ripple/internal/authz"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"

	"gorm.io/gorm"
)

// PostService provides post and like business logic.
type PostService struct {
	db            *gorm.DB
	postRepo      repository.PostRepository
	userRepo      repository.UserRepository
	notifications *NotificationService
}

type CreatePostInput struct {
	UserID   uint
	Content  string
	MediaURL string
}

type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Content  string
	MediaURL string
}

// NewPostService returns a new PostService.
func NewPostService(db *gorm.DB, postRepo repository.PostRepository, userRepo repository.UserRepository, notifications *NotificationService) *PostService {
	return &PostService{
		db:            db,
		postRepo:      postRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validation.ValidateContent(in.Content); err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:   in.UserID,
		Content:  in.Content,
		MediaURL: in.MediaURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

func (s *PostService) ListPosts(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.List(ctx, limit, offset, currentUserID)
}

func (s *PostService) GetUserPosts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(authz.ActionUpdatePost, in.UserID, post); err != nil {
		return nil, err
	}

	if in.Content != "" {
		if err := validation.ValidateContent(in.Content); err != nil {
			return nil, err
		}
		post.Content = in.Content
	}
	if in.MediaURL != "" {
		post.MediaURL = in.MediaURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if err := authz.Authorize(authz.ActionDeletePost, userID, post); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, postID)
}

// LikePost records the user's like and notifies the post author. Both rows
// commit together. Liking your own post stores the like but skips the
// notification.
func (s *PostService) LikePost(ctx context.Context, userID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	liker, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var notif *models.Notification
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		like := &models.Like{UserID: userID, PostID: postID}
		if err := repository.NewPostRepository(tx).Like(ctx, like); err != nil {
			return err
		}
		if post.UserID == userID {
			return nil
		}
		notif = likeNotification(liker, post)
		return repository.NewNotificationRepository(tx).Create(ctx, notif)
	})
	if err != nil {
		return nil, err
	}

	s.notifications.Dispatch(ctx, notif)

	return s.postRepo.GetByID(ctx, postID, userID)
}

// UnlikePost removes the user's like if present. There is no like record to
// remove otherwise, so the absence is reported as not found.
func (s *PostService) UnlikePost(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, userID); err != nil {
		return nil, err
	}

	removed, err := s.postRepo.Unlike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, models.NewNotFoundError("Like", postID)
	}

	return s.postRepo.GetByID(ctx, postID, userID)
}
