package service

import (
	"context"

	"ripple/internal/authz"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"

	"gorm.io/gorm"
)

// CommentService provides comment business logic.
type CommentService struct {
	db            *gorm.DB
	commentRepo   repository.CommentRepository
	postRepo      repository.PostRepository
	userRepo      repository.UserRepository
	notifications *NotificationService
}

// NewCommentService returns a new CommentService.
func NewCommentService(db *gorm.DB, commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository, notifications *NotificationService) *CommentService {
	return &CommentService{
		db:            db,
		commentRepo:   commentRepo,
		postRepo:      postRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// AddComment stores the comment and the author's notification in one
// transaction. Commenting on your own post skips the notification.
func (s *CommentService) AddComment(ctx context.Context, userID, postID uint, content string) (*models.Comment, error) {
	if err := validation.ValidateContent(content); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	commenter, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:  userID,
		PostID:  postID,
		Content: content,
	}

	var notif *models.Notification
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.NewCommentRepository(tx).Create(ctx, comment); err != nil {
			return err
		}
		if post.UserID == userID {
			return nil
		}
		notif = commentNotification(commenter, post, comment.ID)
		return repository.NewNotificationRepository(tx).Create(ctx, notif)
	})
	if err != nil {
		return nil, err
	}

	s.notifications.Dispatch(ctx, notif)

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns comments on the post, newest first.
func (s *CommentService) ListComments(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID, limit, offset)
}

// UpdateComment edits the comment body. Only the author may edit.
func (s *CommentService) UpdateComment(ctx context.Context, userID, commentID uint, content string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(authz.ActionUpdateComment, userID, comment); err != nil {
		return nil, err
	}
	if err := validation.ValidateContent(content); err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes the comment. Only the author may delete.
func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if err := authz.Authorize(authz.ActionDeleteComment, userID, comment); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, commentID)
}
