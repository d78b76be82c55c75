package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"ripple/internal/authz"
	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/repository"
)

// NotificationPublisher pushes a serialized notification to the recipient's
// real-time channel. Delivery is best effort.
type NotificationPublisher interface {
	PublishUser(ctx context.Context, userID uint, payload string) error
}

// NotificationService provides read and acknowledgement operations over a
// user's notification inbox, plus post-commit fan-out for new notifications.
type NotificationService struct {
	notifRepo repository.NotificationRepository
	publisher NotificationPublisher
}

// NewNotificationService returns a new NotificationService. publisher may be
// nil when real-time delivery is disabled.
func NewNotificationService(notifRepo repository.NotificationRepository, publisher NotificationPublisher) *NotificationService {
	return &NotificationService{notifRepo: notifRepo, publisher: publisher}
}

// ListNotifications returns the user's notifications, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, userID uint, limit, offset int) ([]models.Notification, error) {
	return s.notifRepo.ListByRecipient(ctx, userID, limit, offset)
}

// UnreadCount returns the number of unread notifications for the user.
func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

// MarkRead flags a single notification as read. Only the recipient may
// acknowledge it; the read flag stays unchanged for anyone else.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint) (*models.Notification, error) {
	n, err := s.notifRepo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(authz.ActionReadNotification, userID, n); err != nil {
		return nil, err
	}
	if err := s.notifRepo.MarkRead(ctx, notificationID); err != nil {
		return nil, err
	}
	n.IsRead = true
	return n, nil
}

// MarkAllRead flags every unread notification for the user in one statement
// and returns how many rows changed.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return s.notifRepo.MarkAllRead(ctx, userID)
}

// Dispatch performs the post-commit side effects for a freshly stored
// notification: the emitted-by-kind counter and the real-time publish.
// Publish failures are logged, never propagated; the row is already durable.
func (s *NotificationService) Dispatch(ctx context.Context, n *models.Notification) {
	if n == nil {
		return
	}
	middleware.NotificationsEmitted.WithLabelValues(string(n.Kind)).Inc()

	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(n)
	if err != nil {
		slog.ErrorContext(ctx, "marshal notification", "notification_id", n.ID, "error", err)
		return
	}
	if err := s.publisher.PublishUser(ctx, n.RecipientID, string(payload)); err != nil {
		slog.WarnContext(ctx, "publish notification", "notification_id", n.ID, "recipient_id", n.RecipientID, "error", err)
	}
}

// followNotification builds the inbox entry for a new follower.
func followNotification(follower *models.User, followeeID uint) *models.Notification {
	return &models.Notification{
		RecipientID: followeeID,
		SenderID:    &follower.ID,
		Kind:        models.NotificationKindFollow,
		Message:     fmt.Sprintf("%s started following you.", follower.Username),
	}
}

// likeNotification builds the inbox entry for a like on the user's post.
func likeNotification(liker *models.User, post *models.Post) *models.Notification {
	return &models.Notification{
		RecipientID: post.UserID,
		SenderID:    &liker.ID,
		PostID:      &post.ID,
		Kind:        models.NotificationKindLike,
		Message:     fmt.Sprintf("%s liked your post.", liker.Username),
	}
}

// commentNotification builds the inbox entry for a comment on the user's post.
func commentNotification(commenter *models.User, post *models.Post, commentID uint) *models.Notification {
	return &models.Notification{
		RecipientID: post.UserID,
		SenderID:    &commenter.ID,
		PostID:      &post.ID,
		CommentID:   &commentID,
		Kind:        models.NotificationKindComment,
		Message:     fmt.Sprintf("%s commented on your post.", commenter.Username),
	}
}
