package models

import "time"

// NotificationKind classifies the event a notification reports.
type NotificationKind string

const (
	// NotificationKindLike is emitted when someone likes a post.
	NotificationKindLike NotificationKind = "like"
	// NotificationKindComment is emitted when someone comments on a post.
	NotificationKindComment NotificationKind = "comment"
	// NotificationKindFollow is emitted when someone follows a user.
	NotificationKindFollow NotificationKind = "follow"
	// NotificationKindRepost is reserved for future expansion.
	NotificationKindRepost NotificationKind = "repost"
	// NotificationKindMention is reserved for future expansion.
	NotificationKindMention NotificationKind = "mention"
)

// ValidNotificationKind reports whether k is a known notification kind.
func ValidNotificationKind(k NotificationKind) bool {
	switch k {
	case NotificationKindLike, NotificationKindComment, NotificationKindFollow,
		NotificationKindRepost, NotificationKindMention:
		return true
	}
	return false
}

// Notification is an append-only per-recipient event record. Only the
// IsRead flag mutates, and only from false to true.
type Notification struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	RecipientID uint             `gorm:"not null;index" json:"recipient_id"`
	SenderID    *uint            `gorm:"index" json:"sender_id,omitempty"`
	PostID      *uint            `json:"post_id,omitempty"`
	CommentID   *uint            `json:"comment_id,omitempty"`
	Kind        NotificationKind `gorm:"type:varchar(20);not null" json:"kind"`
	Message     string           `gorm:"type:text;not null" json:"message"`
	IsRead      bool             `gorm:"not null;default:false;index:idx_notifications_unread" json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`

	// Relationships
	Recipient User  `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	Sender    *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

// OwnerID returns the recipient; only the recipient may mark it read.
func (n *Notification) OwnerID() uint { return n.RecipientID }
