// Package seed provides helpers to create demo data for development and
// testing. Never run against a production database.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rnd  *rand.Rand
	opts Options

	// precomputed hash shared by all seeded users; hashing per user makes
	// large seeds unbearably slow
	passwordHash string
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) (*Factory, error) {
	gofakeit.Seed(opts.randomSeed())

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.password()), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	return &Factory{
		db:           db,
		rnd:          rand.New(rand.NewSource(opts.randomSeed())),
		opts:         opts,
		passwordHash: string(hash),
	}, nil
}

// CreateUser persists a user with a fake but plausible identity.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	username := f.uniqueUsername()
	user := &models.User{
		Username: username,
		Email:    strings.ToLower(username) + "@" + gofakeit.DomainName(),
		Password: f.passwordHash,
		Bio:      gofakeit.Sentence(8),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create seed user: %w", err)
	}
	return user, nil
}

// CreatePost persists a post for the user with a created_at spread over the
// recent past so feeds and date filters have something to chew on.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		UserID:    user.ID,
		Content:   f.postContent(),
		CreatedAt: f.pastTimestamp(),
	}
	if f.rnd.Intn(4) == 0 {
		post.MediaURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
	}
	for _, override := range overrides {
		override(post)
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("create seed post: %w", err)
	}
	return post, nil
}

// CreateComment persists a comment by the user on the post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		UserID:    user.ID,
		PostID:    post.ID,
		Content:   gofakeit.Sentence(6 + f.rnd.Intn(10)),
		CreatedAt: f.pastTimestamp(),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("create seed comment: %w", err)
	}
	return comment, nil
}

// CreateLike persists a like edge. Duplicate pairs are skipped silently so
// random meshes do not have to track what they already generated.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{UserID: user.ID, PostID: post.ID}
	err := f.db.Create(like).Error
	if err != nil && isDuplicate(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create seed like: %w", err)
	}
	return nil
}

// CreateFollow persists a follow edge, skipping self-follows and duplicates.
func (f *Factory) CreateFollow(follower, followee *models.User) error {
	if follower.ID == followee.ID {
		return nil
	}
	follow := &models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}
	err := f.db.Create(follow).Error
	if err != nil && isDuplicate(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create seed follow: %w", err)
	}
	return nil
}

// CreateNotification persists a notification of the given kind from sender
// to recipient, mirroring what the live services would emit.
func (f *Factory) CreateNotification(kind models.NotificationKind, sender, recipient *models.User, post *models.Post) error {
	n := &models.Notification{
		RecipientID: recipient.ID,
		SenderID:    &sender.ID,
		Kind:        kind,
		IsRead:      f.rnd.Intn(3) == 0,
		CreatedAt:   f.pastTimestamp(),
	}
	switch kind {
	case models.NotificationKindFollow:
		n.Message = fmt.Sprintf("%s started following you.", sender.Username)
	case models.NotificationKindLike:
		n.Message = fmt.Sprintf("%s liked your post.", sender.Username)
		n.PostID = &post.ID
	case models.NotificationKindComment:
		n.Message = fmt.Sprintf("%s commented on your post.", sender.Username)
		n.PostID = &post.ID
	default:
		n.Message = fmt.Sprintf("%s interacted with you.", sender.Username)
	}
	if err := f.db.Create(n).Error; err != nil {
		return fmt.Errorf("create seed notification: %w", err)
	}
	return nil
}

func (f *Factory) uniqueUsername() string {
	base := strings.ToLower(gofakeit.Username())
	base = strings.Trim(strings.ReplaceAll(base, ".", "-"), "-_")
	if len(base) < 3 {
		base = "user"
	}
	if len(base) > 20 {
		base = base[:20]
	}
	return fmt.Sprintf("%s%d", base, f.rnd.Intn(100000))
}

func (f *Factory) postContent() string {
	switch f.rnd.Intn(3) {
	case 0:
		return gofakeit.HipsterSentence(10 + f.rnd.Intn(15))
	case 1:
		return fmt.Sprintf("%s %s", gofakeit.Emoji(), gofakeit.Sentence(8+f.rnd.Intn(12)))
	default:
		return gofakeit.Paragraph(1, 2, 8, " ")
	}
}

// pastTimestamp returns a time spread over the last MaxDays days.
func (f *Factory) pastTimestamp() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 30
	}
	back := time.Duration(f.rnd.Intn(maxDays*24*60)) * time.Minute
	return time.Now().Add(-back)
}

func isDuplicate(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
