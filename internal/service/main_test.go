package service

import (
	"context"
	"sync"
	"testing"

	"ripple/internal/database"
	"ripple/internal/models"
	"ripple/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// publisherSpy records every real-time publish for assertions.
type publisherSpy struct {
	mu       sync.Mutex
	payloads map[uint][]string
	err      error
}

func newPublisherSpy() *publisherSpy {
	return &publisherSpy{payloads: make(map[uint][]string)}
}

func (p *publisherSpy) PublishUser(_ context.Context, userID uint, payload string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.payloads[userID] = append(p.payloads[userID], payload)
	return nil
}

func (p *publisherSpy) sentTo(userID uint) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.payloads[userID]
}

// testEnv wires real repositories over an in-memory database so service
// tests observe actual transaction behavior.
type testEnv struct {
	db        *gorm.DB
	spy       *publisherSpy
	users     *UserService
	posts     *PostService
	comments  *CommentService
	follows   *FollowService
	feed      *FeedService
	inbox     *NotificationService
	userRepo  repository.UserRepository
	postRepo  repository.PostRepository
	notifRepo repository.NotificationRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	spy := newPublisherSpy()
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	inbox := NewNotificationService(notifRepo, spy)

	return &testEnv{
		db:        db,
		spy:       spy,
		users:     NewUserService(userRepo),
		posts:     NewPostService(db, postRepo, userRepo, inbox),
		comments:  NewCommentService(db, commentRepo, postRepo, userRepo, inbox),
		follows:   NewFollowService(db, followRepo, userRepo, inbox),
		feed:      NewFeedService(followRepo, postRepo, false),
		inbox:     inbox,
		userRepo:  userRepo,
		postRepo:  postRepo,
		notifRepo: notifRepo,
	}
}

func (e *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()

	u := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed-password",
	}
	require.NoError(t, e.userRepo.Create(context.Background(), u))
	return u
}

func (e *testEnv) createPost(t *testing.T, userID uint, content string) *models.Post {
	t.Helper()

	p := &models.Post{UserID: userID, Content: content}
	require.NoError(t, e.postRepo.Create(context.Background(), p))
	return p
}
