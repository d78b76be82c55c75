package service

import (
	"context"
	"testing"
	"time"

	"ripple/internal/models"
	"ripple/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) createPostAt(t *testing.T, userID uint, content string, createdAt time.Time) *models.Post {
	t.Helper()

	p := &models.Post{UserID: userID, Content: content, CreatedAt: createdAt}
	require.NoError(t, e.postRepo.Create(context.Background(), p))
	return p
}

func TestFeedService_ComposeFeed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	carol := env.createUser(t, "carol")

	_, err := env.follows.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = env.follows.Follow(ctx, alice.ID, carol.ID)
	require.NoError(t, err)

	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	older := env.createPostAt(t, bob.ID, "older update", base)
	newer := env.createPostAt(t, carol.ID, "newer update", base.Add(time.Hour))
	// The viewer's own posts never appear in their feed.
	env.createPostAt(t, alice.ID, "my own update", base.Add(2*time.Hour))

	posts, err := env.feed.ComposeFeed(ctx, alice.ID, FeedOptions{Limit: 20})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)
}

func TestFeedService_ComposeFeed_FollowingNobody(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	env.createPost(t, bob.ID, "unseen")

	posts, err := env.feed.ComposeFeed(context.Background(), alice.ID, FeedOptions{Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestFeedService_ComposeFeed_Keyword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	_, err := env.follows.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	match := env.createPost(t, bob.ID, "the Coffee was great")
	env.createPost(t, bob.ID, "nothing here")

	posts, err := env.feed.ComposeFeed(ctx, alice.ID, FeedOptions{Keyword: "coffee", Limit: 20})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, match.ID, posts[0].ID)
}

func TestFeedService_ComposeFeed_DateFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	_, err := env.follows.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	onDay := env.createPostAt(t, bob.ID, "on the day", day.Add(15*time.Hour))
	env.createPostAt(t, bob.ID, "the day after", day.Add(26*time.Hour))

	posts, err := env.feed.ComposeFeed(ctx, alice.ID, FeedOptions{Date: "2026-06-01", Limit: 20})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, onDay.ID, posts[0].ID)
}

func TestFeedService_ComposeFeed_MalformedDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	_, err := env.follows.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	env.createPost(t, bob.ID, "still visible")

	// Lenient mode drops the filter and returns the unfiltered feed.
	posts, err := env.feed.ComposeFeed(ctx, alice.ID, FeedOptions{Date: "junk", Limit: 20})
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	// Strict mode rejects the request instead.
	strict := NewFeedService(repository.NewFollowRepository(env.db), env.postRepo, true)
	_, err = strict.ComposeFeed(ctx, alice.ID, FeedOptions{Date: "junk", Limit: 20})
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.ErrCodeValidation))
}

func TestFeedService_ComposeFeed_UnfollowedAuthorDisappears(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	follow, err := env.follows.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	env.createPost(t, bob.ID, "fleeting")

	posts, err := env.feed.ComposeFeed(ctx, alice.ID, FeedOptions{Limit: 20})
	require.NoError(t, err)
	require.Len(t, posts, 1)

	require.NoError(t, env.follows.Unfollow(ctx, alice.ID, follow.ID))

	posts, err = env.feed.ComposeFeed(ctx, alice.ID, FeedOptions{Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, posts)
}
