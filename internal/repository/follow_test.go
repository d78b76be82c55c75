package repository

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUsers(t *testing.T, repo UserRepository, usernames ...string) []*models.User {
	t.Helper()

	ctx := context.Background()
	users := make([]*models.User, 0, len(usernames))
	for _, name := range usernames {
		u := &models.User{
			Username: name,
			Email:    name + "@example.com",
			Password: "hashed-password",
		}
		require.NoError(t, repo.Create(ctx, u))
		users = append(users, u)
	}
	return users
}

func TestFollowRepository_CreateAndExists(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := seedUsers(t, NewUserRepository(db), "alice", "bob")
	repo := NewFollowRepository(db)

	follow := &models.Follow{FollowerID: users[0].ID, FolloweeID: users[1].ID}
	require.NoError(t, repo.Create(ctx, follow))
	assert.NotZero(t, follow.ID)

	exists, err := repo.Exists(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)
	assert.True(t, exists)

	// Reverse direction is a distinct edge.
	exists, err = repo.Exists(ctx, users[1].ID, users[0].ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFollowRepository_DuplicateEdge(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := seedUsers(t, NewUserRepository(db), "alice", "bob")
	repo := NewFollowRepository(db)

	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: users[0].ID, FolloweeID: users[1].ID}))

	err := repo.Create(ctx, &models.Follow{FollowerID: users[0].ID, FolloweeID: users[1].ID})
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.ErrCodeDuplicate))
}

func TestFollowRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := seedUsers(t, NewUserRepository(db), "alice", "bob")
	repo := NewFollowRepository(db)

	follow := &models.Follow{FollowerID: users[0].ID, FolloweeID: users[1].ID}
	require.NoError(t, repo.Create(ctx, follow))
	require.NoError(t, repo.Delete(ctx, follow.ID))

	exists, err := repo.Exists(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Removing the edge frees the pair for a new follow.
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: users[0].ID, FolloweeID: users[1].ID}))
}

func TestFollowRepository_FolloweeIDs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := seedUsers(t, NewUserRepository(db), "alice", "bob", "carol")
	repo := NewFollowRepository(db)

	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: users[0].ID, FolloweeID: users[1].ID}))
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: users[0].ID, FolloweeID: users[2].ID}))

	ids, err := repo.FolloweeIDs(ctx, users[0].ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{users[1].ID, users[2].ID}, ids)

	ids, err = repo.FolloweeIDs(ctx, users[1].ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFollowRepository_ListByFollower(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := seedUsers(t, NewUserRepository(db), "alice", "bob", "carol")
	repo := NewFollowRepository(db)

	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: users[0].ID, FolloweeID: users[1].ID}))
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: users[0].ID, FolloweeID: users[2].ID}))

	follows, err := repo.ListByFollower(ctx, users[0].ID)
	require.NoError(t, err)
	require.Len(t, follows, 2)
	for _, f := range follows {
		assert.Equal(t, users[0].ID, f.FollowerID)
		assert.NotEmpty(t, f.Followee.Username)
	}
}
