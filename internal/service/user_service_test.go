package service

import (
	"context"
	"strings"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_UpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	user, err := env.users.UpdateProfile(ctx, UpdateProfileInput{
		ActorID: alice.ID,
		UserID:  alice.ID,
		Bio:     "gopher at large",
		Avatar:  "https://example.com/a.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "gopher at large", user.Bio)
	assert.Equal(t, "https://example.com/a.png", user.Avatar)

	// Empty fields leave the stored values alone.
	user, err = env.users.UpdateProfile(ctx, UpdateProfileInput{ActorID: alice.ID, UserID: alice.ID})
	require.NoError(t, err)
	assert.Equal(t, "gopher at large", user.Bio)
}

func TestUserService_UpdateProfile_BioTooLong(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	_, err := env.users.UpdateProfile(context.Background(), UpdateProfileInput{
		ActorID: alice.ID,
		UserID:  alice.ID,
		Bio:     strings.Repeat("x", 501),
	})
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.ErrCodeValidation))
}

func TestUserService_UpdateProfile_ForeignActor(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	_, err := env.users.UpdateProfile(context.Background(), UpdateProfileInput{
		ActorID: bob.ID,
		UserID:  alice.ID,
		Bio:     "hijacked",
	})
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.ErrCodeForbidden))
}

func TestUserService_GetProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	env.createPost(t, alice.ID, "first")
	env.createPost(t, alice.ID, "second")

	user, err := env.users.GetProfile(ctx, alice.ID, 10)
	require.NoError(t, err)
	assert.Len(t, user.Posts, 2)

	_, err = env.users.GetProfile(ctx, 9999, 10)
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.ErrCodeNotFound))
}
