package authz

import (
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize_OwnerAllowed(t *testing.T) {
	t.Parallel()
	post := &models.Post{UserID: 7}
	assert.NoError(t, Authorize(ActionUpdatePost, 7, post))
	assert.NoError(t, Authorize(ActionDeletePost, 7, post))
}

func TestAuthorize_NonOwnerForbidden(t *testing.T) {
	t.Parallel()
	n := &models.Notification{RecipientID: 3}
	err := Authorize(ActionReadNotification, 4, n)
	assert.Error(t, err)
	assert.True(t, models.IsCode(err, models.ErrCodeForbidden))
}

func TestAuthorize_UnknownActionDenies(t *testing.T) {
	t.Parallel()
	err := Authorize(Action("bogus"), 1, &models.Post{UserID: 1})
	assert.Error(t, err)
	assert.True(t, models.IsCode(err, models.ErrCodeForbidden))
}
