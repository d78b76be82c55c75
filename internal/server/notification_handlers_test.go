package server

import (
	"fmt"
	"net/http"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (h *harness) listNotifications(t *testing.T, token string) []models.Notification {
	t.Helper()
	resp := h.request(t, http.MethodGet, "/api/notifications/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeBody[[]models.Notification](t, resp)
}

func TestNotifications_FromInteractions(t *testing.T) {
	h := newTestServer(t)
	alice := h.signup(t, "alice")
	bob := h.signup(t, "bob")

	h.follow(t, bob.Token, alice.User.ID)
	post := h.createPost(t, alice.Token, "popular post")
	h.request(t, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", post.ID), bob.Token, nil)
	h.request(t, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", post.ID),
		bob.Token, map[string]string{"content": "great"})

	notifs := h.listNotifications(t, alice.Token)
	require.Len(t, notifs, 3)

	// Newest first.
	assert.Equal(t, models.NotificationKindComment, notifs[0].Kind)
	assert.Equal(t, "bob commented on your post.", notifs[0].Message)
	assert.Equal(t, models.NotificationKindLike, notifs[1].Kind)
	assert.Equal(t, "bob liked your post.", notifs[1].Message)
	assert.Equal(t, models.NotificationKindFollow, notifs[2].Kind)
	assert.Equal(t, "bob started following you.", notifs[2].Message)

	for _, n := range notifs {
		assert.Equal(t, alice.User.ID, n.RecipientID)
		require.NotNil(t, n.SenderID)
		assert.Equal(t, bob.User.ID, *n.SenderID)
		assert.False(t, n.IsRead)
	}

	// Bob did all the acting, so he has nothing.
	assert.Empty(t, h.listNotifications(t, bob.Token))
}

func TestNotifications_NoSelfNotify(t *testing.T) {
	h := newTestServer(t)
	alice := h.signup(t, "alice")
	post := h.createPost(t, alice.Token, "my own post")

	resp := h.request(t, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", post.ID), alice.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	h.request(t, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", post.ID),
		alice.Token, map[string]string{"content": "replying to myself"})

	assert.Empty(t, h.listNotifications(t, alice.Token))
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	h := newTestServer(t)
	alice := h.signup(t, "alice")
	bob := h.signup(t, "bob")
	h.follow(t, bob.Token, alice.User.ID)

	resp := h.request(t, http.MethodGet, "/api/notifications/unread-count", alice.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	count := decodeBody[map[string]int64](t, resp)
	assert.EqualValues(t, 1, count["unread"])

	notifs := h.listNotifications(t, alice.Token)
	require.Len(t, notifs, 1)

	readPath := fmt.Sprintf("/api/notifications/%d/read", notifs[0].ID)
	resp = h.request(t, http.MethodPatch, readPath, alice.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	marked := decodeBody[models.Notification](t, resp)
	assert.True(t, marked.IsRead)

	// Marking twice is harmless.
	resp = h.request(t, http.MethodPatch, readPath, alice.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = h.request(t, http.MethodGet, "/api/notifications/unread-count", alice.Token, nil)
	count = decodeBody[map[string]int64](t, resp)
	assert.Zero(t, count["unread"])
}

func TestMarkRead_ForeignNotification(t *testing.T) {
	h := newTestServer(t)
	alice := h.signup(t, "alice")
	bob := h.signup(t, "bob")
	h.follow(t, bob.Token, alice.User.ID)

	notifs := h.listNotifications(t, alice.Token)
	require.Len(t, notifs, 1)

	// Only the recipient may acknowledge a notification.
	resp := h.request(t, http.MethodPatch,
		fmt.Sprintf("/api/notifications/%d/read", notifs[0].ID), bob.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Alice's copy is still unread.
	notifs = h.listNotifications(t, alice.Token)
	assert.False(t, notifs[0].IsRead)
}

func TestMarkNotificationRead_PatchBody(t *testing.T) {
	h := newTestServer(t)
	alice := h.signup(t, "alice")
	bob := h.signup(t, "bob")
	h.follow(t, bob.Token, alice.User.ID)

	notifs := h.listNotifications(t, alice.Token)
	require.Len(t, notifs, 1)
	path := fmt.Sprintf("/api/notifications/%d", notifs[0].ID)

	// Unreading is not a thing.
	resp := h.request(t, http.MethodPatch, path, alice.Token, map[string]bool{"read": false})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.request(t, http.MethodPatch, path, alice.Token, map[string]bool{"read": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	marked := decodeBody[models.Notification](t, resp)
	assert.True(t, marked.IsRead)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	h := newTestServer(t)
	alice := h.signup(t, "alice")
	bob := h.signup(t, "bob")
	carol := h.signup(t, "carol")
	h.follow(t, bob.Token, alice.User.ID)
	h.follow(t, carol.Token, alice.User.ID)

	resp := h.request(t, http.MethodPatch, "/api/notifications/mark_all_as_read", alice.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decodeBody[map[string]int64](t, resp)
	assert.EqualValues(t, 2, result["marked_read"])

	// Second sweep has nothing left to do.
	resp = h.request(t, http.MethodPatch, "/api/notifications/mark_all_as_read", alice.Token, nil)
	result = decodeBody[map[string]int64](t, resp)
	assert.Zero(t, result["marked_read"])

	for _, n := range h.listNotifications(t, alice.Token) {
		assert.True(t, n.IsRead)
	}
}
