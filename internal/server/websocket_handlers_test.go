package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ticketResponse struct {
	Ticket    string `json:"ticket"`
	ExpiresIn int    `json:"expires_in"`
}

func TestIssueWSTicket(t *testing.T) {
	h := newTestServer(t)
	alice := h.signup(t, "alice")

	resp := h.request(t, http.MethodPost, "/api/ws/ticket", alice.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ticket := decodeBody[ticketResponse](t, resp)
	assert.NotEmpty(t, ticket.Ticket)
	assert.Equal(t, 30, ticket.ExpiresIn)

	// The ticket is stored against the issuing user.
	val, err := h.redis.Get(context.Background(), "ws_ticket:"+ticket.Ticket).Result()
	require.NoError(t, err)
	assert.NotEmpty(t, val)
}

func TestIssueWSTicket_RequiresAuth(t *testing.T) {
	h := newTestServer(t)

	resp := h.request(t, http.MethodPost, "/api/ws/ticket", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWSTicket_SingleUse(t *testing.T) {
	h := newTestServer(t)
	alice := h.signup(t, "alice")

	resp := h.request(t, http.MethodPost, "/api/ws/ticket", alice.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ticket := decodeBody[ticketResponse](t, resp)

	// A ticket authenticates in place of a bearer token.
	resp = h.request(t, http.MethodGet, "/api/users/me?ticket="+ticket.Ticket, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Redemption consumes it.
	resp = h.request(t, http.MethodGet, "/api/users/me?ticket="+ticket.Ticket, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWSTicket_Invalid(t *testing.T) {
	h := newTestServer(t)

	resp := h.request(t, http.MethodGet, "/api/users/me?ticket=bogus", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
