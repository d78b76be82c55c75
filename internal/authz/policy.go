// Package authz holds the authorization policy table for mutating operations.
// Each action maps to a predicate over the acting user and the resource's
// owner, evaluated before the operation executes.
package authz

import (
	"fmt"

	"ripple/internal/models"
)

// Action identifies a protected operation.
type Action string

const (
	ActionUpdatePost       Action = "post.update"
	ActionDeletePost       Action = "post.delete"
	ActionUpdateComment    Action = "comment.update"
	ActionDeleteComment    Action = "comment.delete"
	ActionDeleteFollow     Action = "follow.delete"
	ActionReadNotification Action = "notification.mark_read"
	ActionUpdateProfile    Action = "profile.update"
)

// Owned is implemented by resources with a single owning user.
type Owned interface {
	OwnerID() uint
}

// Rule decides whether the actor may perform an action on the resource.
type Rule func(actorID uint, resource Owned) bool

func ownerOnly(actorID uint, resource Owned) bool {
	return resource.OwnerID() == actorID
}

// policies is the authoritative action -> rule table. Every mutating
// operation on an owned resource must appear here; absent actions deny.
var policies = map[Action]Rule{
	ActionUpdatePost:       ownerOnly,
	ActionDeletePost:       ownerOnly,
	ActionUpdateComment:    ownerOnly,
	ActionDeleteComment:    ownerOnly,
	ActionDeleteFollow:     ownerOnly,
	ActionReadNotification: ownerOnly,
	ActionUpdateProfile:    ownerOnly,
}

// Authorize evaluates the policy table for action. It returns a
// ForbiddenError when the rule rejects the actor or the action is unknown.
func Authorize(action Action, actorID uint, resource Owned) error {
	rule, ok := policies[action]
	if !ok {
		return models.NewForbiddenError(fmt.Sprintf("No policy defined for %s", action))
	}
	if !rule(actorID, resource) {
		return models.NewForbiddenError("You do not own this resource")
	}
	return nil
}
