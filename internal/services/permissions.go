package services

import "taskboard/backend/internal/models"

// Permission predicates are pure checks evaluated before every mutating
// operation. A failing guard short-circuits the operation with a
// PermissionError; it never panics or propagates a fault.

func IsAdmin(actor models.Actor) bool {
	return actor.IsAdmin()
}

func IsAuthenticated(actor models.Actor) bool {
	return actor.Authenticated
}

func IsCommentOwner(actor models.Actor, comment *models.Comment) bool {
	return actor.Authenticated && actor.ID == comment.FromUserID
}
