package models

import "github.com/gofrs/uuid"

// Actor is the resolved identity performing an operation. It is passed
// explicitly to every service call; services never read identity from
// shared state. An unauthenticated caller is represented by Anonymous.
type Actor struct {
	ID            uuid.UUID `json:"id"`
	Role          string    `json:"role"`
	Authenticated bool      `json:"authenticated"`
}

// Anonymous is the actor used for requests without a valid token.
var Anonymous = Actor{}

func (a Actor) IsAdmin() bool {
	return a.Authenticated && a.Role == RoleAdmin
}
