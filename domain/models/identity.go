package models

import "github.com/google/uuid"

// Identity is the authenticated caller resolved from a session token.
// Every task and profile operation receives one explicitly.
type Identity struct {
	ID      uuid.UUID
	IsAdmin bool
}

// Valid reports whether the identity refers to a user.
func (i *Identity) Valid() bool {
	return i != nil && i.ID != uuid.Nil
}
