// Package session issues the opaque correlation tokens threaded through
// every request/response pair. Tokens are advisory: the gateway never
// stores or validates them server-side.
package session

import "github.com/google/uuid"

// New returns a fresh 128-bit session token.
func New() uuid.UUID {
	return uuid.New()
}

// Derive returns the client-supplied token when one was sent, and a fresh
// token otherwise.
func Derive(supplied *uuid.UUID) uuid.UUID {
	if supplied != nil {
		return *supplied
	}
	return New()
}
