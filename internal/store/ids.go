package store

import "github.com/google/uuid"

// newID returns an identity unique for the lifetime of the store.
func newID() string {
	return uuid.NewString()
}
