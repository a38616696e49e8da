package utils

import "github.com/google/uuid"

// NewThreadID generates an opaque thread identity. Threads are keyed by a
// random identifier rather than a sequence so ids cannot be enumerated.
func NewThreadID() string {
	return uuid.NewString()
}
