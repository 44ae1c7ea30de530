package idgen

import "github.com/google/uuid"

// NewFunc generates a session identifier
var NewFunc = func() string { return uuid.NewString() }

// New returns a new session identifier
func New() string { return NewFunc() }

// Valid reports whether id has the shape of a generated identifier.
func Valid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
