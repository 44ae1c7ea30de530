package dao

import (
	"context"
)

// Service persists entities of type T keyed by K
type Service[K comparable, T any] interface {
	// Save stores or replaces an entity
	Save(ctx context.Context, t *T) error

	// Load returns the entity or ErrNotFound
	Load(ctx context.Context, id K) (*T, error)

	Delete(ctx context.Context, id K) error

	// List returns entities matching all parameters, in insertion order
	List(ctx context.Context, parameters ...*Parameter) ([]*T, error)
}
