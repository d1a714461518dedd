package reconcile

import (
	"context"

	"location-directory/core/knowledge"
)

// Store defines the entity operations the engine needs from the knowledge store.
type Store interface {
	// Get returns the entity with the given id, or nil if it does not exist.
	Get(ctx context.Context, id string) (*knowledge.Entity, error)

	// Create creates an entity of the given type under id.
	Create(ctx context.Context, id, entityType string, body knowledge.Entity) (*knowledge.Entity, error)

	// Update applies a field-level upsert of patch; fields absent from the patch are untouched.
	Update(ctx context.Context, id string, patch knowledge.Patch) (*knowledge.Entity, error)

	// Delete removes the entity and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}
