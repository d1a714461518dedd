package reconcile

import (
	"context"

	"location-directory/core/knowledge"
)

// Simulated is a Store whose mutations never reach the live store.
// Reads are delegated to the wrapped store.
type Simulated struct {
	live Store
}

// NewSimulated wraps live for a dry run.
func NewSimulated(live Store) *Simulated {
	return &Simulated{live: live}
}

// Get reads from the live store.
func (s *Simulated) Get(ctx context.Context, id string) (*knowledge.Entity, error) {
	return s.live.Get(ctx, id)
}

// Create returns the requested body merged with the requested id.
func (s *Simulated) Create(_ context.Context, id, entityType string, body knowledge.Entity) (*knowledge.Entity, error) {
	body.Meta.ID = id
	body.Meta.EntityType = entityType
	return &body, nil
}

// Update returns the patch as if it had been applied to an empty entity.
func (s *Simulated) Update(_ context.Context, id string, patch knowledge.Patch) (*knowledge.Entity, error) {
	e := patch.Apply(knowledge.Entity{Meta: knowledge.Meta{ID: id}})
	return &e, nil
}

// Delete always reports success, even for a node a concurrent run removed.
func (s *Simulated) Delete(context.Context, string) (bool, error) {
	return true, nil
}
