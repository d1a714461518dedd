package mocks

import (
	"context"

	"location-directory/core/knowledge"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of the entity store used by the reconcile engine.
type Store struct {
	mock.Mock
}

func (m *Store) Get(ctx context.Context, id string) (*knowledge.Entity, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*knowledge.Entity); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Create(ctx context.Context, id, entityType string, body knowledge.Entity) (*knowledge.Entity, error) {
	args := m.Called(ctx, id, entityType, body)
	if e, ok := args.Get(0).(*knowledge.Entity); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Update(ctx context.Context, id string, patch knowledge.Patch) (*knowledge.Entity, error) {
	args := m.Called(ctx, id, patch)
	if e, ok := args.Get(0).(*knowledge.Entity); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
