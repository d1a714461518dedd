package reconcile

import (
	"context"
	"testing"

	"location-directory/core/knowledge"
	"location-directory/core/knowledge/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSimulated(t *testing.T) {
	live := new(mocks.Store)
	existing := &knowledge.Entity{Meta: knowledge.Meta{ID: "dir-root"}, ChildRefs: []string{"dir-ohio"}}
	live.On("Get", mock.Anything, "dir-root").Return(existing, nil)

	sim := NewSimulated(live)
	ctx := context.Background()

	t.Run("GetReadsLiveStore", func(t *testing.T) {
		got, err := sim.Get(ctx, "dir-root")
		require.NoError(t, err)
		assert.Same(t, existing, got)
	})

	t.Run("CreateEchoesBody", func(t *testing.T) {
		got, err := sim.Create(ctx, "dir-ohio", "ce_region", knowledge.Entity{Name: "Ohio", ParentRef: []string{"dir-root"}})
		require.NoError(t, err)
		assert.Equal(t, "dir-ohio", got.ID())
		assert.Equal(t, "ce_region", got.Meta.EntityType)
		assert.Equal(t, "Ohio", got.Name)
	})

	t.Run("UpdateEchoesPatch", func(t *testing.T) {
		got, err := sim.Update(ctx, "dir-root", knowledge.ChildRefsPatch([]string{"dir-ohio", "dir-utah"}, "ts"))
		require.NoError(t, err)
		assert.Equal(t, "dir-root", got.ID())
		assert.Equal(t, []string{"dir-ohio", "dir-utah"}, got.ChildRefs)
		assert.Equal(t, "ts", got.UpdatedAt)
	})

	t.Run("DeleteAlwaysSucceeds", func(t *testing.T) {
		removed, err := sim.Delete(ctx, "never-existed")
		require.NoError(t, err)
		assert.True(t, removed)
	})

	live.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	live.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	live.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
