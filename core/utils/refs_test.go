package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertRef(t *testing.T) {
	tests := []struct {
		name string
		refs []string
		id   string
		want []string
	}{
		{"Empty", nil, "b", []string{"b"}},
		{"Middle", []string{"a", "c"}, "b", []string{"a", "b", "c"}},
		{"Duplicate", []string{"a", "b"}, "b", []string{"a", "b"}},
		{"Unsorted input", []string{"c", "a"}, "b", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InsertRef(tt.refs, tt.id))
		})
	}
}

func TestInsertRef_DoesNotMutateInput(t *testing.T) {
	refs := []string{"c", "a"}
	_ = InsertRef(refs, "b")
	assert.Equal(t, []string{"c", "a"}, refs)
}

func TestRemoveRef(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, RemoveRef([]string{"c", "b", "a"}, "b"))
	assert.Equal(t, []string{"a"}, RemoveRef([]string{"a"}, "missing"))

	// Emptied lists must still serialize as [] rather than null.
	empty := RemoveRef([]string{"a"}, "a")
	assert.NotNil(t, empty)
	raw, err := json.Marshal(empty)
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestNormalizeRefs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, NormalizeRefs([]string{"b", "", "a", "b"}))
	assert.True(t, ContainsRef([]string{"a", "b"}, "b"))
	assert.False(t, ContainsRef(nil, "b"))
}
