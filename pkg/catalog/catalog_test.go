package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/scholarship/pkg/scholarship"
)

func TestLoadSourceList(t *testing.T) {
	items, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, items)

	seen := map[uuid.UUID]bool{}
	for _, it := range items {
		assert.NotEmpty(t, it.Name)
		assert.NotEmpty(t, it.Source)
		assert.NotEqual(t, uuid.Nil, it.ID)
		assert.False(t, seen[it.ID], "duplicate id for %s", it.Name)
		seen[it.ID] = true
		if it.Deadline != scholarship.DeadlineVaries {
			_, ok := scholarship.ParseDeadline(it.Deadline, nil)
			assert.True(t, ok, "bad deadline %q", it.Deadline)
		}
	}
	assert.Equal(t, "Niche $15,000 No Essay Scholarship", items[0].Name)
	assert.Empty(t, items[1].Link)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("name: [unterminated"))
	assert.Error(t, err)
}

func TestStaticReplaceAllIsIsolated(t *testing.T) {
	ctx := context.Background()
	src := []scholarship.Scholarship{{Name: "one"}, {Name: "two"}}
	s := NewStatic(src)
	src[0].Name = "mutated"

	got, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "one", got[0].Name)

	got[1].Name = "changed by caller"
	again, _ := s.ListAll(ctx)
	assert.Equal(t, "two", again[1].Name)

	require.NoError(t, s.ReplaceAll(ctx, []scholarship.Scholarship{{Name: "three"}}))
	again, _ = s.ListAll(ctx)
	require.Len(t, again, 1)
	assert.Equal(t, "three", again[0].Name)
}
