package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetAbsent(t *testing.T) {
	s := NewMemory()

	doc, err := s.Get(context.Background(), Batches)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestMemoryStorePutReplaces(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, Rooms, []byte(`[{"id":"r1"}]`)))
	require.NoError(t, s.Put(ctx, Rooms, []byte(`[]`)))

	doc, err := s.Get(ctx, Rooms)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), doc)
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, Students, []byte(`[1]`)))
	doc, err := s.Get(ctx, Students)
	require.NoError(t, err)

	doc[0] = 'x'
	again, err := s.Get(ctx, Students)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1]`), again)
}
