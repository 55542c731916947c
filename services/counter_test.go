package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnreadCounter_StartsAtZero(t *testing.T) {
	counter := NewUnreadCounter(newMapKV())

	count, err := counter.Unread(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestUnreadCounter_BumpAndRead(t *testing.T) {
	counter := NewUnreadCounter(newMapKV())
	ctx := context.Background()

	n, err := counter.Bump(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = counter.Bump(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	count, err := counter.Unread(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestUnreadCounter_MarkReadResets(t *testing.T) {
	counter := NewUnreadCounter(newMapKV())
	ctx := context.Background()

	_, err := counter.Bump(ctx, "u1")
	require.NoError(t, err)

	require.NoError(t, counter.MarkRead(ctx, "u1"))

	count, err := counter.Unread(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
