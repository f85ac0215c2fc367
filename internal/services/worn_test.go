package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shkim05/stylist/internal/store"
)

func setupWorn(t *testing.T) *WornStatus {
	t.Helper()
	return NewWornStatus(store.NewMemoryStore(), testLogger())
}

func TestWornToggle_MarksAndUnmarks(t *testing.T) {
	w := setupWorn(t)
	ctx := context.Background()

	const date = "2025-03-10"

	isWorn, err := w.IsWorn(ctx, date)
	require.NoError(t, err)
	require.False(t, isWorn)

	require.NoError(t, w.Toggle(ctx, date, "t1-b1"))
	isWorn, err = w.IsWorn(ctx, date)
	require.NoError(t, err)
	assert.True(t, isWorn)

	// Same id toggles the marker off again.
	require.NoError(t, w.Toggle(ctx, date, "t1-b1"))
	isWorn, err = w.IsWorn(ctx, date)
	require.NoError(t, err)
	assert.False(t, isWorn, "double toggle must restore the original state")
}

func TestWornToggle_DifferentIDOverwrites(t *testing.T) {
	w := setupWorn(t)
	ctx := context.Background()

	const date = "2025-03-10"
	require.NoError(t, w.Toggle(ctx, date, "t1-b1"))
	require.NoError(t, w.Toggle(ctx, date, "t2-b2"))

	id, err := w.WornOutfit(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, "t2-b2", id)

	isWorn, err := w.IsWorn(ctx, date)
	require.NoError(t, err)
	assert.True(t, isWorn)
}

func TestWornToggle_DoesNotTouchOtherDates(t *testing.T) {
	w := setupWorn(t)
	ctx := context.Background()

	require.NoError(t, w.Toggle(ctx, "2025-03-10", "t1-b1"))
	require.NoError(t, w.Toggle(ctx, "2025-03-11", "t2-b2"))
	require.NoError(t, w.Toggle(ctx, "2025-03-10", "t1-b1")) // unmark the 10th

	isWorn, err := w.IsWorn(ctx, "2025-03-11")
	require.NoError(t, err)
	assert.True(t, isWorn)
}

func TestWornToggle_InvalidDate(t *testing.T) {
	w := setupWorn(t)
	require.Error(t, w.Toggle(context.Background(), "March 10th", "t1-b1"))
}
