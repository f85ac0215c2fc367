package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shkim05/stylist/internal/models"
	"github.com/shkim05/stylist/internal/store"
)

func testDetail(topID, bottomID string) models.OutfitDetail {
	return models.OutfitDetail{
		ID:               models.OutfitID{TopID: topID, BottomID: bottomID},
		Top:              testItem(topID, "top", "t-shirt", "black"),
		Bottom:           testItem(bottomID, "bottom", "jeans", "blue"),
		Score:            0.9,
		StyleDescription: "Casual everyday",
	}
}

func setupCalendar(t *testing.T) (*Calendar, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return NewCalendar(st, testLogger()), st
}

func TestCalendarSet_ThenGet(t *testing.T) {
	c, _ := setupCalendar(t)
	ctx := context.Background()

	savedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return savedAt }

	require.NoError(t, c.Set(ctx, "2025-03-10", testDetail("t1", "b1")))

	a, err := c.Get(ctx, "2025-03-10")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "t1-b1", a.OutfitID)
	assert.Equal(t, "Casual everyday", a.StyleDescription)
	assert.Equal(t, savedAt, a.SavedAt)
}

func TestCalendarSet_ReplacesPriorAssignment(t *testing.T) {
	c, _ := setupCalendar(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "2025-03-10", testDetail("t1", "b1")))
	require.NoError(t, c.Set(ctx, "2025-03-10", testDetail("t2", "b2")))

	a, err := c.Get(ctx, "2025-03-10")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "t2-b2", a.OutfitID)
}

func TestCalendarSet_InvalidDate(t *testing.T) {
	c, _ := setupCalendar(t)

	err := c.Set(context.Background(), "10.03.2025", testDetail("t1", "b1"))
	require.Error(t, err)
}

func TestCalendarGet_Absent_ReturnsNil(t *testing.T) {
	c, _ := setupCalendar(t)

	a, err := c.Get(context.Background(), "2025-03-10")
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestCalendarRemove_AbsentIsNoop(t *testing.T) {
	c, _ := setupCalendar(t)
	require.NoError(t, c.Remove(context.Background(), "2025-03-10"))
}

func TestCalendarRemove_DeletesOnlyThatDate(t *testing.T) {
	c, _ := setupCalendar(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "2025-03-10", testDetail("t1", "b1")))
	require.NoError(t, c.Set(ctx, "2025-03-11", testDetail("t2", "b2")))
	require.NoError(t, c.Remove(ctx, "2025-03-10"))

	a, err := c.Get(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Nil(t, a)

	b, err := c.Get(ctx, "2025-03-11")
	require.NoError(t, err)
	require.NotNil(t, b)
}

func TestCalendarListUpcoming_WindowAndOrder(t *testing.T) {
	c, _ := setupCalendar(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "2025-03-12", testDetail("t3", "b3")))
	require.NoError(t, c.Set(ctx, "2025-03-09", testDetail("t0", "b0"))) // before window
	require.NoError(t, c.Set(ctx, "2025-03-10", testDetail("t1", "b1")))
	require.NoError(t, c.Set(ctx, "2025-03-17", testDetail("t9", "b9"))) // past window end

	days, err := c.ListUpcoming(ctx, "2025-03-10", 7)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2025-03-10", days[0].Date)
	assert.Equal(t, "2025-03-12", days[1].Date)
}

func TestCalendarListAll(t *testing.T) {
	c, _ := setupCalendar(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "2025-03-10", testDetail("t1", "b1")))
	require.NoError(t, c.Set(ctx, "2025-04-01", testDetail("t2", "b2")))

	all, err := c.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Contains(t, all, "2025-03-10")
	assert.Contains(t, all, "2025-04-01")
}

func TestCalendar_CorruptedSlot_ReadsAsEmpty(t *testing.T) {
	c, st := setupCalendar(t)
	ctx := context.Background()

	require.NoError(t, st.Write(ctx, calendarSlotKey, []byte("%%%")))

	a, err := c.Get(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Nil(t, a)

	// The next successful write resets the slot.
	require.NoError(t, c.Set(ctx, "2025-03-10", testDetail("t1", "b1")))
	b, err := c.Get(ctx, "2025-03-10")
	require.NoError(t, err)
	require.NotNil(t, b)
}

func TestCalendarAndWorn_IndependentLifecycles(t *testing.T) {
	st := store.NewMemoryStore()
	calendar := NewCalendar(st, testLogger())
	worn := NewWornStatus(st, testLogger())
	ctx := context.Background()

	const date = "2025-03-10"
	require.NoError(t, calendar.Set(ctx, date, testDetail("t1", "b1")))
	require.NoError(t, worn.Toggle(ctx, date, "t1-b1"))

	// Toggling worn must not alter the assignment.
	a, err := calendar.Get(ctx, date)
	require.NoError(t, err)
	require.NotNil(t, a)

	// Removing the assignment must not clear the worn marker.
	require.NoError(t, calendar.Remove(ctx, date))
	isWorn, err := worn.IsWorn(ctx, date)
	require.NoError(t, err)
	assert.True(t, isWorn, "worn marker must survive assignment removal")
}
