package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shkim05/stylist/internal/logging"
	"github.com/shkim05/stylist/internal/models"
	"github.com/shkim05/stylist/internal/store"
)

// calendarSlotKey is the store slot holding the whole date->assignment map.
const calendarSlotKey = "calendar_assignments"

// ScheduledDay pairs a calendar date with its assignment, for ordered
// "upcoming plans" listings.
type ScheduledDay struct {
	Date       string
	Assignment models.CalendarAssignment
}

// Calendar persists the outfit scheduled for each calendar date. Dates are
// ISO "YYYY-MM-DD" keys; values are snapshots taken at save time. The
// calendar and the worn-status store are fully independent: neither ever
// touches the other's slot.
type Calendar struct {
	store store.Store
	log   logging.Logger
	now   func() time.Time

	// mu keeps the read-modify-write of the slot atomic within the process.
	// Across processes, last writer wins.
	mu sync.Mutex
}

func NewCalendar(st store.Store, log logging.Logger) *Calendar {
	return &Calendar{store: st, log: log, now: time.Now}
}

// Set schedules an outfit for a date, replacing any prior assignment.
func (c *Calendar) Set(ctx context.Context, date string, detail models.OutfitDetail) error {
	if _, err := models.ParseDate(date); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.load(ctx)
	m[date] = models.Snapshot(detail, c.now().UTC())
	return c.save(ctx, m)
}

// Get returns the assignment for a date, or nil when there is none.
func (c *Calendar) Get(ctx context.Context, date string) (*models.CalendarAssignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m := c.load(ctx)
	a, ok := m[date]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// Remove deletes the assignment for a date. Removing an unscheduled date is
// a no-op.
func (c *Calendar) Remove(ctx context.Context, date string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.load(ctx)
	if _, ok := m[date]; !ok {
		return nil
	}
	delete(m, date)
	return c.save(ctx, m)
}

// ListUpcoming returns the scheduled days within [from, from+windowDays),
// ascending by date.
func (c *Calendar) ListUpcoming(ctx context.Context, from string, windowDays int) ([]ScheduledDay, error) {
	start, err := models.ParseDate(from)
	if err != nil {
		return nil, err
	}
	end := start.AddDate(0, 0, windowDays)

	m := c.load(ctx)

	var days []ScheduledDay
	for date, a := range m {
		day, err := models.ParseDate(date)
		if err != nil {
			continue
		}
		if day.Before(start) || !day.Before(end) {
			continue
		}
		days = append(days, ScheduledDay{Date: date, Assignment: a})
	}

	// ISO dates order lexicographically.
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

// ListAll returns every assignment keyed by date, for month-grid rendering.
func (c *Calendar) ListAll(ctx context.Context) (map[string]models.CalendarAssignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.load(ctx), nil
}

// load reads the slot. Absence and corruption both yield an empty map; a
// corrupted slot is effectively reset by the next successful save.
func (c *Calendar) load(ctx context.Context) map[string]models.CalendarAssignment {
	m := make(map[string]models.CalendarAssignment)

	data, err := c.store.Read(ctx, calendarSlotKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			c.log.Warn(ctx, "failed to read calendar slot", "error", err)
		}
		return m
	}
	if err := json.Unmarshal(data, &m); err != nil {
		c.log.Warn(ctx, "discarding corrupted calendar slot", "error", err)
		return make(map[string]models.CalendarAssignment)
	}
	return m
}

func (c *Calendar) save(ctx context.Context, m map[string]models.CalendarAssignment) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	if err := c.store.Write(ctx, calendarSlotKey, data); err != nil {
		return fmt.Errorf("persist calendar: %w", err)
	}
	return nil
}
