package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/shkim05/stylist/internal/logging"
	"github.com/shkim05/stylist/internal/models"
	"github.com/shkim05/stylist/internal/store"
)

// wornSlotKey is the store slot holding the date->outfit-id worn markers.
const wornSlotKey = "worn_markers"

// WornStatus tracks which outfit was worn on which date. Its lifecycle is
// independent of the calendar: a date may be marked worn without a
// scheduled assignment and vice versa.
type WornStatus struct {
	store store.Store
	log   logging.Logger

	mu sync.Mutex
}

func NewWornStatus(st store.Store, log logging.Logger) *WornStatus {
	return &WornStatus{store: st, log: log}
}

// IsWorn reports whether any outfit is marked worn on the date.
func (w *WornStatus) IsWorn(ctx context.Context, date string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, ok := w.load(ctx)[date]
	return ok, nil
}

// WornOutfit returns the outfit id marked worn on the date, or "" when the
// date has no marker.
func (w *WornStatus) WornOutfit(ctx context.Context, date string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return w.load(ctx)[date], nil
}

// Toggle flips the worn marker for a single date: marking with the same
// outfit id removes the marker, anything else sets it (overwriting a
// different prior marker). Other dates are never touched. Toggling twice
// with no intervening change restores the original state.
func (w *WornStatus) Toggle(ctx context.Context, date, outfitID string) error {
	if _, err := models.ParseDate(date); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	m := w.load(ctx)
	if m[date] == outfitID {
		delete(m, date)
	} else {
		m[date] = outfitID
	}
	return w.save(ctx, m)
}

func (w *WornStatus) load(ctx context.Context) map[string]string {
	m := make(map[string]string)

	data, err := w.store.Read(ctx, wornSlotKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			w.log.Warn(ctx, "failed to read worn markers", "error", err)
		}
		return m
	}
	if err := json.Unmarshal(data, &m); err != nil {
		w.log.Warn(ctx, "discarding corrupted worn markers", "error", err)
		return make(map[string]string)
	}
	return m
}

func (w *WornStatus) save(ctx context.Context, m map[string]string) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode worn markers: %w", err)
	}
	if err := w.store.Write(ctx, wornSlotKey, data); err != nil {
		return fmt.Errorf("persist worn markers: %w", err)
	}
	return nil
}
