// Package services contains the application services of the stylist client:
// the pick-of-the-day recommendation cache, the outfit composer, and the two
// date-indexed calendar stores.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shkim05/stylist/internal/api"
	"github.com/shkim05/stylist/internal/logging"
	"github.com/shkim05/stylist/internal/models"
	"github.com/shkim05/stylist/internal/store"
)

// pickSlotKey is the store slot holding the cached pick of the day.
const pickSlotKey = "pick_of_the_day"

// DefaultCacheTTL is how long a cached pick stays fresh.
const DefaultCacheTTL = 24 * time.Hour

// cachedPick is the persisted slot value: the recommendation plus its
// capture timestamp.
type cachedPick struct {
	Outfit     models.OutfitRecommendation `json:"outfit"`
	CapturedAt time.Time                   `json:"captured_at"`
}

// RecommendationCache serves the "pick of the day": the last recommendation
// fetched from the service, reused without a network call while fresh.
type RecommendationCache struct {
	api   api.Client
	store store.Store
	log   logging.Logger

	now func() time.Time
	ttl time.Duration
}

// NewRecommendationCache builds a cache with the given freshness window.
// A non-positive ttl falls back to DefaultCacheTTL.
func NewRecommendationCache(apiClient api.Client, st store.Store, log logging.Logger, ttl time.Duration) *RecommendationCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RecommendationCache{
		api:   apiClient,
		store: st,
		log:   log,
		now:   time.Now,
		ttl:   ttl,
	}
}

// GetOrFetch returns today's pick. With forceRefresh false a fresh cached
// pick is returned without touching the network. Otherwise one outfit is
// fetched remotely: success overwrites the slot; failure is returned and
// leaves any previous slot value untouched (a stale "last known" beats
// nothing). A successful fetch with zero outfits clears the slot and
// returns (nil, nil) — a legitimate terminal state, not an error.
func (c *RecommendationCache) GetOrFetch(ctx context.Context, forceRefresh bool) (*models.OutfitRecommendation, error) {
	if !forceRefresh {
		if pick, ok := c.cached(ctx); ok {
			c.log.Debug(ctx, "serving cached pick", "outfit_id", pick.ID().String())
			return pick, nil
		}
	}

	res, err := c.api.RecommendOutfits(ctx, 1, true)
	if err != nil {
		return nil, fmt.Errorf("fetch recommendation: %w", err)
	}

	if len(res.Outfits) == 0 {
		c.log.Info(ctx, "no outfit to recommend", "message", res.Message)
		if err := c.store.Delete(ctx, pickSlotKey); err != nil {
			c.log.Warn(ctx, "failed to clear pick cache", "error", err)
		}
		return nil, nil
	}

	outfit := res.Outfits[0]
	entry := cachedPick{Outfit: outfit, CapturedAt: c.now().UTC()}
	data, err := json.Marshal(entry)
	if err == nil {
		err = c.store.Write(ctx, pickSlotKey, data)
	}
	if err != nil {
		// Cache write failures degrade to memory-only behaviour for this
		// session; the fetched pick is still returned.
		c.log.Warn(ctx, "failed to cache pick", "error", err)
	}

	return &outfit, nil
}

// cached reads the slot and returns its pick when present and fresh.
// A corrupted slot reads as absent; it is overwritten on the next fetch.
func (c *RecommendationCache) cached(ctx context.Context) (*models.OutfitRecommendation, bool) {
	data, err := c.store.Read(ctx, pickSlotKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			c.log.Warn(ctx, "failed to read pick cache", "error", err)
		}
		return nil, false
	}

	var entry cachedPick
	if err := json.Unmarshal(data, &entry); err != nil {
		c.log.Warn(ctx, "discarding corrupted pick cache", "error", err)
		return nil, false
	}

	if entry.CapturedAt.IsZero() || c.now().Sub(entry.CapturedAt) >= c.ttl {
		return nil, false
	}
	return &entry.Outfit, true
}
