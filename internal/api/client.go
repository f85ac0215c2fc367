// Package api talks to the remote styling service over HTTP/JSON. The
// service owns the wardrobe, the recommendation engine and the pair scorer;
// this package only transports and decodes its responses.
package api

import (
	"context"

	"github.com/shkim05/stylist/internal/models"
)

// RecommendResult is the payload of a recommendation fetch. A successful
// call may legitimately carry zero outfits (wardrobe too small to pair);
// Message then explains why.
type RecommendResult struct {
	Outfits []models.OutfitRecommendation
	Message string
}

// Client is the remote service surface the stylist core consumes.
// All methods honor context cancellation and run under a bounded timeout.
type Client interface {
	// Ping checks service liveness.
	Ping(ctx context.Context) error

	// WardrobeItems lists all wardrobe items, optionally filtered by main
	// category ("top"/"bottom"). Empty category means no filter.
	WardrobeItems(ctx context.Context, category string) ([]models.WardrobeItem, error)

	// RecommendOutfits asks for count recommended pairings. useGemini
	// selects the service's LLM path over its rule-based fallback.
	RecommendOutfits(ctx context.Context, count int, useGemini bool) (*RecommendResult, error)

	// OutfitScore computes the compatibility score for one specific pairing.
	OutfitScore(ctx context.Context, topID, bottomID string) (*models.OutfitScore, error)
}
