package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shkim05/stylist/internal/api"
	"github.com/shkim05/stylist/internal/logging"
	"github.com/shkim05/stylist/internal/models"
)

// DefaultScore is used when the scoring endpoint is unavailable.
const DefaultScore = 0.85

// styleBatchSize is how many fresh recommendations are fetched when looking
// for a style description matching the requested pairing.
const styleBatchSize = 3

// Composer resolves a composite outfit id into a full OutfitDetail.
// The wardrobe lookup is the only fatal path; the score and style
// enrichments run concurrently and degrade to defaults on failure.
type Composer struct {
	api api.Client
	log logging.Logger
}

func NewComposer(apiClient api.Client, log logging.Logger) *Composer {
	return &Composer{api: apiClient, log: log}
}

// Compose builds the detail view for the outfit identified by rawID.
// Returns ErrInvalidOutfitID when the id cannot be decoded and
// ErrItemsNotFound when either referenced item is missing from the
// wardrobe. Enrichment failures never propagate.
func (c *Composer) Compose(ctx context.Context, rawID string) (*models.OutfitDetail, error) {
	id, err := models.DecodeOutfitID(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutfitID, err)
	}

	items, err := c.api.WardrobeItems(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("fetch wardrobe: %w", err)
	}

	var top, bottom *models.WardrobeItem
	for i := range items {
		switch items[i].ID {
		case id.TopID:
			top = &items[i]
		case id.BottomID:
			bottom = &items[i]
		}
	}
	if top == nil || bottom == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemsNotFound, rawID)
	}

	detail := &models.OutfitDetail{
		ID:     id,
		Top:    *top,
		Bottom: *bottom,
		Score:  DefaultScore,
	}

	// The two enrichments are independent: each settles on its own, and one
	// failing or lagging must not discard the other's result.
	var (
		wg       sync.WaitGroup
		score    *models.OutfitScore
		scoreErr error
		style    string
		styleErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		score, scoreErr = c.api.OutfitScore(ctx, id.TopID, id.BottomID)
	}()
	go func() {
		defer wg.Done()
		style, styleErr = c.styleDescription(ctx, id)
	}()
	wg.Wait()

	if scoreErr != nil {
		c.log.Warn(ctx, "score unavailable, using default",
			"outfit_id", rawID, "error", scoreErr)
	} else {
		detail.Score = score.Score
		detail.Reasons = score.Reasons
		detail.Reasoning = strings.Join(score.Reasons, ", ")
	}

	if styleErr != nil {
		c.log.Warn(ctx, "style description unavailable",
			"outfit_id", rawID, "error", styleErr)
	} else {
		detail.StyleDescription = style
	}

	return detail, nil
}

// styleDescription fetches a small batch of fresh recommendations and
// returns the style description of the one matching the pairing, if any.
func (c *Composer) styleDescription(ctx context.Context, id models.OutfitID) (string, error) {
	res, err := c.api.RecommendOutfits(ctx, styleBatchSize, false)
	if err != nil {
		return "", err
	}
	for _, o := range res.Outfits {
		if o.Top.ID == id.TopID && o.Bottom.ID == id.BottomID {
			return o.StyleDescription, nil
		}
	}
	return "", nil
}
