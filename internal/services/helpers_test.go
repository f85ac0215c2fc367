package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/shkim05/stylist/internal/api"
	"github.com/shkim05/stylist/internal/logging"
	"github.com/shkim05/stylist/internal/models"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClient is a programmable api.Client. Response fields are returned
// as-is; call counters allow asserting that no network call happened.
type fakeClient struct {
	pingErr error

	items    []models.WardrobeItem
	itemsErr error

	recommendResult *api.RecommendResult
	recommendErr    error
	recommendCalls  int

	score      *models.OutfitScore
	scoreErr   error
	scoreCalls int
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeClient) WardrobeItems(ctx context.Context, category string) ([]models.WardrobeItem, error) {
	return f.items, f.itemsErr
}

func (f *fakeClient) RecommendOutfits(ctx context.Context, count int, useGemini bool) (*api.RecommendResult, error) {
	f.recommendCalls++
	return f.recommendResult, f.recommendErr
}

func (f *fakeClient) OutfitScore(ctx context.Context, topID, bottomID string) (*models.OutfitScore, error) {
	f.scoreCalls++
	return f.score, f.scoreErr
}

func testItem(id, main, sub, color string) models.WardrobeItem {
	return models.WardrobeItem{
		ID: id,
		Attributes: models.ItemAttributes{
			Category: models.Category{Main: main, Sub: sub},
			Color:    models.Color{Primary: color},
		},
	}
}

func testRecommendation(topID, bottomID string, score float64) models.OutfitRecommendation {
	return models.OutfitRecommendation{
		Top:    testItem(topID, "top", "t-shirt", "black"),
		Bottom: testItem(bottomID, "bottom", "jeans", "blue"),
		Score:  score,
	}
}

func recommendations(topID, bottomID string, score float64) []models.OutfitRecommendation {
	return []models.OutfitRecommendation{testRecommendation(topID, bottomID, score)}
}
