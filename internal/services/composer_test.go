package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shkim05/stylist/internal/api"
	"github.com/shkim05/stylist/internal/models"
)

func composerFixture() *fakeClient {
	rec := testRecommendation("itemA", "itemB", 0.92)
	rec.StyleDescription = "Monochrome evening look"
	return &fakeClient{
		items: []models.WardrobeItem{
			testItem("itemA", "top", "t-shirt", "black"),
			testItem("itemB", "bottom", "jeans", "blue"),
			testItem("itemC", "top", "shirt", "white"),
		},
		recommendResult: &api.RecommendResult{Outfits: []models.OutfitRecommendation{rec}},
		score:           &models.OutfitScore{Score: 0.92, ScorePercent: 92, Reasons: []string{"color harmony"}},
	}
}

func TestCompose_FullEnrichment(t *testing.T) {
	client := composerFixture()
	c := NewComposer(client, testLogger())

	detail, err := c.Compose(context.Background(), "itemA-itemB")
	require.NoError(t, err)

	assert.Equal(t, "itemA", detail.Top.ID)
	assert.Equal(t, "itemB", detail.Bottom.ID)
	assert.Equal(t, 0.92, detail.Score)
	assert.Equal(t, "color harmony", detail.Reasoning)
	assert.Equal(t, "Monochrome evening look", detail.StyleDescription)
	assert.Equal(t, 1, client.scoreCalls)
}

func TestCompose_InvalidIdentifier(t *testing.T) {
	c := NewComposer(composerFixture(), testLogger())

	_, err := c.Compose(context.Background(), "noseparator")
	require.ErrorIs(t, err, ErrInvalidOutfitID)
}

func TestCompose_MissingItem_Fatal(t *testing.T) {
	client := composerFixture()
	c := NewComposer(client, testLogger())

	// itemA exists, itemX does not.
	_, err := c.Compose(context.Background(), "itemA-itemX")
	require.ErrorIs(t, err, ErrItemsNotFound)
}

func TestCompose_WardrobeFetchFailure_Fatal(t *testing.T) {
	client := composerFixture()
	client.itemsErr = api.ErrUnavailable
	c := NewComposer(client, testLogger())

	_, err := c.Compose(context.Background(), "itemA-itemB")
	require.ErrorIs(t, err, api.ErrUnavailable)
}

func TestCompose_BothEnrichmentsFail_StillSucceedsWithDefaults(t *testing.T) {
	client := composerFixture()
	client.scoreErr = errors.New("score service down")
	client.recommendErr = errors.New("recommend service down")
	client.recommendResult = nil
	c := NewComposer(client, testLogger())

	detail, err := c.Compose(context.Background(), "itemA-itemB")
	require.NoError(t, err, "enrichment failures must not fail composition")

	assert.Equal(t, DefaultScore, detail.Score)
	assert.Empty(t, detail.Reasoning)
	assert.Empty(t, detail.StyleDescription)
	assert.Equal(t, "t-shirt & jeans", detail.StyleLabel())
}

func TestCompose_ScoreFailsStyleSucceeds(t *testing.T) {
	client := composerFixture()
	client.scoreErr = errors.New("score service down")
	c := NewComposer(client, testLogger())

	detail, err := c.Compose(context.Background(), "itemA-itemB")
	require.NoError(t, err)

	assert.Equal(t, DefaultScore, detail.Score)
	assert.Equal(t, "Monochrome evening look", detail.StyleDescription,
		"one enrichment failing must not discard the other's result")
}

func TestCompose_StyleBatchHasNoMatch_DescriptionAbsent(t *testing.T) {
	client := composerFixture()
	client.recommendResult = &api.RecommendResult{
		Outfits: recommendations("itemC", "itemB", 0.7),
	}
	c := NewComposer(client, testLogger())

	detail, err := c.Compose(context.Background(), "itemA-itemB")
	require.NoError(t, err)

	assert.Empty(t, detail.StyleDescription)
	assert.Equal(t, 0.92, detail.Score)
}
