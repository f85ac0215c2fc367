package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shkim05/stylist/internal/logging"
	"github.com/shkim05/stylist/internal/models"
)

// maxResponseBytes caps how much of a response body is read (wardrobe
// payloads carry full attribute bags plus image references).
const maxResponseBytes = 8 * 1024 * 1024

// HTTPClient implements Client against the styling service REST API.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the given base URL. Every request runs
// under the given timeout so a hung network interface cannot suspend the
// caller indefinitely.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

// getJSON performs a GET and decodes the JSON body into out.
func (c *HTTPClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Debug(ctx, "service returned error status",
			"path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: HTTP %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.getJSON(ctx, "/api/health", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return fmt.Errorf("%w: status %q", ErrMalformedResponse, resp.Status)
	}
	return nil
}

func (c *HTTPClient) WardrobeItems(ctx context.Context, category string) ([]models.WardrobeItem, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}

	var resp struct {
		Success bool                  `json:"success"`
		Items   []models.WardrobeItem `json:"items"`
	}
	if err := c.getJSON(ctx, "/api/wardrobe/items", query, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: wardrobe listing not successful", ErrMalformedResponse)
	}
	return resp.Items, nil
}

func (c *HTTPClient) RecommendOutfits(ctx context.Context, count int, useGemini bool) (*RecommendResult, error) {
	query := url.Values{}
	query.Set("count", strconv.Itoa(count))
	query.Set("use_gemini", strconv.FormatBool(useGemini))

	var resp struct {
		Success bool                          `json:"success"`
		Outfits []models.OutfitRecommendation `json:"outfits"`
		Message string                        `json:"message"`
	}
	if err := c.getJSON(ctx, "/api/recommend/outfit", query, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: recommendation not successful", ErrMalformedResponse)
	}
	return &RecommendResult{Outfits: resp.Outfits, Message: resp.Message}, nil
}

func (c *HTTPClient) OutfitScore(ctx context.Context, topID, bottomID string) (*models.OutfitScore, error) {
	query := url.Values{}
	query.Set("top_id", topID)
	query.Set("bottom_id", bottomID)

	var resp struct {
		Success      bool     `json:"success"`
		Score        float64  `json:"score"`
		ScorePercent int      `json:"score_percent"`
		Reasons      []string `json:"reasons"`
	}
	if err := c.getJSON(ctx, "/api/outfit/score", query, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: scoring not successful", ErrMalformedResponse)
	}
	return &models.OutfitScore{
		Score:        resp.Score,
		ScorePercent: resp.ScorePercent,
		Reasons:      resp.Reasons,
	}, nil
}
