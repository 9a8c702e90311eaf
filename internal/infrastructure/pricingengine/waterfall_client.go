// Package pricingengine is the HTTP adapter for the external pricing rule
// engine. The engine owns rule evaluation (catalog base, contract override,
// volume tier, margin floor); this client only carries batched requests and
// decodes the per-product results.
package pricingengine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"quoteflow/internal/domain/entities"
	"quoteflow/internal/usecase/interfaces"
)

var ErrMissingPricingEngineURL = errors.New("missing PRICING_ENGINE_URL")

const defaultTimeout = 10 * time.Second

type WaterfallClient struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IPricingService = (*WaterfallClient)(nil)

// NewWaterfallClient builds the client from PRICING_ENGINE_URL. With
// PRICING_ENGINE_MOCK enabled the client answers locally with catalog-base
// results, which keeps local stacks working without the rules engine.
func NewWaterfallClient(baseURL string) (*WaterfallClient, error) {
	if isMockEnabled() {
		log.Printf("[pricing][engine] mock mode enabled")
		return &WaterfallClient{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[pricing][engine] missing PRICING_ENGINE_URL")
		return nil, ErrMissingPricingEngineURL
	}

	return &WaterfallClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}, nil
}

type batchRequest struct {
	Entries []entities.PriceRequest `json:"entries"`
}

type batchResponse struct {
	Results []entities.PricingResult `json:"results"`
}

func (c *WaterfallClient) BatchPriceQuote(ctx context.Context, reqs []entities.PriceRequest) ([]entities.PricingResult, error) {
	if c.mockMode {
		return c.mockResults(reqs), nil
	}

	body, err := json.Marshal(batchRequest{Entries: reqs})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/prices/batch", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		log.Printf("[pricing][engine] batch call failed entries=%d err=%v", len(reqs), err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("[pricing][engine] batch call status=%d body=%s", resp.StatusCode, payload)
		return nil, fmt.Errorf("pricing engine returned status %d", resp.StatusCode)
	}

	var decoded batchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}
	return decoded.Results, nil
}

// mockResults answers every entry with a flat catalog-base price so the rest
// of the workflow is exercisable locally.
func (c *WaterfallClient) mockResults(reqs []entities.PriceRequest) []entities.PricingResult {
	const mockUnitPrice = 100.0
	results := make([]entities.PricingResult, 0, len(reqs))
	for _, req := range reqs {
		results = append(results, entities.PricingResult{
			ProductID:  req.ProductID,
			BasePrice:  mockUnitPrice,
			FinalPrice: mockUnitPrice,
			AppliedRules: []entities.AppliedRule{{
				Name:        "catalog base",
				Kind:        entities.RuleKindCatalogBase,
				PriceBefore: mockUnitPrice,
				PriceAfter:  mockUnitPrice,
			}},
		})
	}
	return results
}

func isMockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("PRICING_ENGINE_MOCK"))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
