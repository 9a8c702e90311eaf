// Package orders is the HTTP adapter for the external order system used when
// converting an approved quote.
package orders

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

	"github.com/google/uuid"

	"quoteflow/internal/usecase/interfaces"
)

var ErrMissingOrderServiceURL = errors.New("missing ORDER_SERVICE_URL")

const defaultTimeout = 15 * time.Second

type OrderClient struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IOrderService = (*OrderClient)(nil)

func NewOrderClient(baseURL string) (*OrderClient, error) {
	if isMockEnabled() {
		log.Printf("[orders][client] mock mode enabled")
		return &OrderClient{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[orders][client] missing ORDER_SERVICE_URL")
		return nil, ErrMissingOrderServiceURL
	}

	return &OrderClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}, nil
}

type createOrderRequest struct {
	QuoteID string `json:"quote_id"`
}

type createOrderResponse struct {
	OrderID string `json:"order_id"`
}

func (c *OrderClient) CreateFromQuote(ctx context.Context, quoteID string) (string, error) {
	if c.mockMode {
		orderID := uuid.NewString()
		log.Printf("[orders][client] mock order created quote_id=%s order_id=%s", quoteID, orderID)
		return orderID, nil
	}

	body, err := json.Marshal(createOrderRequest{QuoteID: quoteID})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		log.Printf("[orders][client] create order failed quote_id=%s err=%v", quoteID, err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("[orders][client] create order status=%d quote_id=%s body=%s", resp.StatusCode, quoteID, payload)
		return "", fmt.Errorf("order service returned status %d", resp.StatusCode)
	}

	var decoded createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if strings.TrimSpace(decoded.OrderID) == "" {
		return "", errors.New("order service returned empty order_id")
	}
	return decoded.OrderID, nil
}

func isMockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ORDER_SERVICE_MOCK"))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
