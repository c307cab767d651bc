package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client issues payout transfers against the payment gateway's transfer
// API. This core only ever creates transfers and records the resulting
// ids; everything else about the gateway is someone else's problem.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type transferRequest struct {
	Destination     string `json:"destination"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	SourceReference string `json:"source_reference"`
}

type transferResponse struct {
	ID string `json:"id"`
}

// CreateTransfer moves amount minor units to destination and returns the
// gateway's transfer id. Amounts and destinations are decided upstream by
// the settlement calculator; this client does no money math.
func (c *Client) CreateTransfer(ctx context.Context, destination string, amount int64, currency string, sourceRef string) (string, error) {
	body, err := json.Marshal(transferRequest{
		Destination:     destination,
		Amount:          amount,
		Currency:        currency,
		SourceReference: sourceRef,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling transfer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/transfers", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("creating transfer to %s: %w", destination, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gateway rejected transfer to %s: status %d", destination, resp.StatusCode)
	}

	var parsed transferResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding transfer response: %w", err)
	}
	if parsed.ID == "" {
		return "", fmt.Errorf("gateway returned no transfer id for %s", destination)
	}

	return parsed.ID, nil
}
