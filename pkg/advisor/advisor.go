// Package advisor is the boundary to the external text-generation service
// that reviews a roster and suggests who should take an open seat. The
// service's reply is free-form text; nothing here parses or acts on it.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shiftworks/roster-api/pkg/models"
)

// ErrNotConfigured is returned when no advisory service URL is set
var ErrNotConfigured = errors.New("advisory service is not configured")

// Client calls the external advisory service
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client. An empty baseURL yields a client whose calls fail
// with ErrNotConfigured, which callers surface as a non-fatal condition.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// AdviceRequest is the snapshot sent to the advisory service: the seat in
// question, the full staff registry with constraints, the current burden
// totals, and every slot of the month as assigned so far.
type AdviceRequest struct {
	Slot   models.RequiredSlot    `json:"slot"`
	Staff  []models.Staff         `json:"staff"`
	Burden []models.BurdenSummary `json:"burden"`
	Slots  []models.RequiredSlot  `json:"slots"`
}

type adviceResponse struct {
	Advice string `json:"advice"`
}

// Advise asks the service for natural-language advice about a slot
func (c *Client) Advise(ctx context.Context, req *AdviceRequest) (string, error) {
	if c.baseURL == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode advice request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/advise", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("advisory service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("advisory service returned %d: %s", resp.StatusCode, payload)
	}

	var out adviceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode advice response: %w", err)
	}
	return out.Advice, nil
}
