package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Notification is a pending damage notification as served by the pipeline API.
type Notification struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenant_id"`
	DamageID        string    `json:"damage_id"`
	RecipientEmail  string    `json:"recipient_email"`
	RecipientName   string    `json:"recipient_name"`
	VehiclePlate    string    `json:"vehicle_plate"`
	VehicleModel    string    `json:"vehicle_model"`
	Description     string    `json:"description"`
	EstimatedAmount int64     `json:"estimated_amount"`
	InspectionDate  time.Time `json:"inspection_date"`
}

// Client talks to the pipeline API with the shared API key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a pipeline API client.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// GetPending fetches up to limit pending notifications, oldest first.
func (c *Client) GetPending(ctx context.Context, limit int) ([]Notification, error) {
	endpoint := c.baseURL + "/api/v1/pipeline/notifications/pending"
	if limit > 0 {
		endpoint += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}

	var result struct {
		Notifications []Notification `json:"notifications"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, fmt.Errorf("fetching pending notifications: %w", err)
	}
	return result.Notifications, nil
}

// MarkSent reports a delivered notification.
func (c *Client) MarkSent(ctx context.Context, id string) error {
	endpoint := c.baseURL + "/api/v1/pipeline/notifications/" + url.PathEscape(id) + "/sent"
	if err := c.do(ctx, http.MethodPost, endpoint, nil, nil); err != nil {
		return fmt.Errorf("marking notification %s sent: %w", id, err)
	}
	return nil
}

// MarkFailed reports a failed delivery with its reason.
func (c *Client) MarkFailed(ctx context.Context, id, reason string) error {
	endpoint := c.baseURL + "/api/v1/pipeline/notifications/" + url.PathEscape(id) + "/failed"
	body := struct {
		Reason string `json:"reason"`
	}{Reason: reason}
	if err := c.do(ctx, http.MethodPost, endpoint, body, nil); err != nil {
		return fmt.Errorf("marking notification %s failed: %w", id, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error.Code != "" {
			return fmt.Errorf("unexpected status %d (%s)", resp.StatusCode, apiErr.Error.Code)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
