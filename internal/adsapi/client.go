// Package adsapi talks to the campaign-management endpoint that applies an
// approved recommendation. The API itself is an opaque collaborator; this
// client only posts the mutation and reports failure.
package adsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"studio-backoffice/internal/models"
)

// Applier pushes an approved or auto-applied recommendation to the ads
// platform. Calls are single-attempt; there is no retry or backoff.
type Applier interface {
	Apply(ctx context.Context, rec *models.Recommendation) error
}

// UpstreamError wraps a third-party failure so handlers can map it to a
// generic retry prompt instead of leaking transport detail.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("ads api: %v", e.Err) }
func (e *UpstreamError) Unwrap() error { return e.Err }

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Apply(ctx context.Context, rec *models.Recommendation) error {
	payload, err := json.Marshal(map[string]interface{}{
		"recommendation_id": rec.ID,
		"type":              rec.Type,
		"priority":          rec.Priority,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/recommendations/apply", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return &UpstreamError{Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	return nil
}

// Noop stands in when no ads endpoint is configured; approvals still resolve,
// the external mutation just does not happen.
type Noop struct{}

func (Noop) Apply(context.Context, *models.Recommendation) error { return nil }
