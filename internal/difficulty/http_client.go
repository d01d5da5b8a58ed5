package difficulty

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	advisePath  = "/v1/difficulty"
	runIDHeader = "X-Run-ID"
	maxBodySize = 1 << 16
)

// HTTPAdvisor calls a remote advisor speaking JSON over HTTP.
type HTTPAdvisor struct {
	baseURL string
	client  *http.Client
}

// NewHTTPAdvisor uses http.DefaultClient when client is nil. Timeouts come
// from the request context.
func NewHTTPAdvisor(baseURL string, client *http.Client) *HTTPAdvisor {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPAdvisor{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (a *HTTPAdvisor) Advise(ctx context.Context, req Request) (Params, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Params{}, fmt.Errorf("encode advisor request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+advisePath, bytes.NewReader(body))
	if err != nil {
		return Params{}, fmt.Errorf("build advisor request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if req.RunID != "" {
		httpReq.Header.Set(runIDHeader, req.RunID)
	}

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return Params{}, fmt.Errorf("advisor request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Params{}, fmt.Errorf("advisor returned %s", resp.Status)
	}

	var params Params
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&params); err != nil {
		return Params{}, fmt.Errorf("decode advisor response: %w", err)
	}
	if err := params.Validate(); err != nil {
		return Params{}, err
	}
	return params, nil
}
