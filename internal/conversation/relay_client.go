package conversation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	journalModels "nextstep/internal/domain/models/journal"
)

// RelayClient is the HTTP RelayCaller: one POST /api/chat per call.
type RelayClient struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a RelayClient.
type ClientOption func(*RelayClient)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(rc *RelayClient) { rc.httpClient = c }
}

// NewRelayClient creates a client for the relay at baseURL.
func NewRelayClient(baseURL string, opts ...ClientOption) *RelayClient {
	rc := &RelayClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

type wireRequest struct {
	Messages    []journalModels.Message `json:"messages"`
	JournalMode string                  `json:"journalMode"`
}

type wireResponse struct {
	Message string              `json:"message"`
	Usage   journalModels.Usage `json:"usage"`
}

// Relay performs one chat exchange. Any transport failure, non-2xx
// status, or malformed body is returned as an error; callers translate
// it to the fixed local failure turn.
func (c *RelayClient) Relay(ctx context.Context, messages []journalModels.Message, mode string) (*journalModels.Reply, error) {
	body, err := json.Marshal(wireRequest{
		Messages:    messages,
		JournalMode: mode,
	})
	if err != nil {
		return nil, fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("relay returned status %d", resp.StatusCode)
	}

	var wire wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}

	return &journalModels.Reply{
		Message: wire.Message,
		Usage:   wire.Usage,
	}, nil
}
