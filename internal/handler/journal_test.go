package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	journalModels "nextstep/internal/domain/models/journal"
	journalSvc "nextstep/internal/domain/services/journal"
	"nextstep/internal/middleware"
	"nextstep/internal/modes"
	journalService "nextstep/internal/service/journal"
)

// fakeProvider counts calls so tests can assert the upstream was (not)
// reached.
type fakeProvider struct {
	calls  int
	result *journalSvc.CompletionResult
	err    error
}

func (f *fakeProvider) Complete(ctx context.Context, req *journalSvc.CompletionRequest) (*journalSvc.CompletionResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &journalSvc.CompletionResult{Message: "ok"}, nil
}

func (f *fakeProvider) Name() string { return "fake" }

// newChatServer wires the chat route the way cmd/server does: origin
// allow-list in front of the handler.
func newChatServer(t *testing.T, provider journalSvc.CompletionProvider) http.Handler {
	t.Helper()
	registry, err := modes.NewRegistry()
	if err != nil {
		t.Fatalf("failed to create mode registry: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	relay := journalService.NewRelayService(provider, registry, 0, logger)
	h := NewJournalHandler(relay, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat", h.Chat)
	mux.HandleFunc("GET /health", h.HealthCheck)

	return middleware.OriginAllowlist([]string{"http://localhost:5173"})(mux)
}

func postChat(handler http.Handler, body string, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

const validChatBody = `{"messages":[{"role":"user","content":"I'm stressed about internships"}],"journalMode":"venting"}`

func TestChat_Success(t *testing.T) {
	provider := &fakeProvider{
		result: &journalSvc.CompletionResult{
			Message: "That sounds like a lot to carry right now.",
			Usage:   journalModels.Usage{PromptTokens: 40, CompletionTokens: 11, TotalTokens: 51},
		},
	}
	server := newChatServer(t, provider)

	rec := postChat(server, validChatBody, "http://localhost:5173")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message string              `json:"message"`
		Usage   journalModels.Usage `json:"usage"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "That sounds like a lot to carry right now." {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Usage.TotalTokens != 51 {
		t.Errorf("unexpected usage %+v", resp.Usage)
	}
	if provider.calls != 1 {
		t.Errorf("expected exactly one upstream call, got %d", provider.calls)
	}
}

func TestChat_UpstreamFailureReturnsFixedError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("429 rate limited, org org-abc123")}
	server := newChatServer(t, provider)

	rec := postChat(server, validChatBody, "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "Failed to get response" {
		t.Errorf("expected the fixed generic error, got %q", resp["error"])
	}
	if strings.Contains(rec.Body.String(), "org-abc123") {
		t.Error("upstream failure detail leaked to the client")
	}
}

func TestChat_MalformedBodyIsBadRequest(t *testing.T) {
	provider := &fakeProvider{}
	server := newChatServer(t, provider)

	rec := postChat(server, `{"messages": [`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if provider.calls != 0 {
		t.Errorf("malformed request reached the provider (%d calls)", provider.calls)
	}
}

func TestChat_InvalidRoleIsBadRequest(t *testing.T) {
	provider := &fakeProvider{}
	server := newChatServer(t, provider)

	rec := postChat(server, `{"messages":[{"role":"system","content":"x"}]}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if provider.calls != 0 {
		t.Errorf("invalid transcript reached the provider (%d calls)", provider.calls)
	}
}

func TestChat_DisallowedOriginRejectedBeforeUpstream(t *testing.T) {
	provider := &fakeProvider{}
	server := newChatServer(t, provider)

	rec := postChat(server, validChatBody, "https://evil.example")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if provider.calls != 0 {
		t.Errorf("rejected origin still reached the provider (%d calls)", provider.calls)
	}
}

func TestChat_AllowedOriginPasses(t *testing.T) {
	provider := &fakeProvider{}
	server := newChatServer(t, provider)

	rec := postChat(server, validChatBody, "http://localhost:5173")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHealthCheck(t *testing.T) {
	server := newChatServer(t, &fakeProvider{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %q", resp["status"])
	}
}
