package journal

import (
	"context"

	"nextstep/internal/domain/models/journal"
)

// CompletionProvider defines the interface the relay uses to talk to an
// external completion API. Keeping it narrow lets tests substitute a
// double and keeps the relay independent of any one provider SDK.
type CompletionProvider interface {
	// Complete performs exactly one generation call and returns the
	// single generated message. No retries, no streaming.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResult, error)

	// Name returns the provider name (e.g., "openai")
	Name() string
}

// CompletionRequest contains the parameters for one upstream call.
type CompletionRequest struct {
	// System is the mode-selected instruction, sent as the first turn.
	System string

	// Messages is the caller's transcript, forwarded verbatim.
	Messages []journal.Message

	// Generation parameters from the mode spec.
	Temperature float32
	MaxTokens   int
}

// CompletionResult is the provider's reply in domain form.
type CompletionResult struct {
	Message string
	Usage   journal.Usage
}
