package journal

import (
	"context"

	"nextstep/internal/domain/models/journal"
)

// RelayService is the single operation the journal exposes: forward a
// transcript to the completion provider with the mode's system
// instruction attached. The service is stateless; callers supply the
// full conversation context on every call.
type RelayService interface {
	Relay(ctx context.Context, req *RelayRequest) (*RelayResponse, error)
}

// RelayRequest is one relay invocation: the ordered transcript
// (role+content pairs, ending with the newest user turn) and the
// journal mode active at submission time.
type RelayRequest struct {
	Messages []journal.Message
	Mode     string
}

// RelayResponse is the single generated reply plus token accounting.
type RelayResponse struct {
	Message string
	Usage   journal.Usage
}
