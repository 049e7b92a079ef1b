package journal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"nextstep/internal/domain"
	journalModels "nextstep/internal/domain/models/journal"
	journalSvc "nextstep/internal/domain/services/journal"
	"nextstep/internal/modes"
)

// relayService implements the RelayService interface
type relayService struct {
	provider journalSvc.CompletionProvider
	registry *modes.Registry
	timeout  time.Duration
	logger   *slog.Logger
}

// NewRelayService creates a new relay service. The timeout bounds each
// upstream call; zero means no bound beyond the caller's context.
func NewRelayService(
	provider journalSvc.CompletionProvider,
	registry *modes.Registry,
	timeout time.Duration,
	logger *slog.Logger,
) journalSvc.RelayService {
	return &relayService{
		provider: provider,
		registry: registry,
		timeout:  timeout,
		logger:   logger,
	}
}

// Relay attaches the mode's system instruction and performs exactly one
// upstream completion call. Every call is independent; the full
// transcript is forwarded untruncated.
func (s *relayService) Relay(ctx context.Context, req *journalSvc.RelayRequest) (*journalSvc.RelayResponse, error) {
	if err := validateRelayRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Unrecognized modes coerce to the default rather than failing.
	spec := s.registry.Resolve(req.Mode)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.provider.Complete(ctx, &journalSvc.CompletionRequest{
		System:      spec.SystemPrompt,
		Messages:    req.Messages,
		Temperature: spec.Temperature,
		MaxTokens:   spec.MaxTokens,
	})
	if err != nil {
		// Full detail stays server-side; the caller only ever sees the
		// generic failure.
		s.logger.Error("completion call failed",
			"provider", s.provider.Name(),
			"mode", spec.ID,
			"message_count", len(req.Messages),
			"error", err,
		)
		return nil, domain.ErrUpstream
	}

	s.logger.Info("journal reply generated",
		"mode", spec.ID,
		"message_count", len(req.Messages),
		"prompt_tokens", result.Usage.PromptTokens,
		"completion_tokens", result.Usage.CompletionTokens,
	)

	return &journalSvc.RelayResponse{
		Message: result.Message,
		Usage:   result.Usage,
	}, nil
}

// validateRelayRequest checks the wire enum values. This is type
// coercion of the transcript shape, not content validation: empty
// content is allowed, ordering is the caller's responsibility.
func validateRelayRequest(req *journalSvc.RelayRequest) error {
	if err := validation.Validate(req.Messages, validation.Required); err != nil {
		return fmt.Errorf("messages: %v", err)
	}
	for i := range req.Messages {
		m := &req.Messages[i]
		err := validation.ValidateStruct(m,
			validation.Field(&m.Role,
				validation.Required,
				validation.In(journalModels.RoleUser, journalModels.RoleAssistant),
			),
		)
		if err != nil {
			return fmt.Errorf("messages[%d]: %v", i, err)
		}
	}
	return nil
}
