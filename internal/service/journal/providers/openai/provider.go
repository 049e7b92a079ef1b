package openai

import (
	"context"
	"fmt"

	gopenai "github.com/sashabaranov/go-openai"

	journalModels "nextstep/internal/domain/models/journal"
	journalSvc "nextstep/internal/domain/services/journal"
)

// DefaultModel is the completion model used when none is configured.
// Cheap and fast; replies are capped well below its context window.
const DefaultModel = gopenai.GPT4oMini

// Provider implements the CompletionProvider interface for the OpenAI
// chat completions API.
type Provider struct {
	client *gopenai.Client
	model  string
}

// NewProvider creates a new OpenAI provider with the given API key.
func NewProvider(apiKey, model string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	return &Provider{
		client: gopenai.NewClient(apiKey),
		model:  model,
	}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "openai"
}

// Complete performs one chat completion call: the system instruction
// first, then the caller's transcript verbatim.
func (p *Provider) Complete(ctx context.Context, req *journalSvc.CompletionRequest) (*journalSvc.CompletionResult, error) {
	messages := make([]gopenai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, gopenai.ChatCompletionMessage{
			Role:    gopenai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		messages = append(messages, gopenai.ChatCompletionMessage{
			Role:    toOpenAIRole(m.Role),
			Content: m.Content,
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	return &journalSvc.CompletionResult{
		Message: resp.Choices[0].Message.Content,
		Usage: journalModels.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

func toOpenAIRole(role string) string {
	switch role {
	case journalModels.RoleAssistant:
		return gopenai.ChatMessageRoleAssistant
	default:
		return gopenai.ChatMessageRoleUser
	}
}
