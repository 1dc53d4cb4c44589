package llm

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the completion capability consumed by the responder.  Complete
// sends one system prompt plus one user message and returns the model's
// text.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Generation parameters carried over from the production persona tuning.
const (
	defaultModel     = "gpt-3.5-turbo"
	temperature      = 0.7
	maxTokens        = 2000
	presencePenalty  = 0.6
	frequencyPenalty = 0.6
)

// OpenAIClient calls the OpenAI chat completion API.  A client constructed
// without an API key stays in an unconfigured state and fails every call
// with ErrNotConfigured; the responder turns that into the standard
// fallback reply.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient constructs an OpenAI-backed client.  model may be empty,
// in which case the default chat model is used.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = defaultModel
	}
	c := &OpenAIClient{model: model}
	if apiKey != "" {
		c.client = openai.NewClient(apiKey)
	}
	return c
}

// Complete sends the system prompt and user message to the chat completion
// API and returns the assistant's text.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature:      temperature,
		MaxTokens:        maxTokens,
		PresencePenalty:  presencePenalty,
		FrequencyPenalty: frequencyPenalty,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrMalformedResponse
	}
	return resp.Choices[0].Message.Content, nil
}
