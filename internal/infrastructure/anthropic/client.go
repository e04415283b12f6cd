// Package anthropic is the resty client for the Anthropic Messages API, the
// chat-completion provider behind the relay.
package anthropic

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"github.com/keelridge/blankchart/internal/config"
	"github.com/keelridge/blankchart/internal/domain/chat"
	"github.com/keelridge/blankchart/internal/infrastructure/httpclients"
)

// apiVersion is the protocol version marker required on every call.
const apiVersion = "2023-06-01"

// Client talks to the Messages endpoint with a fixed model and output bound.
type Client struct {
	client    *resty.Client
	model     string
	maxTokens int
}

// NewClient builds the provider client from configuration. The credential
// header is set even when empty; the relay fails closed before calling here
// when no key is configured.
func NewClient(cfg *config.Config) *Client {
	client := httpclients.NewClient("AnthropicClient", cfg.AnthropicTimeout)
	client.SetBaseURL(cfg.AnthropicBaseURL)
	client.SetHeader("X-API-Key", cfg.AnthropicAPIKey)
	client.SetHeader("Anthropic-Version", apiVersion)

	return &Client{
		client:    client,
		model:     cfg.AnthropicModel,
		maxTokens: cfg.AnthropicMaxTokens,
	}
}

type messageRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	System    string        `json:"system,omitempty"`
	Messages  []wireMessage `json:"messages"`
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messageResponse struct {
	Content []contentBlock `json:"content"`
}

// CreateMessage forwards the conversation and returns the first text block
// of the reply. An empty string with nil error means the provider answered
// without text; the caller owns the fallback.
func (c *Client) CreateMessage(ctx context.Context, system string, messages []chat.Message) (string, error) {
	body := messageRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    system,
		Messages:  make([]wireMessage, 0, len(messages)),
	}
	for _, m := range messages {
		body.Messages = append(body.Messages, wireMessage{Role: m.Role, Content: m.Content})
	}

	var result messageResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post("/v1/messages")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("messages API returned %s", resp.Status())
	}

	for _, block := range result.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", nil
}
