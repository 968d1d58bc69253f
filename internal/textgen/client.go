// Package textgen calls the external text-generation service used for
// finance narratives, diet plans and ad copy. The service is opaque to
// the ERP: prompts go in, prose comes out. No model output is parsed or
// trusted beyond being display text.
package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	apiVersion = "2023-06-01"
	maxTokens  = 1024
)

// ErrOffline is returned when no API key is configured. Callers fall
// back to canned copy instead of failing the request.
var ErrOffline = errors.New("textgen: service not configured")

// Generator is the text-generation contract consumed by the services.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// Client talks to a messages-style completion endpoint.
type Client struct {
	http  *resty.Client
	url   string
	model string
	key   string
}

// New creates a configured client. An empty key yields a client whose
// calls all return ErrOffline.
func New(url, key, model string) *Client {
	httpClient := resty.New().
		SetHeader("x-api-key", key).
		SetHeader("anthropic-version", apiVersion).
		SetHeader("content-type", "application/json").
		SetTimeout(15 * time.Second)
	return &Client{http: httpClient, url: url, model: model, key: key}
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// Generate sends one prompt and returns the trimmed response text.
func (c *Client) Generate(ctx context.Context, system, prompt string) (string, error) {
	if c == nil || c.key == "" {
		return "", ErrOffline
	}

	reqBody := messageRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    system,
		Messages:  []message{{Role: "user", Content: prompt}},
	}

	var respBody messageResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&respBody).
		Post(c.url)
	if err != nil {
		return "", fmt.Errorf("textgen: api call: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("textgen: api error: %s", resp.Status())
	}
	if len(respBody.Content) == 0 {
		return "", errors.New("textgen: empty response")
	}
	return strings.TrimSpace(respBody.Content[0].Text), nil
}
