package llm

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// Cohere implements TextGenerator using the Cohere Chat API
// SDK: github.com/cohere-ai/cohere-go/v2
type Cohere struct {
	client *cohereclient.Client
	model  string
}

// NewCohere creates a Cohere-backed text generator
func NewCohere(apiKey, model string) *Cohere {
	// Custom HTTP client that forces HTTP/1.1 to avoid HTTP/2 protocol errors
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &Cohere{client: client, model: model}
}

func (c *Cohere) ModelName() string { return c.model }

// Generate sends the prompt as a single chat turn and returns the reply text.
func (c *Cohere) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message: prompt,
		Model:   &c.model,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat: %w", err)
	}
	if resp.Text == "" {
		return "", fmt.Errorf("no content in response")
	}
	return resp.Text, nil
}
