// Package ai wraps the Gemini SDK and builds the greeting, tips, news and
// brainstorm content on top of it.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
	"ukmprhub/internal/config"
)

var ErrNoAPIKey = errors.New("gemini api key is not configured")

const (
	RoleUser  = string(genai.RoleUser)
	RoleModel = string(genai.RoleModel)
)

// IsKeyRejected reports whether err means the provider refused the key,
// either because it was reported as leaked or because it is invalid.
func IsKeyRejected(err error) bool {
	if err == nil {
		return false
	}

	if apiErr, ok := asAPIError(err); ok {
		if apiErr.Code == http.StatusForbidden {
			return true
		}
		if apiErr.Status == "INVALID_ARGUMENT" && strings.Contains(apiErr.Message, "API key not valid") {
			return true
		}
	}

	msg := err.Error()
	return strings.Contains(msg, "leaked") ||
		strings.Contains(msg, "API_KEY_INVALID") ||
		strings.Contains(msg, "403")
}

// asAPIError unwraps the SDK's error whether it was returned by value or
// by pointer.
func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	var ptr *genai.APIError
	if errors.As(err, &ptr) && ptr != nil {
		return *ptr, true
	}
	return genai.APIError{}, false
}

type Turn struct {
	Role string
	Text string
}

type Request struct {
	Model   string
	System  string
	History []Turn
	Prompt  string
	JSON    bool
}

// Client is the Generator backed by the Gemini API. Without a key it never
// calls out.
type Client struct {
	models *genai.Models
}

func NewClient(ctx context.Context, cfg config.AI) (*Client, error) {
	if cfg.APIKey == "" {
		return &Client{}, nil
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{models: client.Models}, nil
}

func (c *Client) HasKey() bool {
	return c.models != nil
}

// Generate sends the history plus the new prompt and returns the text of the
// first candidate.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	if !c.HasKey() {
		return "", ErrNoAPIKey
	}

	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		var role genai.Role = genai.RoleModel
		if turn.Role == RoleUser {
			role = genai.RoleUser
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(req.Prompt, genai.RoleUser))

	generateConfig := &genai.GenerateContentConfig{}
	if req.System != "" {
		generateConfig.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.JSON {
		generateConfig.ResponseMIMEType = "application/json"
	}

	resp, err := c.models.GenerateContent(ctx, req.Model, contents, generateConfig)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	return resp.Text(), nil
}

// Ping fetches the model description, the cheapest call that still
// validates the key.
func (c *Client) Ping(ctx context.Context, model string) error {
	if !c.HasKey() {
		return ErrNoAPIKey
	}

	if _, err := c.models.Get(ctx, model, nil); err != nil {
		return fmt.Errorf("gemini model lookup failed: %w", err)
	}
	return nil
}
