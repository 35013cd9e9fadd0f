package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.openai.com/v1"

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client is a thin pass-through to the OpenAI chat completions API. It is
// constructed once in main and injected wherever generation is needed, so
// tests can swap in a fake.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// GenerateQuestions produces quiz-style questions for a topic, one per line.
func (c *Client) GenerateQuestions(ctx context.Context, topic, difficulty string) ([]string, error) {
	if difficulty == "" {
		difficulty = "medium"
	}
	prompt := fmt.Sprintf("Generate %s level questions for the topic: %q. Please provide concise, quiz-style questions with answers.", difficulty, topic)
	content, err := c.chatCompletion(ctx, prompt, 300, 0.7)
	if err != nil {
		return nil, err
	}
	return splitLines(content), nil
}

// RelatedDocuments returns brief summaries of documents related to a topic.
func (c *Client) RelatedDocuments(ctx context.Context, topic string) ([]string, error) {
	prompt := fmt.Sprintf("Provide a list of brief summaries or key information about documents related to the topic %q. Focus on essential details.", topic)
	content, err := c.chatCompletion(ctx, prompt, 500, 0.5)
	if err != nil {
		return nil, err
	}
	return splitLines(content), nil
}

// GenerateSummary returns a concise summary of a topic.
func (c *Client) GenerateSummary(ctx context.Context, topic string) (string, error) {
	prompt := fmt.Sprintf("Provide a concise summary with key insights on the topic: %q.", topic)
	return c.chatCompletion(ctx, prompt, 300, 0.5)
}

// GenerateContent writes an article about a topic. Length is "short" or
// "long"; long articles get a larger completion budget.
func (c *Client) GenerateContent(ctx context.Context, topic, length string) (string, error) {
	if length == "" {
		length = "short"
	}
	maxTokens := 500
	if length == "long" {
		maxTokens = 1000
	}
	prompt := fmt.Sprintf("Write a %s article about %q.", length, topic)
	return c.chatCompletion(ctx, prompt, maxTokens, 0.7)
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// chatCompletion performs a single upstream call. No retries: transient
// upstream failures surface to the caller on first attempt.
func (c *Client) chatCompletion(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Message != "" {
			c.logger.Warn("openai error response",
				zap.Int("status", resp.StatusCode),
				zap.String("type", errResp.Error.Type),
			)
			return "", fmt.Errorf("openai: %s (status %d)", errResp.Error.Message, resp.StatusCode)
		}
		return "", fmt.Errorf("openai: unexpected status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: no content returned")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

func splitLines(content string) []string {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
