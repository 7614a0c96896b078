package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jiwoo-back/logger"
	"jiwoo-back/metrics"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"golang.org/x/time/rate"
)

// ErrResponseFail means the provider answered but the answer carried no text.
var ErrResponseFail = errors.New("openai response has no content")

const defaultSystemPrompt = "당신은 스타트업 창업자를 돕는 시장 조사 전문가입니다. 한국어로 간결하게 답변하세요."

type Client interface {
	GenerateAnswer(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	APIKey            string
	BaseURL           string
	Model             string
	SystemPrompt      string
	MaxTokens         int
	RequestsPerSecond float64
	MaxRetries        int
}

type client struct {
	openai       openai.Client
	model        string
	systemPrompt string
	maxTokens    int
	limiter      *rate.Limiter
}

func New(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(cfg.MaxRetries))
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	systemPrompt := cfg.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1500
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &client{
		openai:       openai.NewClient(opts...),
		model:        model,
		systemPrompt: systemPrompt,
		maxTokens:    maxTokens,
		limiter:      rate.NewLimiter(limit, 1),
	}, nil
}

func (c *client) GenerateAnswer(ctx context.Context, prompt string) (answer string, err error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("openai rate limit wait: %w", err)
	}

	start := time.Now()
	defer func() { metrics.ObserveUpstream("openai", start, err) }()

	resp, err := c.openai.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(prompt),
		},
		MaxTokens: openai.Int(int64(c.maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat: %w", err)
	}

	logger.WithComponent("openai").WithFields(map[string]interface{}{
		"model":             c.model,
		"duration_ms":       time.Since(start).Milliseconds(),
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
	}).Debug("chat completion finished")

	if len(resp.Choices) == 0 {
		return "", ErrResponseFail
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrResponseFail
	}
	return content, nil
}
