package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	config "github.com/publora/backend/configs"
	"github.com/publora/backend/internal/models"
	"github.com/publora/backend/internal/transfer"
)

// OptimizeService asks an OpenAI-compatible chat completions endpoint
// for per-platform caption and hashtag suggestions. The remote model is
// treated as an opaque service: one request, one structured JSON reply.
type OptimizeService interface {
	Optimize(ctx context.Context, req *transfer.OptimizeRequest) (*transfer.OptimizeResult, error)
}

type optimizeService struct {
	cfg    config.Config
	client *http.Client
}

func NewOptimizeService(cfg config.Config) OptimizeService {
	return &optimizeService{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *optimizeService) Optimize(ctx context.Context, req *transfer.OptimizeRequest) (*transfer.OptimizeResult, error) {
	if req == nil || req.Caption == "" {
		err := errors.New("caption cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}
	if s.cfg.AI.APIKey == "" {
		err := errors.New("AI optimization is not configured")
		slog.Info(err.Error())
		return nil, err
	}

	platforms := req.Platforms
	if len(platforms) == 0 {
		platforms = models.SupportedPlatforms
	}
	for _, p := range platforms {
		if !models.IsSupportedPlatform(p) {
			err := fmt.Errorf("unsupported platform: %s", p)
			slog.Info(err.Error())
			return nil, err
		}
	}

	body := chatRequest{
		Model: s.cfg.AI.Model,
		Messages: []chatMessage{
			{Role: "system", Content: optimizePrompt(platforms, req.Tone)},
			{Role: "user", Content: req.Caption},
		},
	}
	body.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(body)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.AI.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.cfg.AI.APIKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("optimization request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("unable to parse optimization response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := resp.Status
		if chat.Error != nil {
			msg = chat.Error.Message
		}
		err = fmt.Errorf("optimization service error: %s", msg)
		slog.Info(err.Error())
		return nil, err
	}

	if len(chat.Choices) == 0 {
		err = errors.New("optimization service returned no choices")
		slog.Info(err.Error())
		return nil, err
	}

	suggestions := make(map[string]transfer.PlatformSuggestion)
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &suggestions); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("unable to parse suggestions: %w", err)
	}

	// Only pass through the platforms that were asked for.
	result := &transfer.OptimizeResult{Suggestions: make(map[string]transfer.PlatformSuggestion, len(platforms))}
	for _, p := range platforms {
		if s, ok := suggestions[p]; ok {
			result.Suggestions[p] = s
		}
	}

	return result, nil
}

func optimizePrompt(platforms []string, tone string) string {
	var b strings.Builder
	b.WriteString("You optimize social media captions. ")
	b.WriteString("Given a caption, reply with a JSON object keyed by platform name, ")
	b.WriteString(`each value an object with "caption" (string) and "hashtags" (array of strings). `)
	b.WriteString("Platforms: ")
	b.WriteString(strings.Join(platforms, ", "))
	b.WriteString(".")
	if tone != "" {
		b.WriteString(" Tone: ")
		b.WriteString(tone)
		b.WriteString(".")
	}
	return b.String()
}
