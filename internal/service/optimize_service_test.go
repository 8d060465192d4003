package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	config "github.com/publora/backend/configs"
	"github.com/publora/backend/internal/models"
	"github.com/publora/backend/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatReply(content string) string {
	reply := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	b, _ := json.Marshal(reply)
	return string(b)
}

func newOptimizeService(baseURL string) OptimizeService {
	cfg := config.Config{}
	cfg.AI.BaseURL = baseURL
	cfg.AI.APIKey = "test-key"
	cfg.AI.Model = "test-model"
	return NewOptimizeService(cfg)
}

func TestOptimize_ParsesSuggestions(t *testing.T) {
	suggestions := `{
		"instagram": {"caption": "We are live ✨", "hashtags": ["#launch", "#startup"]},
		"facebook":  {"caption": "We are live!", "hashtags": ["#launch"]}
	}`

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatReply(suggestions)))
	}))
	defer server.Close()

	svc := newOptimizeService(server.URL)

	result, err := svc.Optimize(context.Background(), &transfer.OptimizeRequest{
		Caption:   "we are live",
		Platforms: []string{models.PlatformInstagram, models.PlatformFacebook},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	require.Len(t, result.Suggestions, 2)
	assert.Equal(t, "We are live ✨", result.Suggestions[models.PlatformInstagram].Caption)
	assert.Equal(t, []string{"#launch", "#startup"}, result.Suggestions[models.PlatformInstagram].Hashtags)
}

func TestOptimize_FiltersToRequestedPlatforms(t *testing.T) {
	suggestions := `{
		"instagram": {"caption": "ig", "hashtags": []},
		"tiktok":    {"caption": "tt", "hashtags": []}
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(suggestions)))
	}))
	defer server.Close()

	svc := newOptimizeService(server.URL)

	result, err := svc.Optimize(context.Background(), &transfer.OptimizeRequest{
		Caption:   "hello",
		Platforms: []string{models.PlatformInstagram},
	})
	require.NoError(t, err)

	require.Len(t, result.Suggestions, 1)
	_, ok := result.Suggestions[models.PlatformTiktok]
	assert.False(t, ok)
}

func TestOptimize_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer server.Close()

	svc := newOptimizeService(server.URL)

	_, err := svc.Optimize(context.Background(), &transfer.OptimizeRequest{Caption: "hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestOptimize_Validation(t *testing.T) {
	svc := newOptimizeService("http://localhost:1")

	_, err := svc.Optimize(context.Background(), nil)
	assert.Error(t, err)

	_, err = svc.Optimize(context.Background(), &transfer.OptimizeRequest{Caption: ""})
	assert.Error(t, err)

	_, err = svc.Optimize(context.Background(), &transfer.OptimizeRequest{Caption: "hi", Platforms: []string{"youtube"}})
	assert.Error(t, err)
}

func TestOptimize_MissingAPIKey(t *testing.T) {
	cfg := config.Config{}
	cfg.AI.BaseURL = "http://localhost:1"
	svc := NewOptimizeService(cfg)

	_, err := svc.Optimize(context.Background(), &transfer.OptimizeRequest{Caption: "hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
