package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/publora/backend/internal/dispatcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDispatcher struct {
	summary *dispatcher.RunSummary
	err     error
}

func (f *fakeDispatcher) Run(ctx context.Context) (*dispatcher.RunSummary, error) {
	return f.summary, f.err
}

func newDispatchApp(d Dispatcher) *fiber.App {
	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	h := NewDispatchHandler(d)
	app.All("/functions/publish-scheduled", h.PublishScheduled)
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(body, &parsed))
	return parsed
}

func TestPublishScheduled_ReturnsSummary(t *testing.T) {
	app := newDispatchApp(&fakeDispatcher{summary: &dispatcher.RunSummary{
		Processed: 2,
		Results: []dispatcher.PostResult{
			{PostID: 1, Title: "a", SuccessCount: 1, FailedCount: 0},
			{PostID: 2, Title: "b", SuccessCount: 0, FailedCount: 2},
		},
	}})

	req := httptest.NewRequest(http.MethodPost, "/functions/publish-scheduled", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	parsed := decodeBody(t, resp)
	assert.Equal(t, float64(2), parsed["processed"])
	assert.Contains(t, parsed["message"], "Processed 2")

	results, ok := parsed["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 2)
	first := results[0].(map[string]any)
	assert.Equal(t, float64(1), first["post_id"])
	assert.Equal(t, float64(1), first["success_count"])
	_, hasError := first["error"]
	assert.False(t, hasError, "error field should be omitted on the normal path")
}

func TestPublishScheduled_NoDuePosts(t *testing.T) {
	app := newDispatchApp(&fakeDispatcher{summary: &dispatcher.RunSummary{Processed: 0, Results: []dispatcher.PostResult{}}})

	req := httptest.NewRequest(http.MethodGet, "/functions/publish-scheduled", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	parsed := decodeBody(t, resp)
	assert.Equal(t, float64(0), parsed["processed"])
	assert.Equal(t, "No posts due for publishing", parsed["message"])
}

func TestPublishScheduled_SelectionErrorIs500(t *testing.T) {
	app := newDispatchApp(&fakeDispatcher{err: errors.New("storage unreachable")})

	req := httptest.NewRequest(http.MethodPost, "/functions/publish-scheduled", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	parsed := decodeBody(t, resp)
	assert.Equal(t, "storage unreachable", parsed["error"])
}

func TestPublishScheduled_PreflightSucceeds(t *testing.T) {
	app := newDispatchApp(&fakeDispatcher{summary: &dispatcher.RunSummary{}})

	req := httptest.NewRequest(http.MethodOptions, "/functions/publish-scheduled", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "POST")
}
