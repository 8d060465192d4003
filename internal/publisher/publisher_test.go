package publisher

import (
	"context"
	"testing"

	config "github.com/publora/backend/configs"
	"github.com/publora/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allPublishers() []Publisher {
	cfg := config.Config{}
	return []Publisher{
		NewInstagramPublisher(cfg),
		NewFacebookPublisher(cfg),
		NewTiktokPublisher(cfg),
		NewPinterestPublisher(cfg),
	}
}

func TestVariantsFailUntilOAuthConfigured(t *testing.T) {
	req := &Request{
		Caption:   "hello",
		MediaURLs: []string{"https://cdn.example.com/a.jpg"},
		Account:   &models.SocialAccount{Platform: models.PlatformInstagram},
	}

	for _, pub := range allPublishers() {
		res, err := pub.Publish(context.Background(), req)
		require.Error(t, err, pub.Platform())
		assert.Nil(t, res)
		assert.Contains(t, err.Error(), "OAuth configuration required")
		assert.Contains(t, err.Error(), pub.Platform())
	}
}

func TestRegistryCoversSupportedPlatforms(t *testing.T) {
	registry := NewRegistry(allPublishers()...)

	for _, platform := range models.SupportedPlatforms {
		pub, ok := registry.Lookup(platform)
		require.True(t, ok, platform)
		assert.Equal(t, platform, pub.Platform())
	}

	_, ok := registry.Lookup("myspace")
	assert.False(t, ok)
}
