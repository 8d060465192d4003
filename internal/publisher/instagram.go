package publisher

import (
	"context"
	"fmt"

	config "github.com/publora/backend/configs"
	"github.com/publora/backend/internal/models"
)

const (
	instagramGraphURL = "https://graph.instagram.com/v21.0"
)

// instagramPublisher publishes through the Instagram Content Publishing
// API: create a media container for each media URL, then publish the
// container. Doing that needs an app-reviewed access token with the
// instagram_business_content_publish scope, which is not wired up yet,
// so Publish fails until the OAuth app is configured.
type instagramPublisher struct {
	cfg config.Config
}

func NewInstagramPublisher(cfg config.Config) Publisher {
	return &instagramPublisher{cfg: cfg}
}

func (p *instagramPublisher) Platform() string {
	return models.PlatformInstagram
}

func (p *instagramPublisher) Publish(ctx context.Context, req *Request) (*Result, error) {
	return nil, fmt.Errorf("instagram publishing is not available: OAuth configuration required (set INSTAGRAM_CLIENT_ID and INSTAGRAM_CLIENT_SECRET)")
}
