package publisher

import (
	"context"
	"fmt"

	config "github.com/publora/backend/configs"
	"github.com/publora/backend/internal/models"
)

const (
	facebookGraphURL = "https://graph.facebook.com/v21.0"
)

// facebookPublisher targets the Graph API page feed/photos endpoints.
// Needs a page access token from the connected account; fails until the
// Facebook app is configured and reviewed.
type facebookPublisher struct {
	cfg config.Config
}

func NewFacebookPublisher(cfg config.Config) Publisher {
	return &facebookPublisher{cfg: cfg}
}

func (p *facebookPublisher) Platform() string {
	return models.PlatformFacebook
}

func (p *facebookPublisher) Publish(ctx context.Context, req *Request) (*Result, error) {
	return nil, fmt.Errorf("facebook publishing is not available: OAuth configuration required (set FACEBOOK_CLIENT_ID and FACEBOOK_CLIENT_SECRET)")
}
