package publisher

import (
	"context"
	"fmt"

	config "github.com/publora/backend/configs"
	"github.com/publora/backend/internal/models"
)

const (
	tiktokPostURL = "https://open.tiktokapis.com/v2/post/publish/video/init/"
)

// tiktokPublisher targets the TikTok Content Posting API (PULL_FROM_URL
// source). Requires an audited client key with the video.publish scope.
type tiktokPublisher struct {
	cfg config.Config
}

func NewTiktokPublisher(cfg config.Config) Publisher {
	return &tiktokPublisher{cfg: cfg}
}

func (p *tiktokPublisher) Platform() string {
	return models.PlatformTiktok
}

func (p *tiktokPublisher) Publish(ctx context.Context, req *Request) (*Result, error) {
	return nil, fmt.Errorf("tiktok publishing is not available: OAuth configuration required (set TIKTOK_CLIENT_KEY and TIKTOK_CLIENT_SECRET)")
}
