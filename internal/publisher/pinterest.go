package publisher

import (
	"context"
	"fmt"

	config "github.com/publora/backend/configs"
	"github.com/publora/backend/internal/models"
)

const (
	pinterestPinsURL = "https://api.pinterest.com/v5/pins"
)

// pinterestPublisher creates pins through the Pinterest v5 API. Needs a
// standard-access app token with pins:write.
type pinterestPublisher struct {
	cfg config.Config
}

func NewPinterestPublisher(cfg config.Config) Publisher {
	return &pinterestPublisher{cfg: cfg}
}

func (p *pinterestPublisher) Platform() string {
	return models.PlatformPinterest
}

func (p *pinterestPublisher) Publish(ctx context.Context, req *Request) (*Result, error) {
	return nil, fmt.Errorf("pinterest publishing is not available: OAuth configuration required (set PINTEREST_CLIENT_ID and PINTEREST_CLIENT_SECRET)")
}
