package publisher

import (
	"context"

	"github.com/publora/backend/internal/models"
)

// Request carries everything a platform needs for one publish attempt:
// the assembled caption (caption text plus space-joined hashtags), the
// media URLs attached to the post and the credential bundle of the
// matched social account.
type Request struct {
	Caption   string
	MediaURLs []string
	Account   *models.SocialAccount
}

type Result struct {
	PublishedURL string
}

// Publisher is implemented once per supported platform. A call either
// returns the URL of the published post or an error describing why the
// attempt failed.
type Publisher interface {
	Platform() string
	Publish(ctx context.Context, req *Request) (*Result, error)
}

// Registry maps a platform name to its publisher, replacing a switch
// that would otherwise grow with every platform.
type Registry map[string]Publisher

func NewRegistry(publishers ...Publisher) Registry {
	r := make(Registry, len(publishers))
	for _, p := range publishers {
		r[p.Platform()] = p
	}
	return r
}

func (r Registry) Lookup(platform string) (Publisher, bool) {
	p, ok := r[platform]
	return p, ok
}
