package dispatcher

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/publora/backend/internal/models"
	"github.com/publora/backend/internal/publisher"
)

// ErrMsgAccountNotConnected is written to a content row when no active
// social account exists for its platform.
const ErrMsgAccountNotConnected = "account not connected"

// DefaultBatchSize caps how many due posts one run picks up.
const DefaultBatchSize = 10

type PostStore interface {
	ListDue(ctx context.Context, now time.Time, limit int) ([]*models.Post, error)
	UpdateStatus(ctx context.Context, status string, postID int64) error
}

type ContentStore interface {
	MarkPublished(ctx context.Context, contentID int64, publishedURL string, publishedAt time.Time) error
	MarkFailed(ctx context.Context, contentID int64, errorMessage string) error
}

type AccountStore interface {
	ListActiveByUserID(ctx context.Context, userID int64) ([]*models.SocialAccount, error)
}

// PostResult summarises one post's processing. Either the counters are
// meaningful (normal path) or Error is set (the post could not be
// processed at all and was forced to "failed").
type PostResult struct {
	PostID       int64  `json:"post_id"`
	Title        string `json:"title"`
	SuccessCount int    `json:"success_count"`
	FailedCount  int    `json:"failed_count"`
	Error        string `json:"error,omitempty"`
}

type RunSummary struct {
	Processed int          `json:"processed"`
	Results   []PostResult `json:"results"`
}

// Dispatcher is the scheduled-post publication pass: it scans for due
// posts and fans each one out to its target platforms, one post and one
// platform at a time. Callers must not run two passes concurrently; the
// asynq dispatch queue is consumed with concurrency 1 for that reason.
type Dispatcher struct {
	posts      PostStore
	contents   ContentStore
	accounts   AccountStore
	publishers publisher.Registry
	batchSize  int
	now        func() time.Time
}

func New(posts PostStore, contents ContentStore, accounts AccountStore, publishers publisher.Registry) *Dispatcher {
	return &Dispatcher{
		posts:      posts,
		contents:   contents,
		accounts:   accounts,
		publishers: publishers,
		batchSize:  DefaultBatchSize,
		now:        time.Now,
	}
}

// Run performs one dispatch pass. It only returns an error when the due
// selection itself fails; every post-level and content-level failure is
// absorbed into the summary so one bad post never aborts the batch.
func (d *Dispatcher) Run(ctx context.Context) (*RunSummary, error) {
	posts, err := d.posts.ListDue(ctx, d.now(), d.batchSize)
	if err != nil {
		slog.Error("dispatch: due post selection failed", "error", err)
		return nil, err
	}

	summary := &RunSummary{
		Processed: len(posts),
		Results:   make([]PostResult, 0, len(posts)),
	}

	for _, post := range posts {
		summary.Results = append(summary.Results, d.processPost(ctx, post))
	}

	return summary, nil
}

func (d *Dispatcher) processPost(ctx context.Context, post *models.Post) PostResult {
	result := PostResult{PostID: post.ID, Title: post.Title}

	if err := d.posts.UpdateStatus(ctx, models.PostStatusPublishing, post.ID); err != nil {
		slog.Error("dispatch: unable to mark post publishing", "post_id", post.ID, "error", err)
		result.Error = err.Error()
		d.forceFailed(ctx, post.ID)
		return result
	}

	accounts, err := d.accounts.ListActiveByUserID(ctx, post.UserID)
	if err != nil {
		slog.Error("dispatch: unable to fetch accounts", "post_id", post.ID, "user_id", post.UserID, "error", err)
		result.Error = err.Error()
		d.forceFailed(ctx, post.ID)
		return result
	}

	byPlatform := make(map[string]*models.SocialAccount, len(accounts))
	for _, acc := range accounts {
		byPlatform[acc.Platform] = acc
	}

	for _, content := range post.Contents {
		account, ok := byPlatform[content.Platform]
		if !ok {
			d.markFailed(ctx, content.ID, ErrMsgAccountNotConnected)
			result.FailedCount++
			continue
		}

		pub, ok := d.publishers.Lookup(content.Platform)
		if !ok {
			d.markFailed(ctx, content.ID, "unsupported platform: "+content.Platform)
			result.FailedCount++
			continue
		}

		res, err := pub.Publish(ctx, &publisher.Request{
			Caption:   assembleCaption(content),
			MediaURLs: post.MediaURLs,
			Account:   account,
		})
		if err != nil {
			slog.Info("dispatch: publish failed", "post_id", post.ID, "platform", content.Platform, "error", err)
			d.markFailed(ctx, content.ID, err.Error())
			result.FailedCount++
			continue
		}

		if err := d.contents.MarkPublished(ctx, content.ID, res.PublishedURL, d.now()); err != nil {
			slog.Error("dispatch: unable to record publish outcome", "content_id", content.ID, "error", err)
		}
		result.SuccessCount++
	}

	// Any successful platform counts the post as published; failures stay
	// visible on the individual content rows.
	finalStatus := models.PostStatusPublished
	if result.SuccessCount == 0 && result.FailedCount > 0 {
		finalStatus = models.PostStatusFailed
	}

	if err := d.posts.UpdateStatus(ctx, finalStatus, post.ID); err != nil {
		slog.Error("dispatch: unable to persist final status", "post_id", post.ID, "status", finalStatus, "error", err)
		result.Error = err.Error()
	}

	return result
}

// forceFailed is best effort: the post already failed for another
// reason, so a status write error here is only logged.
func (d *Dispatcher) forceFailed(ctx context.Context, postID int64) {
	if err := d.posts.UpdateStatus(ctx, models.PostStatusFailed, postID); err != nil {
		slog.Error("dispatch: unable to mark post failed", "post_id", postID, "error", err)
	}
}

func (d *Dispatcher) markFailed(ctx context.Context, contentID int64, msg string) {
	if err := d.contents.MarkFailed(ctx, contentID, msg); err != nil {
		slog.Error("dispatch: unable to record failure", "content_id", contentID, "error", err)
	}
}

func assembleCaption(content *models.PostContent) string {
	if len(content.Hashtags) == 0 {
		return content.Caption
	}
	return content.Caption + " " + strings.Join(content.Hashtags, " ")
}
