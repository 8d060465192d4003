package models

import "time"

type Post struct {
	ID           int64      `db:"id" json:"id"`
	UserID       int64      `db:"user_id" json:"user_id"`
	Title        string     `db:"title" json:"title"`
	MediaURLs    []string   `db:"media_urls" json:"media_urls"`
	ScheduledFor *time.Time `db:"scheduled_for" json:"scheduled_for"`
	Status       string     `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`

	Contents []*PostContent `db:"-" json:"contents,omitempty"`
}

// PostContent is the platform-specific half of a post: one row per
// (post, platform) pair carrying the caption, hashtags and the outcome
// of the last publish attempt.
type PostContent struct {
	ID           int64      `db:"id" json:"id"`
	PostID       int64      `db:"post_id" json:"post_id"`
	Platform     string     `db:"platform" json:"platform"`
	Caption      string     `db:"caption" json:"caption"`
	Hashtags     []string   `db:"hashtags" json:"hashtags"`
	PublishedURL *string    `db:"published_url" json:"published_url"`
	PublishedAt  *time.Time `db:"published_at" json:"published_at"`
	ErrorMessage *string    `db:"error_message" json:"error_message"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

const (
	PostStatusDraft      = "draft"
	PostStatusScheduled  = "scheduled"
	PostStatusPublishing = "publishing"
	PostStatusPublished  = "published"
	PostStatusFailed     = "failed"
)

// postTransitions is the allowed status transition table. "publishing"
// is only ever entered from "scheduled", and only the dispatcher does
// that; "failed" can be reset to "scheduled" to retry manually.
var postTransitions = map[string][]string{
	PostStatusDraft:      {PostStatusScheduled},
	PostStatusScheduled:  {PostStatusPublishing, PostStatusDraft},
	PostStatusPublishing: {PostStatusPublished, PostStatusFailed},
	PostStatusPublished:  {},
	PostStatusFailed:     {PostStatusScheduled},
}

func IsValidStatus(status string) bool {
	_, ok := postTransitions[status]
	return ok
}

func CanTransition(from, to string) bool {
	for _, next := range postTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
