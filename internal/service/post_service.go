package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/publora/backend/internal/models"
	"github.com/publora/backend/internal/repository"
	"github.com/publora/backend/internal/transfer"
)

const scheduledTimeLayout = "2006-01-02T15:04"

type PostService interface {
	CreatePost(ctx context.Context, userID int64, pc *transfer.PostCreation) (int64, error)
	List(ctx context.Context, userID int64) ([]*models.Post, error)
	PostInfo(ctx context.Context, postID, userID int64) (*models.Post, error)
	UpdateStatus(ctx context.Context, userID, postID int64, status string) error
	Remove(ctx context.Context, userID, postID int64) error
}

type postService struct {
	db *sql.DB
	pr repository.PostRepository
	pc repository.PostContentRepository
}

func NewPostService(db *sql.DB, pr repository.PostRepository, pc repository.PostContentRepository) PostService {
	return &postService{
		db: db,
		pr: pr,
		pc: pc,
	}
}

func (s *postService) CreatePost(ctx context.Context, userID int64, pc *transfer.PostCreation) (int64, error) {
	if pc == nil {
		err := errors.New("post creation data is nil")
		slog.Error(err.Error())
		return 0, err
	}
	if pc.Title == "" {
		err := errors.New("title cannot be empty")
		slog.Info(err.Error())
		return 0, err
	}
	if len(pc.Contents) == 0 {
		err := errors.New("at least one platform is required")
		slog.Info(err.Error())
		return 0, err
	}

	status := pc.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	if status != models.PostStatusDraft && status != models.PostStatusScheduled {
		err := fmt.Errorf("posts can only be created as draft or scheduled, got %q", status)
		slog.Info(err.Error())
		return 0, err
	}

	var scheduledFor *time.Time
	if pc.ScheduledFor != "" {
		parsed, err := time.Parse(scheduledTimeLayout, pc.ScheduledFor)
		if err != nil {
			err = fmt.Errorf("invalid scheduled time format: %w", err)
			slog.Error(err.Error())
			return 0, err
		}
		scheduledFor = &parsed
	}

	// A scheduled post without a time would never be picked up.
	if status == models.PostStatusScheduled && scheduledFor == nil {
		err := errors.New("scheduled posts require a scheduled time")
		slog.Info(err.Error())
		return 0, err
	}

	seen := make(map[string]bool, len(pc.Contents))
	for _, content := range pc.Contents {
		if !models.IsSupportedPlatform(content.Platform) {
			err := fmt.Errorf("unsupported platform: %s", content.Platform)
			slog.Info(err.Error())
			return 0, err
		}
		if seen[content.Platform] {
			err := fmt.Errorf("duplicate content for platform: %s", content.Platform)
			slog.Info(err.Error())
			return 0, err
		}
		seen[content.Platform] = true
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Error(err.Error())
		return 0, err
	}
	defer tx.Rollback()

	post := &models.Post{
		UserID:       userID,
		Title:        pc.Title,
		MediaURLs:    pc.MediaURLs,
		ScheduledFor: scheduledFor,
		Status:       status,
	}

	postID, err := s.pr.Create(ctx, tx, post)
	if err != nil {
		return 0, err
	}

	for _, content := range pc.Contents {
		_, err := s.pc.Create(ctx, tx, &models.PostContent{
			PostID:   postID,
			Platform: content.Platform,
			Caption:  content.Caption,
			Hashtags: content.Hashtags,
		})
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error(err.Error())
		return 0, err
	}

	return postID, nil
}

func (s *postService) List(ctx context.Context, userID int64) ([]*models.Post, error) {
	posts, err := s.pr.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("unable to list posts")
	}
	return posts, nil
}

func (s *postService) PostInfo(ctx context.Context, postID, userID int64) (*models.Post, error) {
	isOwner, err := s.pr.CheckByUserID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if !isOwner {
		err = errors.New("post doesn't exist")
		slog.Info(err.Error())
		return nil, err
	}

	post, err := s.pr.GetByID(ctx, postID)
	if err != nil || post == nil {
		return nil, fmt.Errorf("unable to get post info")
	}

	contents, err := s.pc.ListByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("unable to get post contents")
	}
	post.Contents = contents

	return post, nil
}

// UpdateStatus applies a user-requested status change, validated
// against the transition table. "publishing" is never accepted here:
// only the dispatcher moves posts through it.
func (s *postService) UpdateStatus(ctx context.Context, userID, postID int64, status string) error {
	if !models.IsValidStatus(status) {
		err := fmt.Errorf("unknown status: %q", status)
		slog.Info(err.Error())
		return err
	}
	if status == models.PostStatusPublishing {
		err := errors.New("status publishing cannot be set directly")
		slog.Info(err.Error())
		return err
	}

	isOwner, err := s.pr.CheckByUserID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if !isOwner {
		err = errors.New("post doesn't exist")
		slog.Info(err.Error())
		return err
	}

	post, err := s.pr.GetByID(ctx, postID)
	if err != nil || post == nil {
		return fmt.Errorf("unable to get post info")
	}

	if !models.CanTransition(post.Status, status) {
		err = fmt.Errorf("cannot move post from %q to %q", post.Status, status)
		slog.Info(err.Error())
		return err
	}

	if status == models.PostStatusScheduled && post.ScheduledFor == nil {
		err = errors.New("scheduled posts require a scheduled time")
		slog.Info(err.Error())
		return err
	}

	return s.pr.UpdateStatus(ctx, status, postID)
}

func (s *postService) Remove(ctx context.Context, userID, postID int64) error {
	isOwner, err := s.pr.CheckByUserID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if !isOwner {
		err = errors.New("post doesn't exist")
		slog.Info(err.Error())
		return err
	}

	return s.pr.Remove(ctx, postID)
}
