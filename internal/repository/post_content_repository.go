package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/lib/pq"
	"github.com/publora/backend/internal/models"
)

type PostContentRepository interface {
	Create(ctx context.Context, tx *sql.Tx, pc *models.PostContent) (int64, error)
	ListByPostID(ctx context.Context, postID int64) ([]*models.PostContent, error)
	MarkPublished(ctx context.Context, contentID int64, publishedURL string, publishedAt time.Time) error
	MarkFailed(ctx context.Context, contentID int64, errorMessage string) error
}

type postContentRepository struct {
	db *sql.DB
}

func NewPostContentRepository(db *sql.DB) PostContentRepository {
	return &postContentRepository{db: db}
}

func (r *postContentRepository) Create(ctx context.Context, tx *sql.Tx, pc *models.PostContent) (int64, error) {
	query := `
		INSERT INTO post_contents (post_id, platform, caption, hashtags)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	var err error

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, pc.PostID, pc.Platform, pc.Caption, pq.Array(pc.Hashtags)).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, pc.PostID, pc.Platform, pc.Caption, pq.Array(pc.Hashtags)).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *postContentRepository) ListByPostID(ctx context.Context, postID int64) ([]*models.PostContent, error) {
	query := `
		SELECT id, post_id, platform, caption, hashtags, published_url, published_at, error_message, created_at, updated_at
		FROM post_contents
		WHERE post_id = $1
		ORDER BY platform ASC
	`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var contents []*models.PostContent
	for rows.Next() {
		var pc models.PostContent
		err := rows.Scan(&pc.ID, &pc.PostID, &pc.Platform, &pc.Caption, pq.Array(&pc.Hashtags), &pc.PublishedURL, &pc.PublishedAt, &pc.ErrorMessage, &pc.CreatedAt, &pc.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		contents = append(contents, &pc)
	}
	return contents, rows.Err()
}

// MarkPublished records a successful publish attempt. The error message
// from any earlier attempt is cleared; success and failure fields are
// never set together for the same attempt.
func (r *postContentRepository) MarkPublished(ctx context.Context, contentID int64, publishedURL string, publishedAt time.Time) error {
	query := `
		UPDATE post_contents
		SET published_url = $1,
			published_at = $2,
			error_message = NULL,
			updated_at = $3
		WHERE id = $4
	`
	_, err := r.db.ExecContext(ctx, query, publishedURL, publishedAt, time.Now(), contentID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

// MarkFailed records a failed publish attempt, leaving any published_url
// and published_at from earlier attempts untouched.
func (r *postContentRepository) MarkFailed(ctx context.Context, contentID int64, errorMessage string) error {
	query := `
		UPDATE post_contents
		SET error_message = $1,
			updated_at = $2
		WHERE id = $3
	`
	_, err := r.db.ExecContext(ctx, query, errorMessage, time.Now(), contentID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
