package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/lib/pq"
	"github.com/publora/backend/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, tx *sql.Tx, post *models.Post) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetByUserID(ctx context.Context, userID int64) ([]*models.Post, error)
	ListDue(ctx context.Context, now time.Time, limit int) ([]*models.Post, error)
	UpdateStatus(ctx context.Context, status string, postID int64) error
	CheckByUserID(ctx context.Context, postID, userID int64) (bool, error)
	Remove(ctx context.Context, id int64) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, tx *sql.Tx, post *models.Post) (int64, error) {
	query := `
		INSERT INTO posts (user_id, title, media_urls, scheduled_for, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	var err error

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, post.UserID, post.Title, pq.Array(post.MediaURLs), post.ScheduledFor, post.Status).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, post.UserID, post.Title, pq.Array(post.MediaURLs), post.ScheduledFor, post.Status).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `SELECT id, user_id, title, media_urls, scheduled_for, status, created_at, updated_at FROM posts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var post models.Post
	err := row.Scan(&post.ID, &post.UserID, &post.Title, pq.Array(&post.MediaURLs), &post.ScheduledFor, &post.Status, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.Post, error) {
	query := `SELECT id, user_id, title, media_urls, scheduled_for, status, created_at, updated_at FROM posts WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(&post.ID, &post.UserID, &post.Title, pq.Array(&post.MediaURLs), &post.ScheduledFor, &post.Status, &post.CreatedAt, &post.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

// ListDue returns posts still in "scheduled" whose scheduled_for is at or
// before now, oldest first, capped at limit, with their content rows
// attached. Posts already moved past "scheduled" are excluded by the
// predicate, so a post is picked up at most once.
func (r *postRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*models.Post, error) {
	query := `
		SELECT id, user_id, title, media_urls, scheduled_for, status, created_at, updated_at
		FROM posts
		WHERE status = $1 AND scheduled_for <= $2
		ORDER BY scheduled_for ASC, id ASC
		LIMIT $3
	`

	rows, err := r.db.QueryContext(ctx, query, models.PostStatusScheduled, now, limit)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	byID := make(map[int64]*models.Post)
	for rows.Next() {
		var post models.Post
		err := rows.Scan(&post.ID, &post.UserID, &post.Title, pq.Array(&post.MediaURLs), &post.ScheduledFor, &post.Status, &post.CreatedAt, &post.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, &post)
		byID[post.ID] = &post
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	if len(posts) == 0 {
		return posts, nil
	}

	ids := make([]int64, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}

	contentQuery := `
		SELECT id, post_id, platform, caption, hashtags, published_url, published_at, error_message, created_at, updated_at
		FROM post_contents
		WHERE post_id = ANY($1)
		ORDER BY post_id ASC, platform ASC
	`

	contentRows, err := r.db.QueryContext(ctx, contentQuery, pq.Array(ids))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer contentRows.Close()

	for contentRows.Next() {
		var pc models.PostContent
		err := contentRows.Scan(&pc.ID, &pc.PostID, &pc.Platform, &pc.Caption, pq.Array(&pc.Hashtags), &pc.PublishedURL, &pc.PublishedAt, &pc.ErrorMessage, &pc.CreatedAt, &pc.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		if post, ok := byID[pc.PostID]; ok {
			post.Contents = append(post.Contents, &pc)
		}
	}
	return posts, contentRows.Err()
}

func (r *postRepository) UpdateStatus(ctx context.Context, status string, postID int64) error {
	query := `
		UPDATE posts
		SET status = $1,
			updated_at = $2
		WHERE id = $3
	`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), postID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) CheckByUserID(ctx context.Context, postID, userID int64) (bool, error) {
	query := "SELECT 1 FROM posts WHERE id = $1 AND user_id = $2"

	var result int
	err := r.db.QueryRowContext(ctx, query, postID, userID).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}

	return result == 1, nil
}

func (r *postRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)

	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
