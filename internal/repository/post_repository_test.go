package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/publora/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (sqlmock.Sqlmock, PostRepository, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	repo := NewPostRepository(db)
	return mock, repo, func() { db.Close() }
}

func postColumns() []string {
	return []string{"id", "user_id", "title", "media_urls", "scheduled_for", "status", "created_at", "updated_at"}
}

func contentColumns() []string {
	return []string{"id", "post_id", "platform", "caption", "hashtags", "published_url", "published_at", "error_message", "created_at", "updated_at"}
}

func TestListDue_AttachesContentRows(t *testing.T) {
	mock, repo, done := newMock(t)
	defer done()

	now := time.Now()
	due := now.Add(-10 * time.Minute)

	mock.ExpectQuery(`FROM posts\s+WHERE status = \$1 AND scheduled_for <= \$2`).
		WithArgs(models.PostStatusScheduled, now, 10).
		WillReturnRows(sqlmock.NewRows(postColumns()).
			AddRow(int64(1), int64(7), "first", []byte(`{https://cdn.example.com/a.jpg}`), due, models.PostStatusScheduled, now, now).
			AddRow(int64(2), int64(7), "second", []byte(`{}`), due, models.PostStatusScheduled, now, now))

	mock.ExpectQuery(`FROM post_contents\s+WHERE post_id = ANY`).
		WillReturnRows(sqlmock.NewRows(contentColumns()).
			AddRow(int64(10), int64(1), "instagram", "cap a", []byte(`{#one,#two}`), nil, nil, nil, now, now).
			AddRow(int64(11), int64(1), "facebook", "cap b", []byte(`{}`), nil, nil, nil, now, now).
			AddRow(int64(20), int64(2), "tiktok", "cap c", []byte(`{}`), nil, nil, nil, now, now))

	posts, err := repo.ListDue(context.Background(), now, 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, posts[0].MediaURLs)
	require.Len(t, posts[0].Contents, 2)
	assert.Equal(t, "instagram", posts[0].Contents[0].Platform)
	assert.Equal(t, []string{"#one", "#two"}, posts[0].Contents[0].Hashtags)
	assert.Nil(t, posts[0].Contents[0].PublishedURL)
	assert.Nil(t, posts[0].Contents[0].ErrorMessage)

	require.Len(t, posts[1].Contents, 1)
	assert.Equal(t, "tiktok", posts[1].Contents[0].Platform)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDue_NoMatchesSkipsContentQuery(t *testing.T) {
	mock, repo, done := newMock(t)
	defer done()

	now := time.Now()
	mock.ExpectQuery(`FROM posts\s+WHERE status = \$1 AND scheduled_for <= \$2`).
		WithArgs(models.PostStatusScheduled, now, 10).
		WillReturnRows(sqlmock.NewRows(postColumns()))

	posts, err := repo.ListDue(context.Background(), now, 10)
	require.NoError(t, err)
	assert.Empty(t, posts)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	mock, repo, done := newMock(t)
	defer done()

	mock.ExpectExec(`UPDATE posts\s+SET status = \$1`).
		WithArgs(models.PostStatusPublishing, sqlmock.AnyArg(), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), models.PostStatusPublishing, 4)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
