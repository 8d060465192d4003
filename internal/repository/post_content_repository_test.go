package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentMock(t *testing.T) (sqlmock.Sqlmock, PostContentRepository, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	repo := NewPostContentRepository(db)
	return mock, repo, func() { db.Close() }
}

func TestMarkPublished_ClearsErrorMessage(t *testing.T) {
	mock, repo, done := newContentMock(t)
	defer done()

	publishedAt := time.Now()
	mock.ExpectExec(`UPDATE post_contents\s+SET published_url = \$1,\s+published_at = \$2,\s+error_message = NULL`).
		WithArgs("https://instagram.com/p/abc", publishedAt, sqlmock.AnyArg(), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkPublished(context.Background(), 10, "https://instagram.com/p/abc", publishedAt)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkFailed_LeavesPublishFieldsAlone(t *testing.T) {
	mock, repo, done := newContentMock(t)
	defer done()

	mock.ExpectExec(`UPDATE post_contents\s+SET error_message = \$1,\s+updated_at = \$2`).
		WithArgs("account not connected", sqlmock.AnyArg(), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkFailed(context.Background(), 10, "account not connected")
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
