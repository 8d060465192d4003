package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/publora/backend/internal/models"
	"github.com/publora/backend/internal/repository"
	"github.com/publora/backend/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostService(t *testing.T) (PostService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	svc := NewPostService(db, repository.NewPostRepository(db), repository.NewPostContentRepository(db))
	return svc, mock, func() { db.Close() }
}

func validCreation() *transfer.PostCreation {
	return &transfer.PostCreation{
		Title:        "Launch day",
		Status:       models.PostStatusScheduled,
		ScheduledFor: "2026-09-01T10:00",
		MediaURLs:    []string{"https://cdn.example.com/a.jpg"},
		Contents: []transfer.ContentCreation{
			{Platform: models.PlatformInstagram, Caption: "We are live", Hashtags: []string{"#launch"}},
			{Platform: models.PlatformFacebook, Caption: "We are live on fb"},
		},
	}
}

func TestCreatePost_Validation(t *testing.T) {
	svc, _, done := newPostService(t)
	defer done()

	tests := []struct {
		name   string
		mutate func(*transfer.PostCreation)
	}{
		{"empty title", func(pc *transfer.PostCreation) { pc.Title = "" }},
		{"no contents", func(pc *transfer.PostCreation) { pc.Contents = nil }},
		{"bad status", func(pc *transfer.PostCreation) { pc.Status = models.PostStatusPublishing }},
		{"scheduled without time", func(pc *transfer.PostCreation) { pc.ScheduledFor = "" }},
		{"bad time format", func(pc *transfer.PostCreation) { pc.ScheduledFor = "tomorrow" }},
		{"unsupported platform", func(pc *transfer.PostCreation) { pc.Contents[0].Platform = "youtube" }},
		{"duplicate platform", func(pc *transfer.PostCreation) { pc.Contents[1].Platform = models.PlatformInstagram }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := validCreation()
			tt.mutate(pc)

			_, err := svc.CreatePost(context.Background(), 7, pc)
			assert.Error(t, err)
		})
	}

	_, err := svc.CreatePost(context.Background(), 7, nil)
	assert.Error(t, err)
}

func TestCreatePost_CreatesPostAndContentsInTx(t *testing.T) {
	svc, mock, done := newPostService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO posts`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectQuery(`INSERT INTO post_contents`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(100)))
	mock.ExpectQuery(`INSERT INTO post_contents`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(101)))
	mock.ExpectCommit()

	postID, err := svc.CreatePost(context.Background(), 7, validCreation())
	require.NoError(t, err)
	assert.Equal(t, int64(42), postID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePost_RollsBackOnContentFailure(t *testing.T) {
	svc, mock, done := newPostService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO posts`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectQuery(`INSERT INTO post_contents`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := svc.CreatePost(context.Background(), 7, validCreation())
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_RejectsPublishing(t *testing.T) {
	svc, _, done := newPostService(t)
	defer done()

	err := svc.UpdateStatus(context.Background(), 7, 1, models.PostStatusPublishing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publishing")
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, done := newPostService(t)
	defer done()

	err := svc.UpdateStatus(context.Background(), 7, 1, "archived")
	assert.Error(t, err)
}
