package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/lib/pq"
	"github.com/publora/backend/internal/models"
)

type SettingsRepository interface {
	Create(ctx context.Context, settings *models.Settings) (int64, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Settings, bool, error)
	UpdateSettings(ctx context.Context, s *models.Settings, userID int64) error
}

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Create(ctx context.Context, settings *models.Settings) (int64, error) {
	query := `
		INSERT INTO settings (user_id, timezone, default_hashtags, auto_optimize)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, settings.UserID, settings.Timezone, pq.Array(settings.DefaultHashtags), settings.AutoOptimize).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *settingsRepository) GetByUserID(ctx context.Context, userID int64) (*models.Settings, bool, error) {
	query := `SELECT id, user_id, timezone, default_hashtags, auto_optimize, created_at, updated_at FROM settings WHERE user_id = $1`
	row := r.db.QueryRowContext(ctx, query, userID)

	var settings models.Settings
	err := row.Scan(&settings.ID, &settings.UserID, &settings.Timezone, pq.Array(&settings.DefaultHashtags), &settings.AutoOptimize, &settings.CreatedAt, &settings.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	return &settings, true, nil
}

func (r *settingsRepository) UpdateSettings(ctx context.Context, s *models.Settings, userID int64) error {
	query := `
		UPDATE settings
		SET timezone = $1,
			default_hashtags = $2,
			auto_optimize = $3,
			updated_at = $4
		WHERE user_id = $5
	`
	_, err := r.db.ExecContext(ctx, query, s.Timezone, pq.Array(s.DefaultHashtags), s.AutoOptimize, time.Now(), userID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}
