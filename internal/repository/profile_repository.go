package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/publora/backend/internal/models"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Profile, bool, error)
	Remove(ctx context.Context, id int64) error
}

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id int64) (*models.Profile, bool, error) {
	query := `SELECT id, email, name, avatar_url, created_at, updated_at FROM profiles WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var profile models.Profile
	err := row.Scan(&profile.ID, &profile.Email, &profile.Name, &profile.AvatarURL, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	return &profile, true, nil
}

func (r *profileRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM profiles WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
