package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/publora/backend/internal/models"
	"github.com/publora/backend/internal/repository"
)

type SettingsService interface {
	GetSettingsInfo(ctx context.Context, userID int64) (*models.Settings, error)
	UpdateSettings(ctx context.Context, userID int64, timezone string, defaultHashtags []string, autoOptimize bool) error
}

type settingsService struct {
	sr repository.SettingsRepository
}

func NewSettingsService(sr repository.SettingsRepository) SettingsService {
	return &settingsService{
		sr: sr,
	}
}

func (s *settingsService) GetSettingsInfo(ctx context.Context, userID int64) (*models.Settings, error) {
	settings, isExist, err := s.sr.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !isExist {
		err = errors.New("settings for given user don't exist")
		slog.Info(err.Error())
		return nil, err
	}

	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, userID int64, timezone string, defaultHashtags []string, autoOptimize bool) error {
	if _, err := time.LoadLocation(timezone); err != nil {
		slog.Info(err.Error())
		return errors.New("invalid timezone")
	}

	settings := models.Settings{
		Timezone:        timezone,
		DefaultHashtags: defaultHashtags,
		AutoOptimize:    autoOptimize,
	}

	_, isExist, err := s.sr.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if !isExist {
		settings.UserID = userID
		_, err = s.sr.Create(ctx, &settings)
		return err
	}

	return s.sr.UpdateSettings(ctx, &settings, userID)
}
