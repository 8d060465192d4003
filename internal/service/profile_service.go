package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/publora/backend/internal/models"
	"github.com/publora/backend/internal/repository"
)

type ProfileService interface {
	GetProfileInfo(ctx context.Context, id int64) (*models.Profile, error)
	RemoveProfile(ctx context.Context, userID int64) error
}

type profileService struct {
	p repository.ProfileRepository
}

func NewProfileService(p repository.ProfileRepository) ProfileService {
	return &profileService{
		p: p,
	}
}

func (s *profileService) GetProfileInfo(ctx context.Context, id int64) (*models.Profile, error) {
	profile, isExist, err := s.p.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("unable to get profile info")
	}

	if !isExist {
		err = errors.New("profile not found")
		slog.Info(err.Error())
		return nil, err
	}

	return profile, nil
}

func (s *profileService) RemoveProfile(ctx context.Context, userID int64) error {
	err := s.p.Remove(ctx, userID)
	if err != nil {
		return err
	}
	return nil
}
