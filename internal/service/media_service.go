package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/h2non/filetype"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/publora/backend/internal/models"
	"github.com/publora/backend/internal/repository"
)

const maxMediaSize = 100 * 1024 * 1024 // 100 MB

type MediaService interface {
	Upload(ctx context.Context, userID int64, file *multipart.FileHeader) (*models.MediaAsset, error)
	List(ctx context.Context, userID int64) ([]*models.MediaAsset, error)
	Remove(ctx context.Context, userID, assetID int64) error
}

type mediaService struct {
	ma      repository.MediaAssetRepository
	storage *StorageService
}

func NewMediaService(ma repository.MediaAssetRepository, storage *StorageService) MediaService {
	return &mediaService{
		ma:      ma,
		storage: storage,
	}
}

func (s *mediaService) Upload(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*models.MediaAsset, error) {
	if fileHeader.Size > maxMediaSize {
		err := errors.New("file is too large")
		slog.Info(err.Error())
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}

	kind, err := filetype.Match(data)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	if !filetype.IsImage(data) && !filetype.IsVideo(data) {
		err = errors.New("only image and video files are supported")
		slog.Info(err.Error())
		return nil, err
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}
	key := fmt.Sprintf("media/%d/%s.%s", userID, id, kind.Extension)

	fileURL, err := s.storage.Upload(ctx, key, data, kind.MIME.Value)
	if err != nil {
		return nil, err
	}

	asset := &models.MediaAsset{
		UserID:   userID,
		FileName: fileHeader.Filename,
		FileType: kind.MIME.Value,
		FileSize: fileHeader.Size,
		FileURL:  fileURL,
	}

	assetID, err := s.ma.Create(ctx, nil, asset)
	if err != nil {
		return nil, err
	}
	asset.ID = assetID

	return asset, nil
}

func (s *mediaService) List(ctx context.Context, userID int64) ([]*models.MediaAsset, error) {
	assets, err := s.ma.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("unable to list media")
	}
	return assets, nil
}

func (s *mediaService) Remove(ctx context.Context, userID, assetID int64) error {
	isOwner, err := s.ma.CheckByUserID(ctx, assetID, userID)
	if err != nil {
		return err
	}
	if !isOwner {
		err = errors.New("media asset doesn't exist")
		slog.Info(err.Error())
		return err
	}

	asset, err := s.ma.GetByID(ctx, assetID)
	if err != nil || asset == nil {
		return fmt.Errorf("unable to get media info")
	}

	if key := objectKeyFromURL(asset.FileURL); key != "" {
		if err := s.storage.Delete(ctx, key); err != nil {
			slog.Info("unable to delete object from storage: " + err.Error())
		}
	}

	return s.ma.Remove(ctx, assetID)
}

func objectKeyFromURL(fileURL string) string {
	u, err := url.Parse(fileURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}
