package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	config "github.com/publora/backend/configs"
	"github.com/publora/backend/internal/models"
	"github.com/publora/backend/internal/repository"
	"github.com/publora/backend/internal/transfer"
	"github.com/publora/backend/pkg/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
)

const (
	tiktokAuthURL    = "https://www.tiktok.com/v2/auth/authorize"
	instagramAuthURL = "https://www.instagram.com/oauth/authorize"
	pinterestAuthURL = "https://www.pinterest.com/oauth"
)

type AccountService interface {
	GetAuthURL(ctx context.Context, platform, state string) string
	Connect(ctx context.Context, userID int64, ac *transfer.AccountConnection) (int64, error)
	List(ctx context.Context, userID int64) ([]*models.SocialAccount, error)
	SetActive(ctx context.Context, userID, accountID int64, active bool) error
	Delete(ctx context.Context, userID, accountID int64) error
}

type accountService struct {
	cfg config.Config
	sa  repository.SocialAccountRepository
}

func NewAccountService(cfg config.Config, sa repository.SocialAccountRepository) AccountService {
	return &accountService{
		cfg: cfg,
		sa:  sa,
	}
}

// GetAuthURL builds the authorize URL the UI redirects the user to.
// Token exchange on the callback is handled by the (separate) OAuth
// integration; until it is configured the accounts stay disconnected.
func (s *accountService) GetAuthURL(ctx context.Context, platform, state string) string {
	switch platform {
	case models.PlatformInstagram:
		params := url.Values{}
		params.Add("client_id", s.cfg.InstagramClientID)
		params.Add("scope", "instagram_business_basic,instagram_business_content_publish")
		params.Add("response_type", "code")
		params.Add("redirect_uri", s.cfg.InstagramRedirectURI)
		params.Add("state", state)

		return fmt.Sprintf("%s?%s", instagramAuthURL, params.Encode())

	case models.PlatformFacebook:
		conf := &oauth2.Config{
			ClientID:     s.cfg.FacebookClientID,
			ClientSecret: s.cfg.FacebookClientSecret,
			RedirectURL:  s.cfg.FacebookRedirectURI,
			Scopes:       []string{"pages_manage_posts", "pages_read_engagement"},
			Endpoint:     facebook.Endpoint,
		}
		return conf.AuthCodeURL(state)

	case models.PlatformTiktok:
		params := url.Values{}
		params.Add("client_key", s.cfg.TiktokClientKey)
		params.Add("scope", "user.info.basic,video.publish,video.upload")
		params.Add("response_type", "code")
		params.Add("redirect_uri", s.cfg.TiktokRedirectURI)
		params.Add("state", state)

		return fmt.Sprintf("%s?%s", tiktokAuthURL, params.Encode())

	case models.PlatformPinterest:
		params := url.Values{}
		params.Add("client_id", s.cfg.PinterestClientID)
		params.Add("scope", "boards:read,pins:read,pins:write")
		params.Add("response_type", "code")
		params.Add("redirect_uri", s.cfg.PinterestRedirectURI)
		params.Add("state", state)

		return fmt.Sprintf("%s?%s", pinterestAuthURL, params.Encode())

	default:
		return ""
	}
}

// Connect stores a connected social account. Tokens are encrypted at
// rest with the service secret, the same way the publish side expects
// to read them back.
func (s *accountService) Connect(ctx context.Context, userID int64, ac *transfer.AccountConnection) (int64, error) {
	if ac == nil {
		err := errors.New("account connection data is nil")
		slog.Info(err.Error())
		return 0, err
	}
	if !models.IsSupportedPlatform(ac.Platform) {
		err := fmt.Errorf("unsupported platform: %s", ac.Platform)
		slog.Info(err.Error())
		return 0, err
	}
	if ac.AccessToken == "" {
		err := errors.New("access token cannot be empty")
		slog.Info(err.Error())
		return 0, err
	}

	encryptedAccessToken, err := utils.Encrypt([]byte(ac.AccessToken), []byte(s.cfg.SecretKey))
	if err != nil {
		return 0, err
	}

	encryptedRefreshToken := encryptedAccessToken
	if ac.RefreshToken != "" {
		encryptedRefreshToken, err = utils.Encrypt([]byte(ac.RefreshToken), []byte(s.cfg.SecretKey))
		if err != nil {
			return 0, err
		}
	}

	account := &models.SocialAccount{
		UserID:          userID,
		Platform:        ac.Platform,
		AccountID:       ac.AccountID,
		AccountName:     ac.AccountName,
		AccountUsername: ac.AccountUsername,
		ProfilePicture:  ac.ProfilePicture,
		AccessToken:     encryptedAccessToken,
		RefreshToken:    encryptedRefreshToken,
		TokenExpiresAt:  ac.TokenExpiresAt,
		IsActive:        true,
	}

	return s.sa.Create(ctx, nil, account)
}

func (s *accountService) List(ctx context.Context, userID int64) ([]*models.SocialAccount, error) {
	if userID == 0 {
		err := errors.New("userID is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	accounts, err := s.sa.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("unable to list social accounts")
	}

	return accounts, nil
}

func (s *accountService) SetActive(ctx context.Context, userID, accountID int64, active bool) error {
	isValid, err := s.sa.CheckByUserID(ctx, accountID, userID)
	if err != nil {
		return err
	}
	if !isValid {
		err = errors.New("social account doesn't exist")
		slog.Info(err.Error())
		return err
	}

	return s.sa.SetActive(ctx, accountID, active)
}

func (s *accountService) Delete(ctx context.Context, userID, accountID int64) error {
	if accountID == 0 {
		err := errors.New("accountID is not valid")
		slog.Info(err.Error())
		return err
	}

	isValid, err := s.sa.CheckByUserID(ctx, accountID, userID)
	if err != nil {
		return err
	}
	if !isValid {
		err = errors.New("social account doesn't exist")
		slog.Info(err.Error())
		return err
	}

	err = s.sa.Remove(ctx, accountID)
	if err != nil {
		return fmt.Errorf("unable to remove account")
	}

	return nil
}
