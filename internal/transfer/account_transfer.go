package transfer

import "time"

// AccountConnection is posted by the OAuth callback flow once it has
// exchanged a code for tokens.
type AccountConnection struct {
	Platform        string    `json:"platform"`
	AccountID       string    `json:"account_id"`
	AccountName     string    `json:"account_name"`
	AccountUsername string    `json:"account_username"`
	ProfilePicture  string    `json:"profile_picture"`
	AccessToken     string    `json:"access_token"`
	RefreshToken    string    `json:"refresh_token"`
	TokenExpiresAt  time.Time `json:"token_expires_at"`
}
