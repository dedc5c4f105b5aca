package auth

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var searchConsoleScopes = []string{
	"https://www.googleapis.com/auth/webmasters.readonly",
	"https://www.googleapis.com/auth/webmasters",
	"profile",
	"email",
}

// GoogleConnector runs the OAuth code flow that makes this app a Search
// Console client for a user. Token refresh is out of scope; the stored
// access token is handed to callers as-is.
type GoogleConnector struct {
	config *oauth2.Config
}

func NewGoogleConnector() *GoogleConnector {
	return &GoogleConnector{
		config: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URI"),
			Scopes:       searchConsoleScopes,
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthURL builds the consent URL. Forces re-consent so a refresh token
// is always issued.
func (g *GoogleConnector) AuthURL(state string) string {
	return g.config.AuthCodeURL(
		state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

func (g *GoogleConnector) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return g.config.Exchange(ctx, code)
}

// UserInfo resolves the Google account id and email behind a token.
func (g *GoogleConnector) UserInfo(ctx context.Context, token *oauth2.Token) (string, string, error) {
	client := g.config.Client(ctx, token)

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	var info struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", "", err
	}
	if info.ID == "" {
		return "", "", errors.New("empty google userinfo response")
	}
	return info.ID, info.Email, nil
}
