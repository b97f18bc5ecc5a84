package oauth

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/tsuru/beta/pkg/identity"
	"golang.org/x/oauth2"
)

const googleOAuthEndpoint = "https://www.googleapis.com/oauth2/v2"

// Google reads the userinfo of a token obtained by the Google+ sign-in
// button.
type Google struct {
	Endpoint   string
	APIKey     string
	UserIP     string
	HTTPClient *http.Client
}

func NewGoogle(apiKey, userIP string) *Google {
	return &Google{
		Endpoint: googleOAuthEndpoint,
		APIKey:   apiKey,
		UserIP:   userIP,
	}
}

func (g *Google) Identity(ctx context.Context, token, tokenType string) (identity.Identity, error) {
	if token == "" || tokenType == "" {
		return identity.Identity{}, fail(identity.Google, MissingCredential, errors.New("token and token type are required"))
	}
	ctx = withHTTPClient(ctx, g.HTTPClient)

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   tokenType,
	}))
	query := url.Values{}
	query.Set("key", g.APIKey)
	query.Set("userIp", g.UserIP)

	raw, err := fetchProfile(ctx, client, strings.TrimSuffix(g.Endpoint, "/")+"/userinfo?"+query.Encode())
	if err != nil {
		return identity.Identity{}, fail(identity.Google, FetchFailed, err)
	}
	return normalize(identity.Google, raw)
}
