package oauth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tsuru/beta/pkg/identity"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const githubAPIURL = "https://api.github.com"

// GitHub exchanges an authorization code for a token and reads the
// user's public profile with it.
type GitHub struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	APIURL       string
	HTTPClient   *http.Client
}

func NewGitHub(clientID, clientSecret string) *GitHub {
	return &GitHub{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     github.Endpoint.TokenURL,
		APIURL:       githubAPIURL,
	}
}

func (g *GitHub) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     g.ClientID,
		ClientSecret: g.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:   github.Endpoint.AuthURL,
			TokenURL:  g.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

func (g *GitHub) Identity(ctx context.Context, code string) (identity.Identity, error) {
	if strings.TrimSpace(code) == "" {
		return identity.Identity{}, fail(identity.GitHub, MissingCredential, errors.New("no code"))
	}
	ctx = withHTTPClient(ctx, g.HTTPClient)

	conf := g.oauthConfig()
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return identity.Identity{}, fail(identity.GitHub, NoToken, err)
	}

	raw, err := fetchProfile(ctx, conf.Client(ctx, token), strings.TrimSuffix(g.APIURL, "/")+"/user")
	if err != nil {
		return identity.Identity{}, fail(identity.GitHub, FetchFailed, err)
	}
	return normalize(identity.GitHub, raw)
}
