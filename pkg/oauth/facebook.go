package oauth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tsuru/beta/pkg/identity"
	"golang.org/x/oauth2"
)

const facebookGraphURL = "https://graph.facebook.com"

// Facebook reads the profile with a token the JS SDK already obtained.
type Facebook struct {
	GraphURL   string
	HTTPClient *http.Client
}

func NewFacebook() *Facebook {
	return &Facebook{GraphURL: facebookGraphURL}
}

func (f *Facebook) Identity(ctx context.Context, accessToken string) (identity.Identity, error) {
	if strings.TrimSpace(accessToken) == "" {
		return identity.Identity{}, fail(identity.Facebook, MissingCredential, errors.New("no access token"))
	}
	ctx = withHTTPClient(ctx, f.HTTPClient)

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	raw, err := fetchProfile(ctx, client, strings.TrimSuffix(f.GraphURL, "/")+"/me?fields=first_name,last_name,email")
	if err != nil {
		return identity.Identity{}, fail(identity.Facebook, FetchFailed, err)
	}
	return normalize(identity.Facebook, raw)
}
