package handlers

import (
	"context"

	"github.com/tsuru/beta/pkg/countries"
	"github.com/tsuru/beta/pkg/db"
	"github.com/tsuru/beta/pkg/identity"
	"github.com/tsuru/beta/pkg/registration"
	"github.com/tsuru/beta/pkg/signing"
	"github.com/tsuru/beta/pkg/types"
)

// TokenConnector resolves a single credential, a GitHub code or a
// Facebook access token, into an identity.
type TokenConnector interface {
	Identity(ctx context.Context, credential string) (identity.Identity, error)
}

type GoogleConnector interface {
	Identity(ctx context.Context, token, tokenType string) (identity.Identity, error)
}

type Connectors struct {
	GitHub   TokenConnector
	Facebook TokenConnector
	Google   GoogleConnector
}

type HttpEndpoints struct {
	dbPool       db.Pool
	signer       *signing.Signer
	registration *registration.Service
	connectors   Connectors
	countries    *countries.List
	oauthConfig  types.OAuthConfig
}

func NewHTTPHandler(
	dbPool db.Pool,
	signer *signing.Signer,
	connectors Connectors,
	countryList *countries.List,
	oauthConfig types.OAuthConfig,
) *HttpEndpoints {
	return &HttpEndpoints{
		dbPool:       dbPool,
		signer:       signer,
		registration: registration.NewService(signer),
		connectors:   connectors,
		countries:    countryList,
		oauthConfig:  oauthConfig,
	}
}
