// Package oauth fetches the identity of a user from the third-party
// providers the signup page offers.
package oauth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tsuru/beta/pkg/identity"
	"golang.org/x/oauth2"
)

const maxProfileSize = 1 << 20

type FailureKind int

const (
	// MissingCredential means the request lacked the code or token.
	MissingCredential FailureKind = iota
	// NoToken means the provider did not hand out an access token.
	NoToken
	// FetchFailed means the profile could not be fetched or decoded.
	FetchFailed
	// NoEmail means the profile has no email.
	NoEmail
)

func (k FailureKind) String() string {
	switch k {
	case MissingCredential:
		return "missing credential"
	case NoToken:
		return "no token"
	case FetchFailed:
		return "fetch failed"
	case NoEmail:
		return "no email"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Failure is the error every connector returns.
type Failure struct {
	Provider identity.Provider
	Kind     FailureKind
	Err      error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("%s: %s", f.Provider, f.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", f.Provider, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// FailureOf extracts the Failure from err, if any.
func FailureOf(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func fail(provider identity.Provider, kind FailureKind, err error) error {
	return &Failure{Provider: provider, Kind: kind, Err: err}
}

// withHTTPClient makes oauth2 use client for its own requests.
func withHTTPClient(ctx context.Context, client *http.Client) context.Context {
	if client == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, client)
}

func fetchProfile(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxProfileSize))
}

func normalize(provider identity.Provider, raw []byte) (identity.Identity, error) {
	id, err := identity.Normalize(provider, raw)
	if errors.Is(err, identity.ErrMissingEmail) {
		return id, fail(provider, NoEmail, err)
	}
	if err != nil {
		return id, fail(provider, FetchFailed, err)
	}
	return id, nil
}
