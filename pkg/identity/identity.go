// Package identity turns the profile payloads returned by the supported
// OAuth providers into one canonical shape.
package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type Provider string

const (
	Facebook Provider = "facebook"
	GitHub   Provider = "github"
	Google   Provider = "google"
)

// ErrMissingEmail is returned when the provider did not share an email.
// GitHub does this for accounts without a public email.
var ErrMissingEmail = errors.New("profile has no email")

// Identity is the canonical identity, whatever provider it came from.
type Identity struct {
	FirstName string
	LastName  string
	Email     string
}

type facebookProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type githubProfile struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type googleProfile struct {
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email"`
}

// Normalize decodes a raw profile payload of the given provider.
func Normalize(provider Provider, rawProfile []byte) (Identity, error) {
	var id Identity
	switch provider {
	case Facebook:
		var p facebookProfile
		if err := json.Unmarshal(rawProfile, &p); err != nil {
			return id, fmt.Errorf("decode facebook profile: %w", err)
		}
		id = Identity{FirstName: p.FirstName, LastName: p.LastName, Email: p.Email}
	case GitHub:
		var p githubProfile
		if err := json.Unmarshal(rawProfile, &p); err != nil {
			return id, fmt.Errorf("decode github profile: %w", err)
		}
		name := p.Name
		if strings.TrimSpace(name) == "" {
			name = p.Login
		}
		first, last := SplitFullName(name)
		id = Identity{FirstName: first, LastName: last, Email: p.Email}
	case Google:
		var p googleProfile
		if err := json.Unmarshal(rawProfile, &p); err != nil {
			return id, fmt.Errorf("decode google profile: %w", err)
		}
		id = Identity{FirstName: p.GivenName, LastName: p.FamilyName, Email: p.Email}
	default:
		return id, fmt.Errorf("unknown provider %q", provider)
	}

	id.Email = strings.TrimSpace(id.Email)
	if id.Email == "" {
		return id, ErrMissingEmail
	}
	return id, nil
}

// SplitFullName keeps the first and the last whitespace separated token.
// Middle names are dropped.
func SplitFullName(fullName string) (first, last string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], parts[len(parts)-1]
	}
}
