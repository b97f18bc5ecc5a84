package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tsuru/beta/pkg/identity"
)

type fakeGitHub struct {
	token   string
	profile map[string]any
	status  int

	gotClientID string
	gotSecret   string
	gotCode     string
	gotAuth     string
}

func (f *fakeGitHub) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		f.gotClientID = r.PostForm.Get("client_id")
		f.gotSecret = r.PostForm.Get("client_secret")
		f.gotCode = r.PostForm.Get("code")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"access_token": f.token, "token_type": "bearer"})
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		f.gotAuth = r.Header.Get("Authorization")
		if f.status != 0 {
			w.WriteHeader(f.status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(f.profile)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestGitHub(srv *httptest.Server) *GitHub {
	gh := NewGitHub("client-id", "client-secret")
	gh.TokenURL = srv.URL + "/login/oauth/access_token"
	gh.APIURL = srv.URL
	return gh
}

func assertFailure(t *testing.T, err error, provider identity.Provider, kind FailureKind) {
	t.Helper()
	f, ok := FailureOf(err)
	if !ok {
		t.Fatalf("expected a *Failure, got %v", err)
	}
	if f.Provider != provider || f.Kind != kind {
		t.Errorf("failure = (%s, %s), want (%s, %s)", f.Provider, f.Kind, provider, kind)
	}
}

func TestGitHubIdentity(t *testing.T) {
	fake := &fakeGitHub{
		token:   "gh-token",
		profile: map[string]any{"login": "ada", "name": "Ada Lovelace", "email": "ada@example.com"},
	}
	gh := newTestGitHub(fake.server(t))

	id, err := gh.Identity(context.Background(), "the-code")
	if err != nil {
		t.Fatalf("Identity() error: %v", err)
	}
	want := identity.Identity{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	if id != want {
		t.Errorf("Identity() = %+v, want %+v", id, want)
	}
	if fake.gotClientID != "client-id" || fake.gotSecret != "client-secret" || fake.gotCode != "the-code" {
		t.Errorf("exchange got (%q, %q, %q)", fake.gotClientID, fake.gotSecret, fake.gotCode)
	}
	if fake.gotAuth != "Bearer gh-token" {
		t.Errorf("profile Authorization = %q", fake.gotAuth)
	}
}

func TestGitHubFailures(t *testing.T) {
	t.Run("missing code", func(t *testing.T) {
		gh := NewGitHub("client-id", "client-secret")
		_, err := gh.Identity(context.Background(), "")
		assertFailure(t, err, identity.GitHub, MissingCredential)
	})

	t.Run("no token", func(t *testing.T) {
		fake := &fakeGitHub{token: ""}
		gh := newTestGitHub(fake.server(t))
		_, err := gh.Identity(context.Background(), "the-code")
		assertFailure(t, err, identity.GitHub, NoToken)
	})

	t.Run("profile fetch fails", func(t *testing.T) {
		fake := &fakeGitHub{token: "gh-token", status: http.StatusUnauthorized}
		gh := newTestGitHub(fake.server(t))
		_, err := gh.Identity(context.Background(), "the-code")
		assertFailure(t, err, identity.GitHub, FetchFailed)
	})

	t.Run("no public email", func(t *testing.T) {
		fake := &fakeGitHub{
			token:   "gh-token",
			profile: map[string]any{"login": "ada", "name": "Ada Lovelace", "email": nil},
		}
		gh := newTestGitHub(fake.server(t))
		_, err := gh.Identity(context.Background(), "the-code")
		assertFailure(t, err, identity.GitHub, NoEmail)
	})
}

func TestFacebookIdentity(t *testing.T) {
	var gotAuth, gotFields string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me" {
			http.NotFound(w, r)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		gotFields = r.URL.Query().Get("fields")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"first_name": "Ada", "last_name": "Lovelace", "email": "ada@example.com"}`))
	}))
	defer srv.Close()

	fb := NewFacebook()
	fb.GraphURL = srv.URL

	id, err := fb.Identity(context.Background(), "fb-token")
	if err != nil {
		t.Fatalf("Identity() error: %v", err)
	}
	if id.FirstName != "Ada" || id.LastName != "Lovelace" || id.Email != "ada@example.com" {
		t.Errorf("Identity() = %+v", id)
	}
	if gotAuth != "Bearer fb-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotFields != "first_name,last_name,email" {
		t.Errorf("fields = %q", gotFields)
	}
}

func TestFacebookFailures(t *testing.T) {
	fb := NewFacebook()
	_, err := fb.Identity(context.Background(), "")
	assertFailure(t, err, identity.Facebook, MissingCredential)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "Invalid OAuth access token."}}`))
	}))
	defer srv.Close()
	fb.GraphURL = srv.URL

	_, err = fb.Identity(context.Background(), "expired")
	assertFailure(t, err, identity.Facebook, FetchFailed)
}

func TestGoogleIdentity(t *testing.T) {
	var gotAuth, gotKey, gotIP string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/userinfo" {
			http.NotFound(w, r)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.URL.Query().Get("key")
		gotIP = r.URL.Query().Get("userIp")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"given_name": "Ada", "family_name": "Lovelace", "email": "ada@example.com"}`))
	}))
	defer srv.Close()

	g := NewGoogle("api-key", "10.0.0.1")
	g.Endpoint = srv.URL

	id, err := g.Identity(context.Background(), "g-token", "Bearer")
	if err != nil {
		t.Fatalf("Identity() error: %v", err)
	}
	if id.FirstName != "Ada" || id.LastName != "Lovelace" || id.Email != "ada@example.com" {
		t.Errorf("Identity() = %+v", id)
	}
	if gotAuth != "Bearer g-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotKey != "api-key" || gotIP != "10.0.0.1" {
		t.Errorf("query = (%q, %q)", gotKey, gotIP)
	}
}

func TestGoogleMissingToken(t *testing.T) {
	g := NewGoogle("api-key", "")
	for _, tc := range []struct{ token, tokenType string }{
		{"", "Bearer"},
		{"g-token", ""},
	} {
		_, err := g.Identity(context.Background(), tc.token, tc.tokenType)
		assertFailure(t, err, identity.Google, MissingCredential)
	}
}
