package registration

import (
	"context"
	"errors"
	"testing"

	"github.com/tsuru/beta/pkg/db/dbtest"
	"github.com/tsuru/beta/pkg/signing"
	"github.com/tsuru/beta/pkg/types"
)

func acquire(t *testing.T, pool *dbtest.MemoryPool) UserStore {
	t.Helper()
	store, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	t.Cleanup(store.Release)
	return store
}

func TestRegisterNewUser(t *testing.T) {
	signer := signing.NewSigner("sign-key")
	service := NewService(signer)
	pool := dbtest.NewMemoryPool()

	res, err := service.Register(context.Background(), acquire(t, pool), "A", "B", "a@b.com", "")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if res.Status != Registered {
		t.Fatalf("Status = %v, want Registered", res.Status)
	}
	if res.Survey == nil || res.Survey.Email != "a@b.com" || res.Survey.Signature != signer.Sign("a@b.com") {
		t.Errorf("unexpected survey form: %+v", res.Survey)
	}

	users := pool.Users()
	if len(users) != 1 {
		t.Fatalf("stored %d users, want 1", len(users))
	}
	if users[0].Identity != "" {
		t.Errorf("identity = %q, want empty", users[0].Identity)
	}
}

func TestRegisterKeepsIdentity(t *testing.T) {
	service := NewService(signing.NewSigner("sign-key"))
	pool := dbtest.NewMemoryPool()

	if _, err := service.Register(context.Background(), acquire(t, pool), "Ada", "Lovelace", "ada@example.com", "github"); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if got := pool.Users()[0].Identity; got != "github" {
		t.Errorf("identity = %q, want github", got)
	}
}

func TestRegisterExistingEmail(t *testing.T) {
	service := NewService(signing.NewSigner("sign-key"))
	pool := dbtest.NewMemoryPool(types.User{FirstName: "Ada", Email: "ada@example.com", Identity: "facebook"})

	for _, identity := range []string{"", "facebook", "github", "google"} {
		res, err := service.Register(context.Background(), acquire(t, pool), "Ada", "L", "ada@example.com", identity)
		if err != nil {
			t.Fatalf("Register(%q) error: %v", identity, err)
		}
		if res.Status != AlreadyRegistered || res.Survey != nil {
			t.Errorf("Register(%q) = %+v, want AlreadyRegistered without survey", identity, res)
		}
	}
	if n := len(pool.Users()); n != 1 {
		t.Errorf("stored %d users, want 1", n)
	}
}

func TestRegisterStoreFailure(t *testing.T) {
	service := NewService(signing.NewSigner("sign-key"))
	pool := dbtest.NewMemoryPool()
	boom := errors.New("connection reset")
	pool.Err = boom

	_, err := service.Register(context.Background(), acquire(t, pool), "A", "B", "a@b.com", "")
	if !errors.Is(err, boom) {
		t.Errorf("Register() error = %v, want wrapping %v", err, boom)
	}
}
