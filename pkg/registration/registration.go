// Package registration records new users coming from any signup channel.
package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coneno/logger"
	"github.com/tsuru/beta/pkg/db"
	"github.com/tsuru/beta/pkg/types"
)

type Status int

const (
	Registered Status = iota
	AlreadyRegistered
)

// UserStore is the part of a db.Store registration needs.
type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (types.User, error)
	AddUser(ctx context.Context, user types.User) (string, error)
}

type EmailSigner interface {
	Sign(email string) string
}

// SurveyForm is the follow up survey handed to a freshly registered user.
type SurveyForm struct {
	Email     string
	Signature string
}

type Result struct {
	Status Status
	// Survey is set only for Registered.
	Survey *SurveyForm
}

type Service struct {
	signer EmailSigner
}

func NewService(signer EmailSigner) *Service {
	return &Service{signer: signer}
}

// Register inserts the user unless one with the same email exists.
//
// The lookup and the insert are not atomic, concurrent registrations of
// one email can both succeed.
func (s *Service) Register(ctx context.Context, store UserStore, firstName, lastName, email, identity string) (Result, error) {
	_, err := store.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		logger.Debug.Printf("email %s already registered", email)
		return Result{Status: AlreadyRegistered}, nil
	case !errors.Is(err, db.ErrNotFound):
		return Result{}, fmt.Errorf("find user: %w", err)
	}

	user := types.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Identity:  strings.TrimSpace(identity),
	}
	if _, err := store.AddUser(ctx, user); err != nil {
		return Result{}, fmt.Errorf("add user: %w", err)
	}
	logger.Info.Printf("new user registered: %s", email)

	return Result{
		Status: Registered,
		Survey: s.SurveyFor(email),
	}, nil
}

// SurveyFor prefills the survey form with the email and its signature.
func (s *Service) SurveyFor(email string) *SurveyForm {
	return &SurveyForm{
		Email:     email,
		Signature: s.signer.Sign(email),
	}
}
