package db

import (
	"context"

	"github.com/tsuru/beta/pkg/types"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store is the storage view a single request works with. It must be
// released once the request is done with it.
type Store interface {
	FindUserByEmail(ctx context.Context, email string) (types.User, error)
	AddUser(ctx context.Context, user types.User) (string, error)
	AddSurveyResponse(ctx context.Context, response types.SurveyResponse) (string, error)
	Release()
}

// Pool hands out request scoped stores.
type Pool interface {
	Acquire(ctx context.Context) (Store, error)
}

// Session binds every operation to one mongo client session.
type Session struct {
	dbService *BetaDBService
	sess      mongo.Session
}

func (dbService *BetaDBService) Acquire(ctx context.Context) (Store, error) {
	sess, err := dbService.DBClient.StartSession()
	if err != nil {
		return nil, err
	}
	return &Session{dbService: dbService, sess: sess}, nil
}

func (s *Session) Release() {
	s.sess.EndSession(context.Background())
}

func (s *Session) bind(ctx context.Context) context.Context {
	return mongo.NewSessionContext(ctx, s.sess)
}

func (s *Session) FindUserByEmail(ctx context.Context, email string) (types.User, error) {
	return s.dbService.FindUserByEmail(s.bind(ctx), email)
}

func (s *Session) AddUser(ctx context.Context, user types.User) (string, error) {
	return s.dbService.AddUser(s.bind(ctx), user)
}

func (s *Session) AddSurveyResponse(ctx context.Context, response types.SurveyResponse) (string, error) {
	return s.dbService.AddSurveyResponse(s.bind(ctx), response)
}
