// Package dbtest provides an in-memory db.Pool for tests.
package dbtest

import (
	"context"
	"strconv"
	"sync"

	"github.com/tsuru/beta/pkg/db"
	"github.com/tsuru/beta/pkg/types"
)

// MemoryPool keeps users and survey responses in memory. Setting Err
// makes every operation fail with it.
type MemoryPool struct {
	mu       sync.Mutex
	users    []types.User
	surveys  []types.SurveyResponse
	acquired int
	released int

	Err error
}

func NewMemoryPool(users ...types.User) *MemoryPool {
	return &MemoryPool{users: users}
}

func (p *MemoryPool) Acquire(ctx context.Context) (db.Store, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.acquired++
	return &memoryStore{pool: p}, nil
}

func (p *MemoryPool) Users() []types.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]types.User(nil), p.users...)
}

func (p *MemoryPool) SurveyResponses() []types.SurveyResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]types.SurveyResponse(nil), p.surveys...)
}

// Outstanding returns the number of acquired but not yet released stores.
func (p *MemoryPool) Outstanding() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.acquired - p.released
}

type memoryStore struct {
	pool *MemoryPool
}

func (s *memoryStore) FindUserByEmail(ctx context.Context, email string) (types.User, error) {
	s.pool.mu.Lock()
	defer s.pool.mu.Unlock()
	if s.pool.Err != nil {
		return types.User{}, s.pool.Err
	}
	for _, u := range s.pool.users {
		if u.Email == email {
			return u, nil
		}
	}
	return types.User{}, db.ErrNotFound
}

func (s *memoryStore) AddUser(ctx context.Context, user types.User) (string, error) {
	s.pool.mu.Lock()
	defer s.pool.mu.Unlock()
	if s.pool.Err != nil {
		return "", s.pool.Err
	}
	s.pool.users = append(s.pool.users, user)
	return strconv.Itoa(len(s.pool.users)), nil
}

func (s *memoryStore) AddSurveyResponse(ctx context.Context, response types.SurveyResponse) (string, error) {
	s.pool.mu.Lock()
	defer s.pool.mu.Unlock()
	if s.pool.Err != nil {
		return "", s.pool.Err
	}
	s.pool.surveys = append(s.pool.surveys, response)
	return strconv.Itoa(len(s.pool.surveys)), nil
}

func (s *memoryStore) Release() {
	s.pool.mu.Lock()
	defer s.pool.mu.Unlock()
	s.pool.released++
}
