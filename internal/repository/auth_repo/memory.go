package auth_repo

import (
	"context"
	"sync"

	"casino_client/internal/model"
	"casino_client/internal/repository"
)

type memRepo struct {
	mtx      sync.RWMutex
	sessions map[string]model.Session
	users    repository.UserRepository
}

// NewMemoryAuthRepository - сессии в памяти. users нужен для GetUserBySessionID.
func NewMemoryAuthRepository(users repository.UserRepository) repository.AuthRepository {
	return &memRepo{
		sessions: make(map[string]model.Session),
		users:    users,
	}
}

func (r *memRepo) CreateSession(_ context.Context, session *model.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		return repository.ErrAlreadyExists
	}
	r.sessions[session.ID] = *session
	return nil
}

func (r *memRepo) GetSession(_ context.Context, sessionID string) (*model.Session, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *memRepo) DeleteSession(_ context.Context, sessionID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

func (r *memRepo) GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error) {
	s, err := r.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return r.users.GetUserByID(ctx, s.UserID)
}
