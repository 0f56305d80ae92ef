package user_repo

import (
	"context"
	"sync"

	"casino_client/internal/model"
	"casino_client/internal/repository"
)

// memRepo - пользователи в памяти, когда сервер запущен без Postgres
type memRepo struct {
	mtx     sync.RWMutex
	nextID  int
	byID    map[int]model.User
	byLogin map[string]int
}

func NewMemoryUserRepository() repository.UserRepository {
	return &memRepo{
		nextID:  1,
		byID:    make(map[int]model.User),
		byLogin: make(map[string]int),
	}
}

func (r *memRepo) CreateUser(_ context.Context, user *model.User) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.byLogin[user.Login]; ok {
		return 0, repository.ErrAlreadyExists
	}
	id := r.nextID
	r.nextID++

	u := *user
	u.ID = id
	r.byID[id] = u
	r.byLogin[u.Login] = id
	return id, nil
}

func (r *memRepo) GetUserByLogin(_ context.Context, login string) (*model.User, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	id, ok := r.byLogin[login]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

func (r *memRepo) GetUserByID(_ context.Context, id int) (*model.User, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *memRepo) GetBalance(_ context.Context, id int) (int, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	return u.Balance, nil
}

func (r *memRepo) UpdateBalance(_ context.Context, id int, amount int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Balance = amount
	r.byID[id] = u
	return nil
}
