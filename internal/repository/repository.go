package repository

import (
	"context"
	"errors"

	"casino_client/internal/model"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// TxManager - часть trm.Manager, которой пользуются сервисы
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// NoTx выполняет fn без транзакции (хранилища в памяти)
type NoTx struct{}

func (NoTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Хранилища тестового сервера

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)

	GetBalance(ctx context.Context, id int) (int, error)
	UpdateBalance(ctx context.Context, id int, amount int) error
}

// Хранилища клиента

// RoundRepository - журнал сыгранных раундов
type RoundRepository interface {
	Save(ctx context.Context, round model.Round) error
	Totals(ctx context.Context, game string) (model.RoundTotals, error)
}

// StatsRepository - RTP по сыгранным раундам
type StatsRepository interface {
	Record(round model.Round)
	Stats(game string) model.RTPStats
}

// TokenRepository - access токен и профиль игрока между запусками
type TokenRepository interface {
	Load() (token string, profile model.Profile, err error)
	Save(token string, profile model.Profile) error
	Clear() error
}
