package auth

import (
	"errors"

	"github.com/google/uuid"

	"casino_client/internal/config"
	"casino_client/internal/repository"
	"casino_client/internal/service"
)

type serv struct {
	txManager    repository.TxManager
	userRepo     repository.UserRepository
	authRepo     repository.AuthRepository
	jwtConfig    config.JWTConfig
	startBalance int
}

// NewService Сервис авторизации тестового сервера. Новый игрок получает startBalance.
func NewService(
	txManager repository.TxManager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	startBalance int,
) service.AuthService {
	return &serv{
		txManager:    txManager,
		userRepo:     userRepo,
		authRepo:     authRepo,
		jwtConfig:    jwtConfig,
		startBalance: startBalance,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}

// mapRepoErr переводит ошибки хранилища в ошибки сервиса
func mapRepoErr(err error, notFound error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return notFound
	case errors.Is(err, repository.ErrAlreadyExists):
		return service.ErrUserExists
	}
	return err
}
