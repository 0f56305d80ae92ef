package auth

import (
	"context"

	log "github.com/sirupsen/logrus"

	"casino_client/internal/model"
	"casino_client/internal/service"
	"casino_client/pkg/pass"
)

func (s *serv) Login(ctx context.Context, user *model.User) (*model.AuthData, error) {
	// Получение пользователя по логину
	stored, err := s.userRepo.GetUserByLogin(ctx, user.Login)
	if err != nil {
		return nil, mapRepoErr(err, service.ErrUserNotFound)
	}

	// Верификация пароля
	if !pass.VerifyPassword(stored.Password, user.Password) {
		log.WithField("login", user.Login).Debug("invalid password")
		return nil, service.ErrInvalidPassword
	}

	return s.openSession(ctx, stored.ID)
}

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	return s.authRepo.DeleteSession(ctx, sessionID)
}
