package auth

import (
	"context"
	"time"

	"casino_client/internal/model"
	"casino_client/pkg/pass"
	"casino_client/pkg/token"
)

func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash
	user.Balance = s.startBalance

	var data *model.AuthData

	// Пользователь и его первая сессия создаются вместе
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return mapRepoErr(err, err)
		}
		user.ID = id

		data, err = s.openSession(ctx, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// openSession создает сессию с новым refresh токеном и выдает access токен
func (s *serv) openSession(ctx context.Context, userID int) (*model.AuthData, error) {
	refreshToken, refreshHash, err := token.NewRefreshToken()
	if err != nil {
		return nil, err
	}

	sessionID := generateSessionID()
	err = s.authRepo.CreateSession(ctx, &model.Session{
		ID:           sessionID,
		UserID:       userID,
		RefreshToken: refreshHash,
		ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := token.GenerateAccessToken(
		userID,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
