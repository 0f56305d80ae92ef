package auth

import (
	"context"
	"time"

	"casino_client/internal/model"
	"casino_client/internal/service"
	"casino_client/pkg/token"
)

func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error) {
	// Сессия с хэшем refresh токена
	session, err := s.authRepo.GetSession(ctx, data.SessionID)
	if err != nil {
		return "", mapRepoErr(err, service.ErrSessionNotFound)
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.authRepo.DeleteSession(ctx, session.ID)
		return "", service.ErrSessionNotFound
	}

	// Верификация переданного refresh токена с хэшем из хранилища
	if !token.VerifyRefreshToken(data.RefreshToken, session.RefreshToken) {
		return "", service.ErrSessionNotFound
	}

	// Пользователь мог быть удален после открытия сессии
	user, err := s.authRepo.GetUserBySessionID(ctx, session.ID)
	if err != nil {
		return "", mapRepoErr(err, service.ErrSessionNotFound)
	}

	return token.GenerateAccessToken(
		user.ID,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
}
