package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"casino_client/internal/config/env"
	"casino_client/internal/model"
	"casino_client/internal/repository"
	"casino_client/internal/repository/auth_repo"
	"casino_client/internal/repository/user_repo"
	"casino_client/internal/service"
	"casino_client/pkg/token"
)

var secret = []byte("test-secret")

func newTestService(refreshTTL time.Duration) (service.AuthService, repository.UserRepository) {
	users := user_repo.NewMemoryUserRepository()
	sessions := auth_repo.NewMemoryAuthRepository(users)
	cfg := env.NewStaticJWTConfig(secret, time.Minute, refreshTTL)
	return NewService(repository.NoTx{}, users, sessions, cfg, 1000), users
}

func TestRegisterLogin(t *testing.T) {
	ctx := context.Background()
	s, users := newTestService(time.Hour)

	data, err := s.Register(ctx, &model.User{Name: "Alice", Login: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if data.AccessToken == "" || data.RefreshToken == "" || data.SessionID == "" {
		t.Fatalf("auth data = %+v", data)
	}

	stored, err := users.GetUserByLogin(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if stored.Password == "pw" || stored.Balance != 1000 {
		t.Fatalf("stored user = %+v", stored)
	}

	claims, err := token.VerifyToken(data.AccessToken, secret)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if id, _ := token.UserID(claims); id != stored.ID {
		t.Fatalf("token user = %d, want %d", id, stored.ID)
	}

	if _, err := s.Register(ctx, &model.User{Login: "alice", Password: "x"}); !errors.Is(err, service.ErrUserExists) {
		t.Fatalf("duplicate register err = %v", err)
	}

	tests := []struct {
		name     string
		login    string
		password string
		want     error
	}{
		{name: "ok", login: "alice", password: "pw"},
		{name: "wrong password", login: "alice", password: "PW", want: service.ErrInvalidPassword},
		{name: "unknown user", login: "bob", password: "pw", want: service.ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := s.Login(ctx, &model.User{Login: tt.login, Password: tt.password})
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if tt.want == nil && data.SessionID == "" {
				t.Fatalf("no session opened")
			}
		})
	}
}

func TestRefreshLogout(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(time.Hour)

	data, err := s.Register(ctx, &model.User{Login: "alice", Password: "pw"})
	if err != nil {
		t.Fatal(err)
	}

	access, err := s.Refresh(ctx, data)
	if err != nil || access == "" {
		t.Fatalf("Refresh = %q, %v", access, err)
	}

	forged := *data
	forged.RefreshToken = "forged"
	if _, err := s.Refresh(ctx, &forged); !errors.Is(err, service.ErrSessionNotFound) {
		t.Fatalf("forged refresh err = %v", err)
	}

	if err := s.Logout(ctx, data.SessionID); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := s.Refresh(ctx, data); !errors.Is(err, service.ErrSessionNotFound) {
		t.Fatalf("refresh after logout err = %v", err)
	}
}

func TestRefreshExpiredSession(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(-time.Second)

	data, err := s.Register(ctx, &model.User{Login: "alice", Password: "pw"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Refresh(ctx, data); !errors.Is(err, service.ErrSessionNotFound) {
		t.Fatalf("expired refresh err = %v", err)
	}
}
