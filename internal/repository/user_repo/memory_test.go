package user_repo

import (
	"context"
	"errors"
	"testing"

	"casino_client/internal/model"
	"casino_client/internal/repository"
)

func TestMemoryUsers(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryUserRepository()

	id, err := r.CreateUser(ctx, &model.User{Login: "alice", Password: "hash", Balance: 1000})
	if err != nil || id != 1 {
		t.Fatalf("CreateUser = %d, %v", id, err)
	}
	if _, err := r.CreateUser(ctx, &model.User{Login: "alice"}); !errors.Is(err, repository.ErrAlreadyExists) {
		t.Fatalf("duplicate login err = %v", err)
	}

	u, err := r.GetUserByLogin(ctx, "alice")
	if err != nil || u.ID != id || u.Balance != 1000 {
		t.Fatalf("GetUserByLogin = %+v, %v", u, err)
	}
	if _, err := r.GetUserByLogin(ctx, "bob"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("unknown login err = %v", err)
	}

	if err := r.UpdateBalance(ctx, id, 250); err != nil {
		t.Fatalf("UpdateBalance: %v", err)
	}
	if b, err := r.GetBalance(ctx, id); err != nil || b != 250 {
		t.Fatalf("GetBalance = %d, %v", b, err)
	}
	if u, _ := r.GetUserByID(ctx, id); u.Balance != 250 {
		t.Fatalf("GetUserByID balance = %d", u.Balance)
	}
	if err := r.UpdateBalance(ctx, 42, 1); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("unknown id err = %v", err)
	}
}
