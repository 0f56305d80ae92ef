package pay

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"casino_client/internal/repository"
	"casino_client/internal/service"
)

type serv struct {
	txManager repository.TxManager
	userRepo  repository.UserRepository
}

func NewService(txManager repository.TxManager, userRepo repository.UserRepository) service.PaymentService {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
	}
}

// Deposit Пополнить баланс
func (s *serv) Deposit(ctx context.Context, userID int, amount int) error {
	if amount <= 0 {
		return service.ErrInvalidAmount
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		balance, err := s.userRepo.GetBalance(ctx, userID)
		if err != nil {
			return userErr(err)
		}
		if err := s.userRepo.UpdateBalance(ctx, userID, balance+amount); err != nil {
			return userErr(err)
		}
		log.WithFields(log.Fields{"user": userID, "amount": amount, "balance": balance + amount}).Debug("deposit")
		return nil
	})
}

func (s *serv) GetBalance(ctx context.Context, userID int) (int, error) {
	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return 0, userErr(err)
	}
	return balance, nil
}

func userErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return service.ErrUserNotFound
	}
	return err
}
