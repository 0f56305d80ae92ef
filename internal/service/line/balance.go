package line

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"casino_client/internal/model"
	"casino_client/internal/service"
)

// Deposit пополняет баланс. Онлайн - через сервер с последующей сверкой баланса.
func (s *serv) Deposit(ctx context.Context, amount int) error {
	if amount <= 0 {
		return service.ErrInvalidAmount
	}

	s.mu.Lock()
	if s.state != model.StateIdle {
		s.mu.Unlock()
		return service.ErrBusy
	}
	if !s.ledger.Online() {
		s.ledger.Deposit(amount)
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	if err := s.pay.Deposit(ctx, amount); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	return s.SyncBalance(ctx)
}

// SyncBalance забирает баланс с сервера. Во время раунда значение не применяется:
// баланс придет в ответе спина.
func (s *serv) SyncBalance(ctx context.Context) error {
	s.mu.Lock()
	online := s.ledger.Online()
	s.mu.Unlock()
	if !online {
		return nil
	}

	balance, err := s.pay.Balance(ctx)
	if err != nil {
		return fmt.Errorf("sync balance: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != model.StateIdle {
		log.WithField("game", gameName).Debug("balance sync skipped: round in progress")
		return nil
	}
	s.ledger.SetBalance(balance)
	return nil
}
