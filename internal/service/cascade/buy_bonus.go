package cascade

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"casino_client/internal/model"
	"casino_client/internal/service"
)

// Купить бонуску.
// Сервер только подтверждает покупку, поэтому число фриспинов предполагается (10)
// и помечается неподтвержденным до ответа следующего спина.
func (s *serv) BuyBonus(ctx context.Context) error {
	s.mu.Lock()
	if s.state != model.StateIdle {
		s.mu.Unlock()
		return service.ErrBusy
	}
	if s.ledger.State().IsBonusGame {
		s.mu.Unlock()
		return service.ErrBonusActive
	}
	if !s.ledger.CanAffordBonusPurchase(false) {
		s.mu.Unlock()
		return service.ErrInsufficientFunds
	}

	freeSpins := s.ledger.Rules().BonusFreeSpins
	cost := s.ledger.BonusCost()

	s.setState(model.StateSpinning)
	s.lastWin = 0
	s.awarded = 0
	s.lastShown = 0
	s.gen++
	gen := s.gen

	if !s.ledger.Online() {
		s.ledger.ResetTotalWin()
		s.ledger.ApplyBonusPurchaseCost(cost)
		s.ledger.GrantFreeSpins(freeSpins)
		s.setState(model.StateIdle)
		s.mu.Unlock()
		return nil
	}

	rollback := s.ledger.Tentative(func(e *model.EconomyState) {
		e.IsBonusGame = true
		e.FreeSpinsLeft = freeSpins
	})
	s.confirmed = false
	s.assumed = freeSpins
	s.mu.Unlock()

	err := s.api.BuyBonus(ctx, cost)

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return service.ErrStale
	}
	if err != nil {
		rollback()
		s.confirmed = true
		s.assumed = 0
		s.setState(model.StateIdle)
		s.mu.Unlock()
		return fmt.Errorf("buy bonus: %w", err)
	}

	s.ledger.ResetTotalWin()
	s.after(gen, func() *model.Round {
		s.setState(model.StateIdle)
		log.WithFields(log.Fields{"game": gameName, "free_spins": freeSpins}).Info("bonus purchased")
		return nil
	}, model.PhaseBonusAck)
	s.mu.Unlock()

	// Цену списал сервер; баланс подтягиваем отдельно, ошибка не отменяет покупку
	balance, err := s.pay.Balance(ctx)
	if err != nil {
		log.WithError(err).WithField("game", gameName).Warn("balance sync after bonus purchase failed")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen {
		s.ledger.SetBalance(balance)
	}
	return nil
}
