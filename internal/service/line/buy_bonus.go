package line

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"casino_client/internal/converter"
	"casino_client/internal/model"
	"casino_client/internal/service"
)

// Купить бонуску.
// Онлайн: флаг бонуса ставится до ответа сервера и откатывается при ошибке.
// Сервер списывает цену и возвращает первый бонусный спин.
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

	s.setState(model.StateSpinning)
	s.winningLines = nil
	s.lastWin = 0
	s.gen++
	gen := s.gen
	bet := s.ledger.State().Bet

	if !s.ledger.Online() {
		s.ledger.ResetTotalWin()
		s.ledger.ApplyBonusPurchaseCost(s.ledger.BonusCost())
		s.ledger.GrantFreeSpins(s.ledger.Rules().BonusFreeSpins)
		s.after(gen, model.PhaseReelSpin, func() *model.Round {
			s.board = service.RandomLineBoard(s.rng)
			s.setState(model.StateIdle)
			return nil
		})
		s.mu.Unlock()
		return nil
	}

	rollback := s.ledger.Tentative(func(e *model.EconomyState) {
		e.IsBonusGame = true
	})
	s.mu.Unlock()

	resp, err := s.api.BuyBonus(ctx, bet)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return service.ErrStale
	}
	if err != nil {
		rollback()
		s.setState(model.StateIdle)
		return fmt.Errorf("buy bonus: %w", err)
	}

	out, err := converter.ToLineOutcome(resp, s.paylines)
	if err != nil {
		log.WithError(err).WithField("game", gameName).Error("malformed bonus response")
		rollback()
		s.setState(model.StateIdle)
		return fmt.Errorf("buy bonus: %w", err)
	}

	s.after(gen, model.PhaseReelSpin, func() *model.Round {
		s.ledger.ResetTotalWin()
		s.commit(out)
		s.setState(model.StateIdle)
		log.WithFields(log.Fields{"game": gameName, "free_spins": out.FreeSpins.Left}).Info("bonus game started")
		return s.newRound(bet, true)
	})
	return nil
}
