package line

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"casino_client/internal/converter"
	"casino_client/internal/model"
	"casino_client/internal/service"
)

// Spin запускает спин. Пока раунд идет, повторный вызов возвращает ErrBusy.
// В онлайне метод ждет ответа сервера, результат фиксируется после фазы прокрутки.
func (s *serv) Spin(ctx context.Context) error {
	s.mu.Lock()
	if s.state != model.StateIdle {
		s.mu.Unlock()
		return service.ErrBusy
	}
	if !s.ledger.CanAffordSpin() {
		s.mu.Unlock()
		return service.ErrInsufficientFunds
	}

	s.setState(model.StateSpinning)
	s.winningLines = nil
	s.lastWin = 0
	s.gen++
	gen := s.gen
	eco := s.ledger.State()

	// Оффлайн: списываем ставку сразу и крутим локальную доску
	if !s.ledger.Online() {
		s.ledger.ApplySpinCost()
		s.ledger.ConsumeFreeSpin()
		s.after(gen, model.PhaseReelSpin, func() *model.Round {
			s.board = service.RandomLineBoard(s.rng)
			s.setState(model.StateIdle)
			return s.newRound(eco.Bet, eco.IsBonusGame)
		})
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	resp, err := s.api.Spin(ctx, eco.Bet)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return service.ErrStale
	}
	if err != nil {
		s.setState(model.StateIdle)
		return fmt.Errorf("spin: %w", err)
	}

	out, err := converter.ToLineOutcome(resp, s.paylines)
	if err != nil {
		log.WithError(err).WithField("game", gameName).Error("malformed spin response")
		s.setState(model.StateIdle)
		return fmt.Errorf("spin: %w", err)
	}

	s.after(gen, model.PhaseReelSpin, func() *model.Round {
		s.commit(out)
		s.setState(model.StateIdle)
		return s.newRound(eco.Bet, out.FreeSpins.InFreeSpin)
	})
	return nil
}

// commit переносит результат сервера в сессию.
// Остаток фриспинов берется у сервера, локально не уменьшается.
func (s *serv) commit(out model.LineOutcome) {
	s.board = out.Board
	s.winningLines = out.WinningLines
	s.lastWin = out.TotalPayout
	s.ledger.ReconcileFromServer(model.Reconciliation{
		Balance:       out.Balance,
		FreeSpinsLeft: out.FreeSpins.Left,
		Payout:        out.TotalPayout,
	})
	if out.FreeSpins.Awarded > 0 {
		log.WithFields(log.Fields{
			"game":    gameName,
			"awarded": out.FreeSpins.Awarded,
			"left":    out.FreeSpins.Left,
		}).Info("free spins awarded")
	}
}
