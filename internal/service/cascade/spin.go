package cascade

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"casino_client/internal/converter"
	"casino_client/internal/model"
	"casino_client/internal/service"
)

// Spin запускает спин. Повторный вызов во время раунда возвращает ErrBusy.
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
	s.lastWin = 0
	s.lastShown = 0
	s.awarded = 0
	s.scatterCount = 0
	s.gen++
	gen := s.gen
	eco := s.ledger.State()

	if !s.ledger.Online() {
		s.ledger.ApplySpinCost()
		s.ledger.ConsumeFreeSpin()
		s.after(gen, func() *model.Round {
			s.board = service.RandomCascadeBoard(s.rng)
			s.final = s.board
			s.inFreeSpin = eco.IsBonusGame
			s.setState(model.StateIdle)
			round := s.newRound(eco.Bet, 0, eco.IsBonusGame)
			round.Board = converter.FromCascadeBoard(s.board)
			return round
		}, model.PhaseReelSpin)
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

	out, err := converter.ToCascadeOutcome(resp)
	if err != nil {
		log.WithError(err).WithField("game", gameName).Error("malformed spin response")
		s.setState(model.StateIdle)
		return fmt.Errorf("spin: %w", err)
	}

	s.after(gen, func() *model.Round {
		s.commit(eco.Bet, out)

		// Пока барабаны останавливаются, сессия остается в Spinning
		if len(s.cascades) > 0 {
			s.after(gen, func() *model.Round {
				s.cascadeIndex = 0
				s.setState(model.StateResolving)
				return nil
			}, model.PhaseReelSettle, model.PhaseCascadeDelay)
			return nil
		}
		s.after(gen, func() *model.Round {
			return s.finish()
		}, model.PhaseReelSettle)
		return nil
	}, model.PhaseReelSpin)
	return nil
}

// commit показывает начальную доску и применяет экономику из ответа.
// Фриспины для показа игроку фиксируются только в finish.
func (s *serv) commit(bet int, out model.CascadeOutcome) {
	if !s.confirmed {
		expected := s.assumed + out.FreeSpins.Awarded
		if out.FreeSpins.InFreeSpin {
			expected--
		}
		if out.FreeSpins.Left != expected {
			log.WithFields(log.Fields{
				"game":     gameName,
				"assumed":  s.assumed,
				"server":   out.FreeSpins.Left,
				"expected": expected,
			}).Warn("server free spin count differs from assumed bonus award")
		}
		s.confirmed = true
		s.assumed = 0
	}

	s.ledger.ReconcileFromServer(model.Reconciliation{
		Balance:       out.Balance,
		FreeSpinsLeft: out.FreeSpins.Left,
		Payout:        out.TotalPayout,
	})

	s.board = out.InitialBoard
	s.final = out.FinalBoard
	s.cascades = out.Cascades
	s.cascadeIndex = -1
	s.lastWin = out.TotalPayout
	s.scatterCount = out.ScatterCount
	s.awarded = out.FreeSpins.Awarded
	s.inFreeSpin = out.FreeSpins.InFreeSpin
	s.pending = s.newRound(bet, out.TotalPayout, out.FreeSpins.InFreeSpin)
	s.pending.Cascades = out.Cascades

	switch {
	case out.ReconstructErr != nil:
		log.WithError(out.ReconstructErr).WithField("game", gameName).Warn("cascade steps inconsistent, showing server board")
	case out.Reconstructed:
		log.WithFields(log.Fields{"game": gameName, "steps": len(out.Cascades)}).Debug("initial board reconstructed")
	}
}
