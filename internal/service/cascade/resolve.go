package cascade

import (
	log "github.com/sirupsen/logrus"

	"casino_client/internal/converter"
	"casino_client/internal/model"
	"casino_client/internal/replay"
	"casino_client/internal/service"
)

// CurrentStep - шаг, который сейчас анимируется
func (s *serv) CurrentStep() (model.CascadeStep, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != model.StateResolving || s.cascadeIndex < 0 || s.cascadeIndex >= len(s.cascades) {
		return model.CascadeStep{}, false
	}
	return s.cascades[s.cascadeIndex], true
}

// UpdateBoardAfterCascade - доска после применения текущего шага слоем отображения
func (s *serv) UpdateBoardAfterCascade(board model.CascadeBoard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != model.StateResolving {
		return service.ErrNotResolving
	}
	s.board = board
	return nil
}

// NextCascadeStep переходит к следующему шагу. После последнего завершает каскад.
func (s *serv) NextCascadeStep() error {
	s.mu.Lock()
	if s.state != model.StateResolving {
		s.mu.Unlock()
		return service.ErrNotResolving
	}
	if s.cascadeIndex < len(s.cascades)-1 {
		s.cascadeIndex++
		s.mu.Unlock()
		return nil
	}
	round := s.finish()
	s.mu.Unlock()

	s.observe(round)
	return nil
}

func (s *serv) FinishCascadeAnimation() error {
	s.mu.Lock()
	if s.state != model.StateResolving {
		s.mu.Unlock()
		return service.ErrNotResolving
	}
	round := s.finish()
	s.mu.Unlock()

	s.observe(round)
	return nil
}

func (s *serv) LastValidation() model.Validation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validation
}

// finish сверяет доску с финальной доской сервера. При расхождении доска сервера
// перезаписывает локальную, баланс и выплаты не трогаются. Вызывается под s.mu.
func (s *serv) finish() *model.Round {
	v := replay.Validate(s.board, s.final)
	if !v.Valid {
		log.WithFields(log.Fields{
			"game":       gameName,
			"mismatches": v.Mismatches,
		}).Warn("cascade board validation failed, using server board")
		s.board = s.final
	}
	s.validation = v
	s.cascadeIndex = -1
	s.cascades = nil
	s.setState(model.StateIdle)

	if s.awarded > 0 {
		s.lastShown = s.awarded
		log.WithFields(log.Fields{"game": gameName, "free_spins": s.awarded}).Info("bonus game activated")
	}

	round := s.pending
	s.pending = nil
	if round != nil {
		round.BoardValid = v.Valid
		round.Board = converter.FromCascadeBoard(s.board)
	}
	return round
}
