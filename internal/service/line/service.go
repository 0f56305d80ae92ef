// Package line - сессия игры 5x3: Idle -> Spinning -> Idle.
package line

import (
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"casino_client/internal/config"
	"casino_client/internal/converter"
	"casino_client/internal/ledger"
	"casino_client/internal/model"
	"casino_client/internal/service"
	"casino_client/pkg/timer"
)

const gameName = "line"

type serv struct {
	mu sync.Mutex

	api      service.LineAPI
	pay      service.PayAPI
	sched    timer.Scheduler
	observer service.RoundObserver
	rng      service.RandomSource
	paylines []model.Payline
	timings  model.Timings

	ledger *ledger.Ledger

	state        model.State
	turbo        bool
	board        model.LineBoard
	winningLines []model.WinningLine
	lastWin      int
	// gen растет при каждом спине и сбросе; ответы и таймеры старого поколения отбрасываются
	gen uint64
}

// NewLineSession Создать сессию слота 5x3. observer может быть nil.
func NewLineSession(
	cfg config.GameConfig,
	api service.LineAPI,
	pay service.PayAPI,
	sched timer.Scheduler,
	observer service.RoundObserver,
	rng service.RandomSource,
) service.LineSession {
	return &serv{
		api:      api,
		pay:      pay,
		sched:    sched,
		observer: observer,
		rng:      rng,
		paylines: cfg.Paylines(),
		timings:  cfg.Timings(),
		ledger:   ledger.New(cfg.LineRules()),
		board:    model.DefaultLineBoard(),
	}
}

func (s *serv) Snapshot() model.LineSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]model.WinningLine, len(s.winningLines))
	copy(lines, s.winningLines)
	return model.LineSnapshot{
		State:        s.state,
		Economy:      s.ledger.State(),
		Board:        s.board,
		WinningLines: lines,
		LastWin:      s.lastWin,
		Online:       s.ledger.Online(),
		Turbo:        s.turbo,
	}
}

func (s *serv) SetBet(value int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.SetBet(value, s.state != model.StateIdle)
}

func (s *serv) SetTurbo(turbo bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != model.StateIdle {
		return false
	}
	s.turbo = turbo
	return true
}

func (s *serv) SetOnline(online bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != model.StateIdle {
		return false
	}
	s.ledger.SetOnline(online)
	return true
}

// CanSpin - можно ли сейчас запускать спин (для автоигры)
func (s *serv) CanSpin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == model.StateIdle && s.ledger.CanAffordSpin()
}

// Reset отменяет все фазы и возвращает значения по умолчанию. Режим онлайн сохраняется.
func (s *serv) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sched.CancelAll()
	s.gen++
	s.ledger.Reset()
	s.state = model.StateIdle
	s.board = model.DefaultLineBoard()
	s.winningLines = nil
	s.lastWin = 0
	log.WithField("game", gameName).Debug("session reset")
}

func (s *serv) Close() {
	s.mu.Lock()
	s.gen++
	s.mu.Unlock()
	s.sched.Stop()
}

// setState меняет фазу. Вызывается под s.mu.
func (s *serv) setState(st model.State) {
	if s.state == st {
		return
	}
	log.WithFields(log.Fields{"game": gameName, "from": s.state, "to": st}).Debug("phase transition")
	s.state = st
}

// after запускает f по окончании фазы, если сессия не сбрасывалась.
// f выполняется под s.mu и может вернуть завершенный раунд для наблюдателя.
func (s *serv) after(gen uint64, phase model.Phase, f func() *model.Round) {
	s.sched.Once(s.timings.Duration(phase, s.turbo), func() {
		s.mu.Lock()
		if s.gen != gen {
			s.mu.Unlock()
			return
		}
		round := f()
		s.mu.Unlock()

		if round != nil && s.observer != nil {
			s.observer.ObserveRound(*round)
		}
	})
}

func (s *serv) newRound(bet int, inFreeSpin bool) *model.Round {
	st := s.ledger.State()
	return &model.Round{
		ID:            uuid.NewString(),
		Game:          gameName,
		Bet:           bet,
		Payout:        s.lastWin,
		Balance:       st.Balance,
		FreeSpinsLeft: st.FreeSpinsLeft,
		InFreeSpin:    inFreeSpin,
		BoardValid:    true,
		Board:         converter.FromLineBoard(s.board),
		PlayedAt:      time.Now(),
	}
}
