// Package cascade - сессия игры 7x7: Idle -> Spinning -> (Resolving) -> Idle.
//
// Resolving ведет слой отображения: после анимации шага он применяет шаг к доске
// (UpdateBoardAfterCascade) и просит следующий (NextCascadeStep). После последнего
// шага доска сверяется с финальной доской сервера.
package cascade

import (
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"casino_client/internal/config"
	"casino_client/internal/ledger"
	"casino_client/internal/model"
	"casino_client/internal/service"
	"casino_client/pkg/timer"
)

const gameName = "cascade"

type serv struct {
	mu sync.Mutex

	api      service.CascadeAPI
	pay      service.PayAPI
	sched    timer.Scheduler
	observer service.RoundObserver
	rng      service.RandomSource
	timings  model.Timings

	ledger *ledger.Ledger

	state        model.State
	turbo        bool
	board        model.CascadeBoard
	final        model.CascadeBoard // Финальная доска сервера для сверки
	lastWin      int
	cascadeIndex int // -1 вне каскада
	cascades     []model.CascadeStep
	validation   model.Validation

	scatterCount int
	awarded      int
	lastShown    int // Фриспины, о которых уже сообщили игроку (после каскада)
	inFreeSpin   bool

	// После покупки бонуса число фриспинов предположено клиентом до ответа сервера
	confirmed bool
	assumed   int

	// Раунд, который уйдет наблюдателю по окончании каскада
	pending *model.Round
	gen     uint64
}

// NewCascadeSession Создать сессию каскадного слота 7x7. observer может быть nil.
func NewCascadeSession(
	cfg config.GameConfig,
	api service.CascadeAPI,
	pay service.PayAPI,
	sched timer.Scheduler,
	observer service.RoundObserver,
	rng service.RandomSource,
) service.CascadeSession {
	s := &serv{
		api:      api,
		pay:      pay,
		sched:    sched,
		observer: observer,
		rng:      rng,
		timings:  cfg.Timings(),
		ledger:   ledger.New(cfg.CascadeRules()),
	}
	s.resetBoard()
	return s
}

func (s *serv) resetBoard() {
	s.state = model.StateIdle
	s.board = model.DefaultCascadeBoard()
	s.final = s.board
	s.lastWin = 0
	s.cascadeIndex = -1
	s.cascades = nil
	s.validation = model.Validation{Valid: true}
	s.scatterCount = 0
	s.awarded = 0
	s.lastShown = 0
	s.inFreeSpin = false
	s.confirmed = true
	s.assumed = 0
	s.pending = nil
}

func (s *serv) Snapshot() model.CascadeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	steps := make([]model.CascadeStep, len(s.cascades))
	copy(steps, s.cascades)
	return model.CascadeSnapshot{
		State:               s.state,
		Economy:             s.ledger.State(),
		Board:               s.board,
		LastWin:             s.lastWin,
		CurrentCascadeIndex: s.cascadeIndex,
		Cascades:            steps,
		ScatterCount:        s.scatterCount,
		AwardedFreeSpins:    s.awarded,
		LastShownFreeSpins:  s.lastShown,
		InFreeSpin:          s.inFreeSpin,
		FreeSpinsConfirmed:  s.confirmed,
		Online:              s.ledger.Online(),
		Turbo:               s.turbo,
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

func (s *serv) CanSpin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == model.StateIdle && s.ledger.CanAffordSpin()
}

func (s *serv) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sched.CancelAll()
	s.gen++
	s.ledger.Reset()
	s.resetBoard()
	log.WithField("game", gameName).Debug("session reset")
}

func (s *serv) Close() {
	s.mu.Lock()
	s.gen++
	s.mu.Unlock()
	s.sched.Stop()
}

func (s *serv) setState(st model.State) {
	if s.state == st {
		return
	}
	log.WithFields(log.Fields{"game": gameName, "from": s.state, "to": st}).Debug("phase transition")
	s.state = st
}

// after запускает f после суммы длительностей фаз, если поколение не сменилось.
// Вызывается под s.mu, f тоже выполняется под s.mu.
func (s *serv) after(gen uint64, f func() *model.Round, phases ...model.Phase) {
	var d time.Duration
	for _, p := range phases {
		d += s.timings.Duration(p, s.turbo)
	}
	s.sched.Once(d, func() {
		s.mu.Lock()
		if s.gen != gen {
			s.mu.Unlock()
			return
		}
		round := f()
		s.mu.Unlock()

		s.observe(round)
	})
}

func (s *serv) observe(round *model.Round) {
	if round != nil && s.observer != nil {
		s.observer.ObserveRound(*round)
	}
}

func (s *serv) newRound(bet int, payout int, inFreeSpin bool) *model.Round {
	st := s.ledger.State()
	return &model.Round{
		ID:            uuid.NewString(),
		Game:          gameName,
		Bet:           bet,
		Payout:        payout,
		Balance:       st.Balance,
		FreeSpinsLeft: st.FreeSpinsLeft,
		InFreeSpin:    inFreeSpin,
		BoardValid:    true,
		PlayedAt:      time.Now(),
	}
}
