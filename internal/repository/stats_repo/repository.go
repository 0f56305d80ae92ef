package stats_repo

import (
	"sync"

	"github.com/shopspring/decimal"

	"casino_client/internal/model"
	"casino_client/internal/repository"
)

// DefaultWindowSize Размер окна последних раундов для RTP окна
const DefaultWindowSize = 500

var hundred = decimal.NewFromInt(100)

// spinResult - раунд в окне
type spinResult struct {
	bet    int64
	payout int64
}

// gameState - накопленное состояние по одной игре
type gameState struct {
	rounds      int
	totalBet    int64
	totalPayout int64
	window      []spinResult
}

// Репозиторий RTP по сыгранным раундам, хранится в памяти
type statsRepo struct {
	mtx        sync.RWMutex
	windowSize int
	games      map[string]*gameState
}

func NewStatsRepository(windowSize int) repository.StatsRepository {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &statsRepo{
		windowSize: windowSize,
		games:      make(map[string]*gameState),
	}
}

// Record Обновление состояния после раунда. Фриспин не считается ставкой.
func (r *statsRepo) Record(round model.Round) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	st, ok := r.games[round.Game]
	if !ok {
		st = &gameState{}
		r.games[round.Game] = st
	}

	bet := int64(round.Bet)
	if round.InFreeSpin {
		bet = 0
	}
	payout := int64(round.Payout)

	st.rounds++
	st.totalBet += bet
	st.totalPayout += payout

	// Поддерживаем размер окна
	st.window = append(st.window, spinResult{bet: bet, payout: payout})
	if len(st.window) > r.windowSize {
		st.window = st.window[len(st.window)-r.windowSize:]
	}
}

// Stats Текущее состояние игры. Для игры без раундов RTP нулевой.
func (r *statsRepo) Stats(game string) model.RTPStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := model.RTPStats{WindowSize: r.windowSize}
	st, ok := r.games[game]
	if !ok {
		return out
	}

	out.Rounds = st.rounds
	out.TotalBet = st.totalBet
	out.TotalPayout = st.totalPayout
	out.RTP = rtp(st.totalBet, st.totalPayout)

	var windowBet, windowPayout int64
	for _, spin := range st.window {
		windowBet += spin.bet
		windowPayout += spin.payout
	}
	out.WindowRTP = rtp(windowBet, windowPayout)
	return out
}

// rtp = payout / bet * 100, два знака после запятой
func rtp(bet, payout int64) decimal.Decimal {
	if bet == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(payout).
		Mul(hundred).
		DivRound(decimal.NewFromInt(bet), 2)
}
