// Package ledger хранит и изменяет баланс, ставку и фриспины сессии.
// Ledger не потокобезопасен: им владеет сессия и вызывает его под своим мьютексом.
package ledger

import (
	"casino_client/internal/model"
)

// Rules - экономические правила варианта игры
type Rules struct {
	MinBet              int
	MaxBet              int
	EvenBet             bool // Ставка только четная (каскадная игра)
	DefaultBalance      int
	DefaultBet          int
	BonusCostMultiplier int // Цена бонуса = ставка * множитель
	BonusFreeSpins      int // Сколько фриспинов дает купленный бонус (оффлайн и оптимистично)
}

// LineRules - правила игры 5x3
func LineRules() Rules {
	return Rules{
		MinBet:              1,
		MaxBet:              100,
		DefaultBalance:      1000,
		DefaultBet:          10,
		BonusCostMultiplier: 100,
		BonusFreeSpins:      10,
	}
}

// CascadeRules - правила игры 7x7
func CascadeRules() Rules {
	return Rules{
		MinBet:              2,
		MaxBet:              1000,
		EvenBet:             true,
		DefaultBalance:      10000,
		DefaultBet:          20,
		BonusCostMultiplier: 100,
		BonusFreeSpins:      10,
	}
}

type Ledger struct {
	rules  Rules
	online bool
	state  model.EconomyState
}

// New создает леджер с балансом и ставкой по умолчанию
func New(rules Rules) *Ledger {
	l := &Ledger{rules: rules}
	l.Reset()
	return l
}

// Reset восстанавливает значения по умолчанию
func (l *Ledger) Reset() {
	l.state = model.EconomyState{
		Balance: l.rules.DefaultBalance,
		Bet:     l.clamp(l.rules.DefaultBet),
	}
}

// State возвращает копию состояния
func (l *Ledger) State() model.EconomyState {
	return l.state
}

func (l *Ledger) Rules() Rules {
	return l.rules
}

func (l *Ledger) Online() bool {
	return l.online
}

// SetOnline переключает режим. В онлайне баланс авторитетно приходит с сервера.
func (l *Ledger) SetOnline(online bool) {
	l.online = online
}

// SetBet меняет ставку. busy - идет спин или каскад.
// Во время спина и в бонусной игре ставка не меняется (вызов игнорируется).
func (l *Ledger) SetBet(value int, busy bool) bool {
	if busy || l.state.IsBonusGame {
		return false
	}
	l.state.Bet = l.clamp(value)
	return true
}

func (l *Ledger) clamp(value int) int {
	bet := max(l.rules.MinBet, min(l.rules.MaxBet, value))
	if l.rules.EvenBet {
		// Округляем вниз до четного, но не ниже MinBet
		bet = bet / 2 * 2
		if bet < l.rules.MinBet {
			bet += 2
		}
	}
	return bet
}

// BonusCost - цена покупки бонуса при текущей ставке
func (l *Ledger) BonusCost() int {
	return l.state.Bet * l.rules.BonusCostMultiplier
}

// CanAffordSpin - в бонусной игре спин бесплатный
func (l *Ledger) CanAffordSpin() bool {
	return l.state.IsBonusGame || l.state.Balance >= l.state.Bet
}

// CanAffordBonusPurchase - бонус нельзя купить в бонусной игре и во время спина
func (l *Ledger) CanAffordBonusPurchase(busy bool) bool {
	return !l.state.IsBonusGame && !busy && l.state.Balance >= l.BonusCost()
}

// ApplySpinCost списывает ставку в оффлайне. Фриспины бесплатны.
// В онлайне списывает сервер, клиент только сверяет баланс по ответу.
func (l *Ledger) ApplySpinCost() {
	if l.online || l.state.IsBonusGame {
		return
	}
	l.state.Balance -= l.state.Bet
}

// ConsumeFreeSpin уменьшает счетчик фриспинов в оффлайне.
// В онлайне счетчик приходит с сервера и локально не уменьшается.
func (l *Ledger) ConsumeFreeSpin() {
	if l.online || l.state.FreeSpinsLeft == 0 {
		return
	}
	l.state.FreeSpinsLeft--
	l.state.IsBonusGame = l.state.FreeSpinsLeft > 0
}

// ApplyBonusPurchaseCost списывает цену бонуса в оффлайне.
// В онлайне списание делает сервер при покупке.
func (l *Ledger) ApplyBonusPurchaseCost(cost int) {
	if l.online {
		return
	}
	l.state.Balance -= cost
}

// GrantFreeSpins начисляет фриспины локально (оффлайн-покупка бонуса)
func (l *Ledger) GrantFreeSpins(n int) {
	l.state.FreeSpinsLeft += n
	l.state.IsBonusGame = l.state.FreeSpinsLeft > 0
}

// ReconcileFromServer перезаписывает баланс и фриспины значениями сервера
func (l *Ledger) ReconcileFromServer(r model.Reconciliation) {
	l.state.Balance = r.Balance
	l.state.FreeSpinsLeft = r.FreeSpinsLeft
	l.state.IsBonusGame = r.FreeSpinsLeft > 0
	l.state.TotalWinAccumulated += r.Payout
}

// ResetTotalWin обнуляет накопленный выигрыш (новая бонусная серия)
func (l *Ledger) ResetTotalWin() {
	l.state.TotalWinAccumulated = 0
}

// SetBalance - баланс, полученный с сервера
func (l *Ledger) SetBalance(balance int) {
	l.state.Balance = balance
}

// Deposit пополняет баланс локально (оффлайн)
func (l *Ledger) Deposit(amount int) {
	l.state.Balance += amount
}

// Tentative применяет предварительное изменение и возвращает функцию отката.
// Откат восстанавливает бонусный флаг и фриспины, которые были до изменения.
func (l *Ledger) Tentative(apply func(s *model.EconomyState)) (rollback func()) {
	before := l.state
	apply(&l.state)
	return func() {
		l.state.IsBonusGame = before.IsBonusGame
		l.state.FreeSpinsLeft = before.FreeSpinsLeft
		l.state.Balance = before.Balance
	}
}
