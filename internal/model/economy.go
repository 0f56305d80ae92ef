package model

// EconomyState - баланс, ставка и фриспины сессии
type EconomyState struct {
	Balance             int
	Bet                 int
	FreeSpinsLeft       int
	IsBonusGame         bool
	TotalWinAccumulated int
}

// Reconciliation - авторитетные значения из ответа сервера
type Reconciliation struct {
	Balance       int
	FreeSpinsLeft int
	Payout        int
}
