package model

import "github.com/shopspring/decimal"

// RoundTotals - суммы по журналу раундов
type RoundTotals struct {
	Rounds int
	Bet    int64
	Payout int64
}

// RTPStats - возврат игроку в процентах, за все время и в окне последних раундов
type RTPStats struct {
	Rounds      int
	TotalBet    int64
	TotalPayout int64
	RTP         decimal.Decimal
	WindowRTP   decimal.Decimal
	WindowSize  int
}
