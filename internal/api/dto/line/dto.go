package line

type SpinRequest struct {
	Bet int `json:"bet"` // Размер ставки (положительное целое, >0)
}

type SpinResponse struct {
	Board            [5][3]string `json:"board"`              // Символы (ID), [reel][row]
	LineWins         []LineWin    `json:"line_wins"`          // Выигрышные линии
	ScatterCount     int          `json:"scatter_count"`      // Кол-во скаттеров
	ScatterPayout    int          `json:"scatter_payout"`     // Выплата по скаттерам
	AwardedFreeSpins int          `json:"awarded_free_spins"` // Начислено фриспинов в этом спине
	TotalPayout      int          `json:"total_payout"`       // Общая выплата
	Balance          int          `json:"balance"`            // Баланс после
	FreeSpinCount    int          `json:"free_spin_count"`    // Остаток фриспинов
	InFreeSpin       bool         `json:"in_free_spin"`       // Это был фриспин
}

type BonusRequest struct {
	Bet int `json:"bet"` // Ставка, от которой считается цена бонуса
}

type LineWin struct {
	Line   int    `json:"line"`   // 1-20
	Symbol string `json:"symbol"` // ID символа
	Count  int    `json:"count"`  // 3-5
	Payout int    `json:"payout"` // Выплата
}
