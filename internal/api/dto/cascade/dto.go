package cascade

type SpinRequest struct {
	Bet int `json:"bet"` // Размер ставки (положительное четное)
}

// SpinResponse - доски кодируются числами: -1 = пусто, 0-6 = обычные, 7 = скаттер
type SpinResponse struct {
	InitialBoard     [][]int `json:"initial_board,omitempty"` // Доска до всех каскадов (может отсутствовать)
	Board            [][]int `json:"board"`                   // Финальная доска 7x7
	Cascades         []Step  `json:"cascades"`                // Шаги каскада по порядку
	TotalPayout      int     `json:"total_payout"`            // Общая выплата за спин
	Balance          int     `json:"balance"`                 // Баланс после спина
	ScatterCount     int     `json:"scatter_count"`           // Скаттеров на финальной доске
	AwardedFreeSpins int     `json:"awarded_free_spins"`      // Начислено фриспинов в этом спине
	FreeSpinsLeft    int     `json:"free_spins_left"`         // Остаток фриспинов после спина
	InFreeSpin       bool    `json:"in_free_spin"`            // Это был фриспин
}

type Step struct {
	CascadeIndex int         `json:"cascade_index"` // 0 = первый
	Clusters     []Cluster   `json:"clusters"`      // Взорвавшиеся кластеры
	NewSymbols   []NewSymbol `json:"new_symbols"`   // Упавшие сверху символы
}

type Cluster struct {
	Symbol     int        `json:"symbol"`     // 0-6
	Cells      []Position `json:"cells"`      // Ячейки кластера
	Count      int        `json:"count"`      // Размер (>=5)
	Payout     int        `json:"payout"`     // Выплата за кластер
	Multiplier int        `json:"multiplier"` // Средний множитель
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type NewSymbol struct {
	Position Position `json:"position"`
	Symbol   int      `json:"symbol"` // -1 = пусто, 0-6 = обычный, 7 = скаттер
}

type BonusRequest struct {
	Amount int `json:"amount"` // Сумма покупки (ставка * 100)
}
