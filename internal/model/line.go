package model

// ScatterLineIndex - индекс "линии" для выплаты по скаттерам.
// Такую линию не рисуют как путь и не показывают в перелистывании линий,
// но учитывают в общей выплате.
const ScatterLineIndex = -1

// WinningLine - выигрышная линия (или выплата по скаттерам)
type WinningLine struct {
	LineIndex int
	Symbol    Symbol
	Count     int
	WinAmount int
	Positions [][2]int // [reel, row]
}

// IsScatter возвращает true для синтетической линии скаттеров
func (w WinningLine) IsScatter() bool {
	return w.LineIndex == ScatterLineIndex
}

// Payline - шаблон линии: номер ряда для каждого барабана
type Payline struct {
	ID      int
	Pattern [LineReels]int
}

// FreeSpinInfo - учет фриспинов из ответа сервера
type FreeSpinInfo struct {
	Awarded    int  // Начислено в этом спине
	Left       int  // Остаток после спина
	InFreeSpin bool // Спин был фриспином
}

// LineOutcome - результат спина линейной игры во внутреннем представлении
type LineOutcome struct {
	Board         LineBoard
	WinningLines  []WinningLine
	ScatterCount  int
	ScatterPayout int
	TotalPayout   int
	Balance       int
	FreeSpins     FreeSpinInfo
}

// PaylineWins возвращает линии без скаттерной (для перелистывания линий)
func (o LineOutcome) PaylineWins() []WinningLine {
	res := make([]WinningLine, 0, len(o.WinningLines))
	for _, w := range o.WinningLines {
		if !w.IsScatter() {
			res = append(res, w)
		}
	}
	return res
}

// DefaultPaylines - 20 линий игры 5x3 (номер ряда на каждом барабане)
func DefaultPaylines() []Payline {
	return []Payline{
		{ID: 1, Pattern: [LineReels]int{1, 1, 1, 1, 1}},
		{ID: 2, Pattern: [LineReels]int{0, 0, 0, 0, 0}},
		{ID: 3, Pattern: [LineReels]int{2, 2, 2, 2, 2}},
		{ID: 4, Pattern: [LineReels]int{0, 1, 2, 1, 0}},
		{ID: 5, Pattern: [LineReels]int{2, 1, 0, 1, 2}},
		{ID: 6, Pattern: [LineReels]int{0, 0, 1, 2, 2}},
		{ID: 7, Pattern: [LineReels]int{2, 2, 1, 0, 0}},
		{ID: 8, Pattern: [LineReels]int{1, 0, 0, 0, 1}},
		{ID: 9, Pattern: [LineReels]int{1, 2, 2, 2, 1}},
		{ID: 10, Pattern: [LineReels]int{0, 1, 1, 1, 0}},
		{ID: 11, Pattern: [LineReels]int{2, 1, 1, 1, 2}},
		{ID: 12, Pattern: [LineReels]int{1, 0, 1, 2, 1}},
		{ID: 13, Pattern: [LineReels]int{1, 2, 1, 0, 1}},
		{ID: 14, Pattern: [LineReels]int{0, 1, 0, 1, 0}},
		{ID: 15, Pattern: [LineReels]int{2, 1, 2, 1, 2}},
		{ID: 16, Pattern: [LineReels]int{1, 1, 0, 1, 1}},
		{ID: 17, Pattern: [LineReels]int{1, 1, 2, 1, 1}},
		{ID: 18, Pattern: [LineReels]int{0, 2, 0, 2, 0}},
		{ID: 19, Pattern: [LineReels]int{2, 0, 2, 0, 2}},
		{ID: 20, Pattern: [LineReels]int{0, 2, 2, 2, 0}},
	}
}
