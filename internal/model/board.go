package model

const (
	// Барабаны линейной игры
	LineReels = 5
	// Ряды линейной игры
	LineRows = 3
	// Размер поля каскадной игры (квадрат)
	CascadeSize = 7
)

// LineBoard - поле 5x3, адресация [reel][row]
type LineBoard [LineReels][LineRows]Symbol

// CascadeBoard - поле 7x7, адресация [row][col]
type CascadeBoard [CascadeSize][CascadeSize]Symbol

// Position - ячейка каскадного поля
type Position struct {
	Row int
	Col int
}

// InBounds проверяет, что ячейка лежит внутри поля 7x7
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < CascadeSize && p.Col >= 0 && p.Col < CascadeSize
}

// Full возвращает true, если на поле нет пустых ячеек
func (b CascadeBoard) Full() bool {
	for r := 0; r < CascadeSize; r++ {
		for c := 0; c < CascadeSize; c++ {
			if b[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// At возвращает символ в ячейке
func (b *CascadeBoard) At(p Position) Symbol {
	return b[p.Row][p.Col]
}

// Set записывает символ в ячейку
func (b *CascadeBoard) Set(p Position, s Symbol) {
	b[p.Row][p.Col] = s
}

// DefaultLineBoard - статичные барабаны до первого спина
func DefaultLineBoard() LineBoard {
	return LineBoard{
		{Sym1, Sym5, Sym3},
		{Sym7, Sym2, Sym6},
		{Sym4, Sym8, Sym1},
		{Sym6, Sym3, Sym7},
		{Sym2, Sym4, Sym8},
	}
}

// DefaultCascadeBoard - статичное поле до первого спина.
// Заполнено полностью, кластеров (5+ соседних) на нем нет.
func DefaultCascadeBoard() CascadeBoard {
	row := [2][CascadeSize]Symbol{
		{Sym1, Sym2, Sym3, Sym4, Sym5, Sym6, Sym7},
		{Sym4, Sym5, Sym6, Sym7, Sym1, Sym2, Sym3},
	}
	var b CascadeBoard
	for r := 0; r < CascadeSize; r++ {
		b[r] = row[r%2]
	}
	return b
}
