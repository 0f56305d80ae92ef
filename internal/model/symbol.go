package model

import "fmt"

// Symbol - тип символа на барабане. Нулевое значение - пустая ячейка.
type Symbol uint8

const (
	// Empty - пустая ячейка посреди каскада (не символ)
	Empty Symbol = iota
	Sym1         // Самый дешевый
	Sym2
	Sym3
	Sym4
	Sym5
	Sym6
	Sym7
	Sym8 // Самый дорогой
	Scatter
	Wild
)

var symbolNames = [...]string{
	Empty:   "empty",
	Sym1:    "symbol_1",
	Sym2:    "symbol_2",
	Sym3:    "symbol_3",
	Sym4:    "symbol_4",
	Sym5:    "symbol_5",
	Sym6:    "symbol_6",
	Sym7:    "symbol_7",
	Sym8:    "symbol_8",
	Scatter: "bonus",
	Wild:    "wild",
}

func (s Symbol) String() string {
	if int(s) < len(symbolNames) {
		return symbolNames[s]
	}
	return fmt.Sprintf("symbol(%d)", uint8(s))
}

// Ordinary - обычный символ (не скаттер, не вайлд, не пусто)
func (s Symbol) Ordinary() bool {
	return s >= Sym1 && s <= Sym8
}
