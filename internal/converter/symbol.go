package converter

import (
	"errors"
	"fmt"

	"casino_client/internal/model"
)

var (
	ErrUnknownSymbol    = errors.New("unknown symbol code")
	ErrMalformedPayload = errors.New("malformed server payload")
)

// Коды символов линейной игры
var lineCodes = map[string]model.Symbol{
	"S1": model.Sym1,
	"S2": model.Sym2,
	"S3": model.Sym3,
	"S4": model.Sym4,
	"S5": model.Sym5,
	"S6": model.Sym6,
	"S7": model.Sym7,
	"S8": model.Sym8,
	"B":  model.Scatter,
	"W":  model.Wild,
}

// Коды каскадной игры: -1 пусто, 0-6 обычные, 7 скаттер
const (
	cascadeEmpty   = -1
	cascadeScatter = 7
)

// ParseLineSymbol переводит строковый код в символ. Неизвестный код - ошибка.
func ParseLineSymbol(code string) (model.Symbol, error) {
	sym, ok := lineCodes[code]
	if !ok {
		return model.Empty, fmt.Errorf("%q: %w", code, ErrUnknownSymbol)
	}
	return sym, nil
}

// LineSymbolCode - обратное преобразование (для офлайн-доски и тестового сервера)
func LineSymbolCode(sym model.Symbol) string {
	for code, s := range lineCodes {
		if s == sym {
			return code
		}
	}
	return ""
}

// ParseCascadeSymbol переводит числовой код каскадной доски
func ParseCascadeSymbol(code int) (model.Symbol, error) {
	switch {
	case code == cascadeEmpty:
		return model.Empty, nil
	case code == cascadeScatter:
		return model.Scatter, nil
	case code >= 0 && code < cascadeScatter:
		return model.Sym1 + model.Symbol(code), nil
	}
	return model.Empty, fmt.Errorf("%d: %w", code, ErrUnknownSymbol)
}

// CascadeSymbolCode - обратное преобразование для каскадной доски
func CascadeSymbolCode(sym model.Symbol) int {
	switch {
	case sym == model.Scatter:
		return cascadeScatter
	case sym >= model.Sym1 && sym <= model.Sym7:
		return int(sym - model.Sym1)
	}
	return cascadeEmpty
}
