package service

import (
	"math/rand/v2"
	"time"

	"casino_client/internal/model"
)

// Шанс скаттера в ячейке оффлайн-доски
const offlineScatterChance = 0.02

// RandomSource - источник случайности для оффлайн-режима
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// NewSeededRNG - воспроизводимый генератор (тесты, демо)
func NewSeededRNG(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, 0))
}

// NewRNG - генератор с посевом от текущего времени
func NewRNG() RandomSource {
	return NewSeededRNG(uint64(time.Now().UnixNano()))
}

// RandomLineBoard - равномерная доска 5x3 из обычных символов со скаттерами
func RandomLineBoard(rng RandomSource) model.LineBoard {
	var b model.LineBoard
	for reel := 0; reel < model.LineReels; reel++ {
		for row := 0; row < model.LineRows; row++ {
			b[reel][row] = randomSymbol(rng, model.Sym8)
		}
	}
	return b
}

// RandomCascadeBoard - равномерная доска 7x7 (символы 1-7 и скаттер)
func RandomCascadeBoard(rng RandomSource) model.CascadeBoard {
	var b model.CascadeBoard
	for r := 0; r < model.CascadeSize; r++ {
		for c := 0; c < model.CascadeSize; c++ {
			b[r][c] = randomSymbol(rng, model.Sym7)
		}
	}
	return b
}

func randomSymbol(rng RandomSource, highest model.Symbol) model.Symbol {
	if rng.Float64() < offlineScatterChance {
		return model.Scatter
	}
	return model.Sym1 + model.Symbol(rng.IntN(int(highest-model.Sym1)+1))
}
