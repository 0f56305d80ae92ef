package service

import (
	"testing"

	"casino_client/internal/model"
)

func TestRandomBoards(t *testing.T) {
	rng := NewSeededRNG(7)
	scatters := 0
	for i := 0; i < 200; i++ {
		lb := RandomLineBoard(rng)
		for _, reel := range lb {
			for _, sym := range reel {
				if sym == model.Scatter {
					scatters++
					continue
				}
				if !sym.Ordinary() {
					t.Fatalf("line board has %v", sym)
				}
			}
		}

		cb := RandomCascadeBoard(rng)
		if !cb.Full() {
			t.Fatalf("cascade board has empty cells")
		}
		for _, row := range cb {
			for _, sym := range row {
				if sym == model.Sym8 || sym == model.Wild {
					t.Fatalf("cascade board has %v", sym)
				}
			}
		}
	}
	// 200 * 15 ячеек, ожидаем около 60 скаттеров
	if scatters == 0 || scatters > 200 {
		t.Fatalf("scatters = %d", scatters)
	}
}

func TestSeededRNGRepeats(t *testing.T) {
	a := RandomLineBoard(NewSeededRNG(11))
	b := RandomLineBoard(NewSeededRNG(11))
	if a != b {
		t.Fatalf("same seed gave different boards")
	}
}
