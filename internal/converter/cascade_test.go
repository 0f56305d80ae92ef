package converter

import (
	"errors"
	"testing"

	"casino_client/internal/api/dto/cascade"
	"casino_client/internal/model"
	"casino_client/internal/replay"
)

// cascadeFixture - одна ступень: в колонке 0 взрываются две нижние ячейки
func cascadeFixture() (initial, final model.CascadeBoard, steps []model.CascadeStep) {
	initial = model.DefaultCascadeBoard()
	initial[5][0] = model.Sym6
	initial[6][0] = model.Sym6

	steps = []model.CascadeStep{{
		Index: 0,
		Clusters: []model.Cluster{{
			Symbol: model.Sym6,
			Cells:  []model.Position{{Row: 5, Col: 0}, {Row: 6, Col: 0}},
			Count:  2,
			Payout: 12,
		}},
		NewSymbols: []model.NewSymbol{
			{Position: model.Position{Row: 0, Col: 0}, Symbol: model.Scatter},
			{Position: model.Position{Row: 1, Col: 0}, Symbol: model.Sym3},
		},
	}}
	final = replay.Replay(initial, steps)
	return initial, final, steps
}

func TestToCascadeOutcomeReconstructs(t *testing.T) {
	initial, final, steps := cascadeFixture()
	resp := &cascade.SpinResponse{
		Board:            FromCascadeBoard(final),
		Cascades:         FromCascadeSteps(steps),
		TotalPayout:      12,
		Balance:          9992,
		AwardedFreeSpins: 0,
		FreeSpinsLeft:    0,
	}

	out, err := ToCascadeOutcome(resp)
	if err != nil {
		t.Fatalf("ToCascadeOutcome: %v", err)
	}
	if !out.Reconstructed {
		t.Fatalf("initial board should be reconstructed")
	}
	if out.InitialBoard != initial {
		t.Fatalf("initial differs at %v", replay.Diff(out.InitialBoard, initial))
	}
	if out.FinalBoard != final || len(out.Cascades) != 1 || out.Cascades[0].Clusters[0].Payout != 12 {
		t.Fatalf("outcome = %+v", out)
	}
}

func TestToCascadeOutcomeServerInitial(t *testing.T) {
	initial, final, steps := cascadeFixture()
	resp := &cascade.SpinResponse{
		InitialBoard: FromCascadeBoard(initial),
		Board:        FromCascadeBoard(final),
		Cascades:     FromCascadeSteps(steps),
	}

	out, err := ToCascadeOutcome(resp)
	if err != nil {
		t.Fatalf("ToCascadeOutcome: %v", err)
	}
	if out.Reconstructed || out.InitialBoard != initial {
		t.Fatalf("server initial board not used: %+v", out)
	}
}

func TestToCascadeOutcomeSortsSteps(t *testing.T) {
	final := model.DefaultCascadeBoard()
	resp := &cascade.SpinResponse{
		InitialBoard: FromCascadeBoard(final),
		Board:        FromCascadeBoard(final),
		Cascades: []cascade.Step{
			{CascadeIndex: 2},
			{CascadeIndex: 0},
			{CascadeIndex: 1, NewSymbols: []cascade.NewSymbol{{Position: cascade.Position{Row: 0, Col: 0}, Symbol: -1}}},
		},
	}

	out, err := ToCascadeOutcome(resp)
	if err != nil {
		t.Fatalf("ToCascadeOutcome: %v", err)
	}
	for i, s := range out.Cascades {
		if s.Index != i {
			t.Fatalf("step %d has index %d", i, s.Index)
		}
	}
	if len(out.Cascades[1].NewSymbols) != 0 {
		t.Fatalf("empty new symbol kept: %+v", out.Cascades[1].NewSymbols)
	}
}

func TestToCascadeOutcomeMalformed(t *testing.T) {
	_, final, _ := cascadeFixture()
	good := FromCascadeBoard(final)

	short := FromCascadeBoard(final)[:6]
	badCode := FromCascadeBoard(final)
	badCode[3][3] = 8
	withEmpty := FromCascadeBoard(final)
	withEmpty[0][0] = -1
	narrow := FromCascadeBoard(final)
	narrow[4] = narrow[4][:5]

	tests := []struct {
		name string
		resp *cascade.SpinResponse
		want error
	}{
		{name: "nil", resp: nil, want: ErrMalformedPayload},
		{name: "missing board", resp: &cascade.SpinResponse{}, want: ErrMalformedPayload},
		{name: "short board", resp: &cascade.SpinResponse{Board: short}, want: ErrMalformedPayload},
		{name: "narrow row", resp: &cascade.SpinResponse{Board: narrow}, want: ErrMalformedPayload},
		{name: "unknown code", resp: &cascade.SpinResponse{Board: badCode}, want: ErrUnknownSymbol},
		{name: "empty final cell", resp: &cascade.SpinResponse{Board: withEmpty}, want: ErrMalformedPayload},
		{
			name: "index gap",
			resp: &cascade.SpinResponse{Board: good, Cascades: []cascade.Step{{CascadeIndex: 0}, {CascadeIndex: 2}}},
			want: ErrMalformedPayload,
		},
		{
			name: "duplicate index",
			resp: &cascade.SpinResponse{Board: good, Cascades: []cascade.Step{{CascadeIndex: 0}, {CascadeIndex: 0}}},
			want: ErrMalformedPayload,
		},
		{
			name: "cell out of bounds",
			resp: &cascade.SpinResponse{Board: good, Cascades: []cascade.Step{{
				Clusters: []cascade.Cluster{{Symbol: 1, Cells: []cascade.Position{{Row: 7, Col: 0}}}},
			}}},
			want: ErrMalformedPayload,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToCascadeOutcome(tt.resp)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestToCascadeOutcomeFallsBackToFinalBoard(t *testing.T) {
	_, final, steps := cascadeFixture()

	// Ячейка кластера в середине колонки, новый символ пришел снизу
	bad := []cascade.Step{{
		CascadeIndex: 0,
		Clusters: []cascade.Cluster{{
			Symbol: CascadeSymbolCode(model.Sym2),
			Cells:  []cascade.Position{{Row: 3, Col: 0}},
			Count:  1,
			Payout: 5,
		}},
		NewSymbols: []cascade.NewSymbol{{
			Position: cascade.Position{Row: 6, Col: 0},
			Symbol:   CascadeSymbolCode(model.Sym4),
		}},
	}}

	tests := []struct {
		name  string
		steps []cascade.Step
	}{
		{name: "new symbol below cluster", steps: bad},
		{name: "cluster without new symbols", steps: []cascade.Step{{Clusters: FromCascadeSteps(steps)[0].Clusters}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &cascade.SpinResponse{
				Board:            FromCascadeBoard(final),
				Cascades:         tt.steps,
				TotalPayout:      5,
				Balance:          9995,
				AwardedFreeSpins: 10,
				FreeSpinsLeft:    10,
				ScatterCount:     3,
			}
			out, err := ToCascadeOutcome(resp)
			if err != nil {
				t.Fatalf("ToCascadeOutcome: %v", err)
			}
			if !errors.Is(out.ReconstructErr, replay.ErrInconsistentCascade) {
				t.Fatalf("ReconstructErr = %v", out.ReconstructErr)
			}
			if out.Reconstructed || len(out.Cascades) != 0 {
				t.Fatalf("steps kept after failed reconstruction: %+v", out)
			}
			if out.InitialBoard != final || out.FinalBoard != final {
				t.Fatalf("boards differ from server board")
			}
			if out.Balance != 9995 || out.TotalPayout != 5 || out.FreeSpins.Awarded != 10 || out.ScatterCount != 3 {
				t.Fatalf("outcome = %+v", out)
			}
		})
	}
}

func TestCascadeSymbolCodes(t *testing.T) {
	for code := -1; code <= 7; code++ {
		sym, err := ParseCascadeSymbol(code)
		if err != nil {
			t.Fatalf("ParseCascadeSymbol(%d): %v", code, err)
		}
		if got := CascadeSymbolCode(sym); got != code {
			t.Fatalf("code %d -> %v -> %d", code, sym, got)
		}
	}
	if _, err := ParseCascadeSymbol(-2); !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("code -2 accepted")
	}
}
