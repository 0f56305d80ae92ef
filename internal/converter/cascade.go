package converter

import (
	"fmt"
	"sort"

	"casino_client/internal/api/dto/cascade"
	"casino_client/internal/model"
	"casino_client/internal/replay"
)

// ToCascadeOutcome переводит ответ /cascade/spin во внутреннее представление.
// Если сервер не прислал начальную доску, она восстанавливается по финальной и шагам.
func ToCascadeOutcome(resp *cascade.SpinResponse) (model.CascadeOutcome, error) {
	if resp == nil {
		return model.CascadeOutcome{}, fmt.Errorf("empty cascade response: %w", ErrMalformedPayload)
	}

	final, err := ToCascadeBoard(resp.Board)
	if err != nil {
		return model.CascadeOutcome{}, fmt.Errorf("board: %w", err)
	}
	if !final.Full() {
		return model.CascadeOutcome{}, fmt.Errorf("final board has empty cells: %w", ErrMalformedPayload)
	}

	steps, err := toCascadeSteps(resp.Cascades)
	if err != nil {
		return model.CascadeOutcome{}, err
	}

	out := model.CascadeOutcome{
		FinalBoard:   final,
		Cascades:     steps,
		TotalPayout:  resp.TotalPayout,
		Balance:      resp.Balance,
		ScatterCount: resp.ScatterCount,
		FreeSpins: model.FreeSpinInfo{
			Awarded:    resp.AwardedFreeSpins,
			Left:       resp.FreeSpinsLeft,
			InFreeSpin: resp.InFreeSpin,
		},
	}

	if len(resp.InitialBoard) > 0 {
		out.InitialBoard, err = ToCascadeBoard(resp.InitialBoard)
		if err != nil {
			return model.CascadeOutcome{}, fmt.Errorf("initial board: %w", err)
		}
		if !out.InitialBoard.Full() {
			return model.CascadeOutcome{}, fmt.Errorf("initial board has empty cells: %w", ErrMalformedPayload)
		}
		return out, nil
	}

	out.InitialBoard, err = replay.Reconstruct(final, steps)
	if err != nil {
		// Раунд уже рассчитан сервером: показываем финальную доску без анимации
		out.InitialBoard = final
		out.Cascades = nil
		out.ReconstructErr = err
		return out, nil
	}
	out.Reconstructed = true
	return out, nil
}

// ToCascadeBoard проверяет размер 7x7 и коды символов
func ToCascadeBoard(rows [][]int) (model.CascadeBoard, error) {
	var b model.CascadeBoard
	if len(rows) != model.CascadeSize {
		return b, fmt.Errorf("%d rows: %w", len(rows), ErrMalformedPayload)
	}
	for r, row := range rows {
		if len(row) != model.CascadeSize {
			return b, fmt.Errorf("row %d has %d cells: %w", r, len(row), ErrMalformedPayload)
		}
		for c, code := range row {
			sym, err := ParseCascadeSymbol(code)
			if err != nil {
				return b, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
			b[r][c] = sym
		}
	}
	return b, nil
}

// FromCascadeBoard кодирует доску в числовые коды
func FromCascadeBoard(b model.CascadeBoard) [][]int {
	rows := make([][]int, model.CascadeSize)
	for r := range rows {
		rows[r] = make([]int, model.CascadeSize)
		for c := range rows[r] {
			rows[r][c] = CascadeSymbolCode(b[r][c])
		}
	}
	return rows
}

// toCascadeSteps сортирует шаги по cascade_index. Индексы должны идти 0..n-1 без пропусков.
func toCascadeSteps(wire []cascade.Step) ([]model.CascadeStep, error) {
	sorted := make([]cascade.Step, len(wire))
	copy(sorted, wire)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CascadeIndex < sorted[j].CascadeIndex
	})

	steps := make([]model.CascadeStep, 0, len(sorted))
	for i, w := range sorted {
		if w.CascadeIndex != i {
			return nil, fmt.Errorf("cascade index %d at position %d: %w", w.CascadeIndex, i, ErrMalformedPayload)
		}
		step := model.CascadeStep{Index: i}

		for _, cl := range w.Clusters {
			sym, err := ParseCascadeSymbol(cl.Symbol)
			if err != nil {
				return nil, fmt.Errorf("cascade %d cluster: %w", i, err)
			}
			if sym == model.Empty {
				return nil, fmt.Errorf("cascade %d: empty cluster symbol: %w", i, ErrMalformedPayload)
			}
			cells := make([]model.Position, 0, len(cl.Cells))
			for _, p := range cl.Cells {
				pos := model.Position{Row: p.Row, Col: p.Col}
				if !pos.InBounds() {
					return nil, fmt.Errorf("cascade %d: cell (%d,%d) out of bounds: %w", i, p.Row, p.Col, ErrMalformedPayload)
				}
				cells = append(cells, pos)
			}
			step.Clusters = append(step.Clusters, model.Cluster{
				Symbol:     sym,
				Cells:      cells,
				Count:      cl.Count,
				Payout:     cl.Payout,
				Multiplier: cl.Multiplier,
			})
		}

		for _, ns := range w.NewSymbols {
			sym, err := ParseCascadeSymbol(ns.Symbol)
			if err != nil {
				return nil, fmt.Errorf("cascade %d new symbol: %w", i, err)
			}
			if sym == model.Empty {
				continue
			}
			pos := model.Position{Row: ns.Position.Row, Col: ns.Position.Col}
			if !pos.InBounds() {
				return nil, fmt.Errorf("cascade %d: new symbol (%d,%d) out of bounds: %w", i, pos.Row, pos.Col, ErrMalformedPayload)
			}
			step.NewSymbols = append(step.NewSymbols, model.NewSymbol{Position: pos, Symbol: sym})
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// FromCascadeSteps кодирует шаги в формат ответа
func FromCascadeSteps(steps []model.CascadeStep) []cascade.Step {
	res := make([]cascade.Step, len(steps))
	for i, s := range steps {
		w := cascade.Step{CascadeIndex: s.Index}
		for _, cl := range s.Clusters {
			cells := make([]cascade.Position, len(cl.Cells))
			for j, p := range cl.Cells {
				cells[j] = cascade.Position{Row: p.Row, Col: p.Col}
			}
			w.Clusters = append(w.Clusters, cascade.Cluster{
				Symbol:     CascadeSymbolCode(cl.Symbol),
				Cells:      cells,
				Count:      cl.Count,
				Payout:     cl.Payout,
				Multiplier: cl.Multiplier,
			})
		}
		for _, ns := range s.NewSymbols {
			w.NewSymbols = append(w.NewSymbols, cascade.NewSymbol{
				Position: cascade.Position{Row: ns.Position.Row, Col: ns.Position.Col},
				Symbol:   CascadeSymbolCode(ns.Symbol),
			})
		}
		res[i] = w
	}
	return res
}

func ToCascadeSpinRequest(bet int) cascade.SpinRequest {
	return cascade.SpinRequest{Bet: bet}
}

func ToCascadeBonusRequest(amount int) cascade.BonusRequest {
	return cascade.BonusRequest{Amount: amount}
}
