package converter

import (
	"fmt"

	"casino_client/internal/api/dto/line"
	"casino_client/internal/model"
)

// ToLineOutcome переводит ответ /line/spin и /line/buy-bonus во внутреннее представление.
// Позиции выигрышных линий восстанавливаются по шаблонам paylines.
func ToLineOutcome(resp *line.SpinResponse, paylines []model.Payline) (model.LineOutcome, error) {
	if resp == nil {
		return model.LineOutcome{}, fmt.Errorf("empty line response: %w", ErrMalformedPayload)
	}

	var out model.LineOutcome
	for reel := 0; reel < model.LineReels; reel++ {
		for row := 0; row < model.LineRows; row++ {
			sym, err := ParseLineSymbol(resp.Board[reel][row])
			if err != nil {
				return model.LineOutcome{}, fmt.Errorf("board[%d][%d]: %w", reel, row, err)
			}
			out.Board[reel][row] = sym
		}
	}

	patterns := make(map[int]model.Payline, len(paylines))
	for _, p := range paylines {
		patterns[p.ID] = p
	}

	out.WinningLines = make([]model.WinningLine, 0, len(resp.LineWins)+1)
	for _, w := range resp.LineWins {
		sym, err := ParseLineSymbol(w.Symbol)
		if err != nil {
			return model.LineOutcome{}, fmt.Errorf("line %d: %w", w.Line, err)
		}
		out.WinningLines = append(out.WinningLines, model.WinningLine{
			LineIndex: w.Line,
			Symbol:    sym,
			Count:     w.Count,
			WinAmount: w.Payout,
			Positions: linePositions(patterns, w.Line, w.Count),
		})
	}

	if resp.ScatterCount >= 3 && resp.ScatterPayout > 0 {
		out.WinningLines = append(out.WinningLines, scatterLine(out.Board, resp.ScatterCount, resp.ScatterPayout))
	}

	out.ScatterCount = resp.ScatterCount
	out.ScatterPayout = resp.ScatterPayout
	out.TotalPayout = resp.TotalPayout
	out.Balance = resp.Balance
	out.FreeSpins = model.FreeSpinInfo{
		Awarded:    resp.AwardedFreeSpins,
		Left:       resp.FreeSpinCount,
		InFreeSpin: resp.InFreeSpin,
	}
	return out, nil
}

// linePositions проходит шаблон линии по первым count барабанам.
// Неизвестная линия дает пустой список, ряды вне [0,2] пропускаются.
func linePositions(patterns map[int]model.Payline, id, count int) [][2]int {
	p, ok := patterns[id]
	if !ok {
		return [][2]int{}
	}
	n := max(0, min(count, model.LineReels))
	res := make([][2]int, 0, n)
	for reel := 0; reel < n; reel++ {
		row := p.Pattern[reel]
		if row < 0 || row >= model.LineRows {
			continue
		}
		res = append(res, [2]int{reel, row})
	}
	return res
}

func scatterLine(board model.LineBoard, count, payout int) model.WinningLine {
	var positions [][2]int
	for reel := 0; reel < model.LineReels; reel++ {
		for row := 0; row < model.LineRows; row++ {
			if board[reel][row] == model.Scatter {
				positions = append(positions, [2]int{reel, row})
			}
		}
	}
	return model.WinningLine{
		LineIndex: model.ScatterLineIndex,
		Symbol:    model.Scatter,
		Count:     count,
		WinAmount: payout,
		Positions: positions,
	}
}

// ToLineSpinRequest - тело запроса спина
func ToLineSpinRequest(bet int) line.SpinRequest {
	return line.SpinRequest{Bet: bet}
}

func ToLineBonusRequest(bet int) line.BonusRequest {
	return line.BonusRequest{Bet: bet}
}

// FromLineBoard кодирует доску в строковые коды
func FromLineBoard(board model.LineBoard) [5][3]string {
	var res [5][3]string
	for reel := 0; reel < model.LineReels; reel++ {
		for row := 0; row < model.LineRows; row++ {
			res[reel][row] = LineSymbolCode(board[reel][row])
		}
	}
	return res
}
