// Package replay применяет шаги каскада к доске 7x7, восстанавливает начальную доску
// по финальной и сверяет результат с доской сервера.
package replay

import (
	"errors"
	"fmt"

	"casino_client/internal/model"
)

var ErrInconsistentCascade = errors.New("inconsistent cascade step")

const size = model.CascadeSize

// Collapse сдвигает символы каждой колонки вниз, сохраняя порядок. Верх колонки становится пустым.
func Collapse(board *model.CascadeBoard) {
	for c := 0; c < size; c++ {
		stack := make([]model.Symbol, 0, size)
		for r := 0; r < size; r++ {
			if board[r][c] != model.Empty {
				stack = append(stack, board[r][c])
			}
		}
		for r := 0; r < size; r++ {
			board[r][c] = model.Empty
		}
		for i, sym := range stack {
			board[size-len(stack)+i][c] = sym
		}
	}
}

// ApplyStep - один шаг каскада: взрыв кластеров, гравитация, падение новых символов.
// Ячейки вне поля пропускаются.
func ApplyStep(board model.CascadeBoard, step model.CascadeStep) model.CascadeBoard {
	for _, cl := range step.Clusters {
		for _, p := range cl.Cells {
			if p.InBounds() {
				board.Set(p, model.Empty)
			}
		}
	}

	Collapse(&board)

	for _, ns := range step.NewSymbols {
		if ns.Position.InBounds() && ns.Symbol != model.Empty {
			board.Set(ns.Position, ns.Symbol)
		}
	}
	return board
}

// Replay применяет шаги по порядку
func Replay(initial model.CascadeBoard, steps []model.CascadeStep) model.CascadeBoard {
	board := initial
	for _, step := range steps {
		board = ApplyStep(board, step)
	}
	return board
}

// Reconstruct восстанавливает доску до всех каскадов, проходя шаги в обратном порядке.
//
// Для каждой колонки: новые символы должны занимать ровно верхние k рядов,
// где k - число ячеек колонки, освобожденных кластерами. Оставшиеся символы
// возвращаются в неосвобожденные ячейки (сверху вниз, в том же порядке),
// затем освобожденные ячейки получают символы своих кластеров.
func Reconstruct(final model.CascadeBoard, steps []model.CascadeStep) (model.CascadeBoard, error) {
	board := final
	for i := len(steps) - 1; i >= 0; i-- {
		prev, err := undoStep(board, steps[i])
		if err != nil {
			return model.CascadeBoard{}, fmt.Errorf("step %d: %w", steps[i].Index, err)
		}
		board = prev
	}
	return board, nil
}

func undoStep(board model.CascadeBoard, step model.CascadeStep) (model.CascadeBoard, error) {
	var (
		vacated [size][size]bool
		dropped [size][size]bool
	)

	for _, cl := range step.Clusters {
		if cl.Symbol == model.Empty {
			return board, fmt.Errorf("empty cluster symbol: %w", ErrInconsistentCascade)
		}
		for _, p := range cl.Cells {
			if !p.InBounds() {
				return board, fmt.Errorf("cluster cell (%d,%d) out of bounds: %w", p.Row, p.Col, ErrInconsistentCascade)
			}
			vacated[p.Row][p.Col] = true
		}
	}
	for _, ns := range step.NewSymbols {
		if ns.Symbol == model.Empty {
			continue
		}
		p := ns.Position
		if !p.InBounds() {
			return board, fmt.Errorf("new symbol (%d,%d) out of bounds: %w", p.Row, p.Col, ErrInconsistentCascade)
		}
		if dropped[p.Row][p.Col] {
			return board, fmt.Errorf("new symbol (%d,%d) repeated: %w", p.Row, p.Col, ErrInconsistentCascade)
		}
		dropped[p.Row][p.Col] = true
	}

	var prev model.CascadeBoard
	for c := 0; c < size; c++ {
		k := 0
		for r := 0; r < size; r++ {
			if vacated[r][c] {
				k++
			}
		}
		// Новые символы падают в верхние k рядов
		for r := 0; r < size; r++ {
			if dropped[r][c] != (r < k) {
				return board, fmt.Errorf("column %d: new symbols do not fill top %d rows: %w", c, k, ErrInconsistentCascade)
			}
		}

		survivors := make([]model.Symbol, 0, size-k)
		for r := k; r < size; r++ {
			if board[r][c] == model.Empty {
				return board, fmt.Errorf("column %d: empty cell at row %d: %w", c, r, ErrInconsistentCascade)
			}
			survivors = append(survivors, board[r][c])
		}

		j := 0
		for r := 0; r < size; r++ {
			if vacated[r][c] {
				continue
			}
			prev[r][c] = survivors[j]
			j++
		}
	}

	for _, cl := range step.Clusters {
		for _, p := range cl.Cells {
			prev.Set(p, cl.Symbol)
		}
	}
	return prev, nil
}

// Diff возвращает ячейки, в которых доски расходятся (построчно)
func Diff(got, want model.CascadeBoard) []model.Position {
	var res []model.Position
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if got[r][c] != want[r][c] {
				res = append(res, model.Position{Row: r, Col: c})
			}
		}
	}
	return res
}

// Validate сверяет доску после анимации с финальной доской сервера
func Validate(got, final model.CascadeBoard) model.Validation {
	mismatches := Diff(got, final)
	return model.Validation{Valid: len(mismatches) == 0, Mismatches: mismatches}
}
