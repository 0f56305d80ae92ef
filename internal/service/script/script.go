// Package script - тестовый сервер: отдает записанные ответы игр по очереди
// и сам ведет баланс игрока.
package script

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"casino_client/internal/api/dto/cascade"
	"casino_client/internal/api/dto/line"
	"casino_client/internal/converter"
	"casino_client/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Script - файл с записанными ответами сервера. Поле balance в ответах игнорируется.
type Script struct {
	Loop      bool                   `json:"loop"` // После последнего ответа очередь начинается заново
	Line      []line.SpinResponse    `json:"line"`
	LineBonus []line.SpinResponse    `json:"line_bonus"`
	Cascade   []cascade.SpinResponse `json:"cascade"`
}

func LoadScript(path string, paylines []model.Payline) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScript(data, paylines)
}

// ParseScript разбирает и проверяет каждый ответ так же, как его проверит клиент
func ParseScript(data []byte, paylines []model.Payline) (*Script, error) {
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	for i := range s.Line {
		if _, err := converter.ToLineOutcome(&s.Line[i], paylines); err != nil {
			return nil, fmt.Errorf("line[%d]: %w", i, err)
		}
	}
	for i := range s.LineBonus {
		if _, err := converter.ToLineOutcome(&s.LineBonus[i], paylines); err != nil {
			return nil, fmt.Errorf("line_bonus[%d]: %w", i, err)
		}
	}
	for i := range s.Cascade {
		out, err := converter.ToCascadeOutcome(&s.Cascade[i])
		if err != nil {
			return nil, fmt.Errorf("cascade[%d]: %w", i, err)
		}
		if out.ReconstructErr != nil {
			return nil, fmt.Errorf("cascade[%d]: %w", i, out.ReconstructErr)
		}
	}
	return &s, nil
}

type queue[T any] struct {
	items []T
	next  int
	loop  bool
}

func (q *queue[T]) peek() (T, bool) {
	if q.next >= len(q.items) && q.loop {
		q.next = 0
	}
	if q.next >= len(q.items) {
		var zero T
		return zero, false
	}
	return q.items[q.next], true
}

func (q *queue[T]) pop() {
	q.next++
}
