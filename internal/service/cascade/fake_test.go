package cascade

import (
	"context"
	"errors"
	"sync"

	"casino_client/internal/api/dto/cascade"
	"casino_client/internal/converter"
	"casino_client/internal/model"
	"casino_client/internal/replay"
)

var errNetwork = errors.New("connection refused")

type fakeAPI struct {
	mu        sync.Mutex
	spins     []*cascade.SpinResponse
	err       error
	buyErr    error
	spinCalls int
	amounts   []int

	called chan struct{}
	gate   chan struct{}
}

func (f *fakeAPI) Spin(_ context.Context, _ int) (*cascade.SpinResponse, error) {
	f.mu.Lock()
	f.spinCalls++
	f.mu.Unlock()

	if f.called != nil {
		f.called <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if len(f.spins) == 0 {
		return nil, errors.New("no scripted spin")
	}
	resp := f.spins[0]
	f.spins = f.spins[1:]
	return resp, nil
}

func (f *fakeAPI) BuyBonus(_ context.Context, amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.amounts = append(f.amounts, amount)
	return f.buyErr
}

type fakePay struct {
	balance int
	err     error
}

func (f *fakePay) Balance(context.Context) (int, error) {
	return f.balance, f.err
}

func (f *fakePay) Deposit(_ context.Context, amount int) error {
	if f.err != nil {
		return f.err
	}
	f.balance += amount
	return nil
}

type roundLog struct {
	mu     sync.Mutex
	rounds []model.Round
}

func (r *roundLog) ObserveRound(round model.Round) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rounds = append(r.rounds, round)
}

// twoStepRound - раунд из двух шагов: в колонке 0 взрываются две нижние ячейки,
// затем в колонке 3 одна нижняя
func twoStepRound() (initial, final model.CascadeBoard, steps []model.CascadeStep) {
	initial = model.DefaultCascadeBoard()
	initial[5][0] = model.Sym6
	initial[6][0] = model.Sym6

	steps = []model.CascadeStep{
		{
			Index: 0,
			Clusters: []model.Cluster{{
				Symbol: model.Sym6,
				Cells:  []model.Position{{Row: 5, Col: 0}, {Row: 6, Col: 0}},
				Count:  2,
				Payout: 10,
			}},
			NewSymbols: []model.NewSymbol{
				{Position: model.Position{Row: 0, Col: 0}, Symbol: model.Sym2},
				{Position: model.Position{Row: 1, Col: 0}, Symbol: model.Scatter},
			},
		},
		{
			Index: 1,
			Clusters: []model.Cluster{{
				Symbol: initial[6][3],
				Cells:  []model.Position{{Row: 6, Col: 3}},
				Count:  1,
				Payout: 20,
			}},
			NewSymbols: []model.NewSymbol{
				{Position: model.Position{Row: 0, Col: 3}, Symbol: model.Sym7},
			},
		},
	}
	final = replay.Replay(initial, steps)
	return initial, final, steps
}

func spinResponse(final model.CascadeBoard, steps []model.CascadeStep) *cascade.SpinResponse {
	return &cascade.SpinResponse{
		Board:            converter.FromCascadeBoard(final),
		Cascades:         converter.FromCascadeSteps(steps),
		TotalPayout:      30,
		Balance:          10010,
		ScatterCount:     3,
		AwardedFreeSpins: 10,
		FreeSpinsLeft:    10,
	}
}
