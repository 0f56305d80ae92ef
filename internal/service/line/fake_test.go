package line

import (
	"context"
	"errors"
	"sync"

	"casino_client/internal/api/dto/line"
	"casino_client/internal/model"
)

var errNetwork = errors.New("connection refused")

// fakeAPI отдает ответы по очереди. Если задан gate, вызов ждет его закрытия.
type fakeAPI struct {
	mu        sync.Mutex
	spins     []*line.SpinResponse
	bonus     *line.SpinResponse
	err       error
	spinCalls int
	buyCalls  int
	bets      []int

	called chan struct{}
	gate   chan struct{}
	onCall func()
}

func (f *fakeAPI) wait() {
	if f.onCall != nil {
		f.onCall()
	}
	if f.called != nil {
		f.called <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
}

func (f *fakeAPI) Spin(_ context.Context, bet int) (*line.SpinResponse, error) {
	f.mu.Lock()
	f.spinCalls++
	f.bets = append(f.bets, bet)
	f.mu.Unlock()

	f.wait()

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

func (f *fakeAPI) BuyBonus(_ context.Context, bet int) (*line.SpinResponse, error) {
	f.mu.Lock()
	f.buyCalls++
	f.bets = append(f.bets, bet)
	f.mu.Unlock()

	f.wait()

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.bonus, nil
}

func (f *fakeAPI) calls() (spin, buy int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.spinCalls, f.buyCalls
}

type fakePay struct {
	mu       sync.Mutex
	balance  int
	deposits []int
	err      error
}

func (f *fakePay) Balance(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balance, f.err
}

func (f *fakePay) Deposit(_ context.Context, amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.deposits = append(f.deposits, amount)
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

func (r *roundLog) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rounds)
}

func plainBoard() [5][3]string {
	return [5][3]string{
		{"S1", "S2", "S3"},
		{"S4", "S5", "S6"},
		{"S7", "S8", "S1"},
		{"S2", "S3", "S4"},
		{"S5", "S6", "S7"},
	}
}
