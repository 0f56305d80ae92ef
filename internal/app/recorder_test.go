package app

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"casino_client/internal/model"
	"casino_client/internal/repository/stats_repo"
)

type fakeRounds struct {
	saved []model.Round
	err   error
}

func (f *fakeRounds) Save(_ context.Context, round model.Round) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, round)
	return nil
}

func (f *fakeRounds) Totals(context.Context, string) (model.RoundTotals, error) {
	return model.RoundTotals{Rounds: len(f.saved)}, nil
}

func TestRecorder(t *testing.T) {
	stats := stats_repo.NewStatsRepository(10)
	rounds := &fakeRounds{}
	r := newRecorder(stats, rounds)

	r.ObserveRound(model.Round{ID: "a", Game: "line", Bet: 10, Payout: 25, BoardValid: true})
	r.ObserveRound(model.Round{ID: "b", Game: "line", Bet: 10, InFreeSpin: true, Payout: 5, BoardValid: true})

	if len(rounds.saved) != 2 || rounds.saved[1].ID != "b" {
		t.Fatalf("saved = %+v", rounds.saved)
	}
	st := stats.Stats("line")
	if st.Rounds != 2 || st.TotalBet != 10 || st.TotalPayout != 30 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestRecorderSaveFailure(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	stats := stats_repo.NewStatsRepository(10)
	r := newRecorder(stats, &fakeRounds{err: errors.New("db down")})
	r.ObserveRound(model.Round{ID: "a", Game: "cascade", Bet: 20, BoardValid: false})

	if stats.Stats("cascade").Rounds != 1 {
		t.Fatalf("round not counted when journal fails")
	}
	last := hook.LastEntry()
	if last == nil || last.Level != logrus.ErrorLevel || last.Message != "failed to save round" {
		t.Fatalf("last log entry = %+v", last)
	}
}

func TestRecorderWithoutJournal(t *testing.T) {
	stats := stats_repo.NewStatsRepository(10)
	newRecorder(stats, nil).ObserveRound(model.Round{ID: "a", Game: "line", Bet: 1, BoardValid: true})
	if stats.Stats("line").Rounds != 1 {
		t.Fatalf("round not counted")
	}
}
