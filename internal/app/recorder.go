package app

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"casino_client/internal/model"
	"casino_client/internal/repository"
)

const saveTimeout = 5 * time.Second

// recorder пишет завершенные раунды в статистику и, если есть база, в журнал
type recorder struct {
	stats  repository.StatsRepository
	rounds repository.RoundRepository
}

func newRecorder(stats repository.StatsRepository, rounds repository.RoundRepository) *recorder {
	return &recorder{stats: stats, rounds: rounds}
}

func (r *recorder) ObserveRound(round model.Round) {
	r.stats.Record(round)

	fields := log.Fields{
		"game":    round.Game,
		"round":   round.ID,
		"bet":     round.Bet,
		"payout":  round.Payout,
		"balance": round.Balance,
	}
	if round.InFreeSpin {
		fields["free_spins_left"] = round.FreeSpinsLeft
	}
	if !round.BoardValid {
		fields["board_valid"] = false
	}
	log.WithFields(fields).Info("round finished")

	if r.rounds == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := r.rounds.Save(ctx, round); err != nil {
		log.WithError(err).WithField("round", round.ID).Error("failed to save round")
	}
}
