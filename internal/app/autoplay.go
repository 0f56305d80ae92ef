package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"casino_client/internal/api/client"
	"casino_client/internal/config"
	"casino_client/internal/model"
	"casino_client/internal/replay"
	"casino_client/internal/repository/schema"
	"casino_client/internal/service"
)

const (
	pollInterval = 20 * time.Millisecond
	maxFailures  = 3
)

// player - общие для обеих игр операции, которых хватает автоигре
type player interface {
	Spin(ctx context.Context) error
	SetBet(value int) bool
	SetTurbo(turbo bool) bool
	SetOnline(online bool) bool
	CanSpin() bool
	SyncBalance(ctx context.Context) error
	Close()
}

// autoplay играет заданное число раундов одной игры.
// Для каскадной игры сам проигрывает шаги каскада, как это делал бы слой отображения.
type autoplay struct {
	game      string
	line      service.LineSession
	cascade   service.CascadeSession
	bet       int
	cooldown  time.Duration
	stepDelay time.Duration
}

func (a *autoplay) player() player {
	if a.cascade != nil {
		return a.cascade
	}
	return a.line
}

func (a *autoplay) state() model.State {
	if a.cascade != nil {
		return a.cascade.Snapshot().State
	}
	return a.line.Snapshot().State
}

func (a *autoplay) economy() model.EconomyState {
	if a.cascade != nil {
		return a.cascade.Snapshot().Economy
	}
	return a.line.Snapshot().Economy
}

// run возвращает число сыгранных раундов. Нехватка денег останавливает игру без ошибки.
func (a *autoplay) run(ctx context.Context, rounds int) (int, error) {
	p := a.player()
	if !p.SetBet(a.bet) {
		log.WithField("game", a.game).Warn("bet not applied: bonus game in progress")
	}

	played, failures := 0, 0
	for played < rounds {
		if err := a.waitIdle(ctx); err != nil {
			return played, err
		}
		if !p.CanSpin() {
			log.WithFields(log.Fields{
				"game":    a.game,
				"balance": a.economy().Balance,
			}).Warn(service.UserMessage(service.ErrInsufficientFunds))
			return played, nil
		}

		err := p.Spin(ctx)
		switch {
		case err == nil:
			played++
			failures = 0
		case ctx.Err() != nil:
			return played, ctx.Err()
		case errors.Is(err, service.ErrBusy), errors.Is(err, service.ErrStale):
		default:
			failures++
			log.WithError(err).WithField("game", a.game).Warn(service.UserMessage(err))
			if failures >= maxFailures {
				return played, fmt.Errorf("autoplay stopped after %d failed spins: %w", failures, err)
			}
		}

		if err := sleep(ctx, a.cooldown); err != nil {
			return played, err
		}
	}
	return played, a.waitIdle(ctx)
}

// waitIdle ждет конца раунда, по пути проигрывая каскады
func (a *autoplay) waitIdle(ctx context.Context) error {
	for {
		switch a.state() {
		case model.StateIdle:
			return nil
		case model.StateResolving:
			if a.cascade != nil {
				if err := a.resolve(ctx); err != nil {
					return err
				}
				continue
			}
		}
		if err := sleep(ctx, pollInterval); err != nil {
			return err
		}
	}
}

func (a *autoplay) resolve(ctx context.Context) error {
	board := a.cascade.Snapshot().Board
	for {
		step, ok := a.cascade.CurrentStep()
		if !ok {
			return ignoreNotResolving(a.cascade.FinishCascadeAnimation())
		}
		if err := sleep(ctx, a.stepDelay); err != nil {
			return err
		}

		board = replay.ApplyStep(board, step)
		if err := a.cascade.UpdateBoardAfterCascade(board); err != nil {
			return ignoreNotResolving(err)
		}
		if err := a.cascade.NextCascadeStep(); err != nil {
			return ignoreNotResolving(err)
		}
	}
}

// Сессию могли сбросить во время анимации
func ignoreNotResolving(err error) error {
	if errors.Is(err, service.ErrNotResolving) {
		return nil
	}
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// startBalanceSync периодически сверяет баланс с сервером. Во время раунда сессия сверку пропускает.
func startBalanceSync(ctx context.Context, schedule string, p player) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if err := p.SyncBalance(ctx); err != nil {
			log.WithError(err).Warn("balance sync failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("balance sync schedule %q: %w", schedule, err)
	}
	c.Start()
	return c, nil
}

// signIn входит под учетной записью автоигры. Неизвестный логин регистрируется.
func signIn(ctx context.Context, c *client.Client, cfg config.AutoplayConfig) error {
	if c.Authenticated() && c.Profile().Login == cfg.Login() {
		if _, err := c.Pay().Balance(ctx); err == nil {
			return nil
		}
	}

	err := c.Login(ctx, cfg.Login(), cfg.Password())
	if err == nil || !client.IsStatus(err, http.StatusUnauthorized) {
		return err
	}

	rerr := c.Register(ctx, cfg.Name(), cfg.Login(), cfg.Password())
	if client.IsStatus(rerr, http.StatusConflict) {
		// Логин занят: значит, не подошел пароль
		return fmt.Errorf("login %s: %w", cfg.Login(), err)
	}
	return rerr
}

// RunAutoplay играет AUTOPLAY_ROUNDS раундов и пишет итог в лог
func (s *App) RunAutoplay(ctx context.Context) error {
	s.init()
	sp := s.ServiceProvider
	defer sp.Close()

	cfg := sp.AutoplayCfg()
	apiCfg := sp.APICfg()

	if apiCfg.Online() {
		if err := signIn(ctx, sp.Client(), cfg); err != nil {
			return fmt.Errorf("sign in: %w", err)
		}
	}
	if dbc := sp.DBClient(ctx); dbc != nil {
		if err := schema.Apply(ctx, dbc); err != nil {
			return err
		}
	}

	a := &autoplay{
		game:      cfg.Game(),
		bet:       cfg.Bet(),
		cooldown:  cfg.Cooldown(),
		stepDelay: sp.GameCfg().Timings().Duration(model.PhaseCascadeDelay, apiCfg.Turbo()),
	}
	if cfg.Game() == "cascade" {
		a.cascade = sp.CascadeSession(ctx)
	} else {
		a.line = sp.LineSession(ctx)
	}
	p := a.player()
	defer p.Close()

	p.SetOnline(apiCfg.Online())
	p.SetTurbo(apiCfg.Turbo())
	if err := p.SyncBalance(ctx); err != nil {
		return err
	}

	if apiCfg.Online() {
		sync, err := startBalanceSync(ctx, cfg.SyncSchedule(), p)
		if err != nil {
			return err
		}
		defer func() { <-sync.Stop().Done() }()
	}

	played, err := a.run(ctx, cfg.Rounds())
	a.report(ctx, sp, played)
	return err
}

func (a *autoplay) report(ctx context.Context, sp *ServiceProvider, played int) {
	stats := sp.StatsRepo().Stats(a.game)
	log.WithFields(log.Fields{
		"game":         a.game,
		"played":       played,
		"balance":      a.economy().Balance,
		"total_bet":    stats.TotalBet,
		"total_payout": stats.TotalPayout,
		"rtp":          stats.RTP.String(),
		"window_rtp":   stats.WindowRTP.String(),
	}).Info("autoplay finished")

	rounds := sp.RoundRepo(ctx)
	if rounds == nil {
		return
	}
	totals, err := rounds.Totals(ctx, a.game)
	if err != nil {
		log.WithError(err).Warn("failed to read journal totals")
		return
	}
	log.WithFields(log.Fields{
		"game":   a.game,
		"rounds": totals.Rounds,
		"bet":    totals.Bet,
		"payout": totals.Payout,
	}).Info("journal totals")
}
