package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"casino_client/internal/api/client"
	"casino_client/internal/api/dto/cascade"
	"casino_client/internal/api/dto/line"
	"casino_client/internal/api/server"
	"casino_client/internal/config/env"
	"casino_client/internal/converter"
	"casino_client/internal/model"
	"casino_client/internal/replay"
	"casino_client/internal/repository"
	"casino_client/internal/repository/auth_repo"
	"casino_client/internal/repository/stats_repo"
	"casino_client/internal/repository/token_repo"
	"casino_client/internal/repository/user_repo"
	"casino_client/internal/service"
	authService "casino_client/internal/service/auth"
	cascadeSession "casino_client/internal/service/cascade"
	lineSession "casino_client/internal/service/line"
	payService "casino_client/internal/service/pay"
	"casino_client/internal/service/script"
	"casino_client/pkg/timer"
)

type autoplayEnv struct {
	client *client.Client
	stats  repository.StatsRepository
}

func newAutoplayEnv(t *testing.T, s *script.Script) *autoplayEnv {
	t.Helper()

	users := user_repo.NewMemoryUserRepository()
	sessions := auth_repo.NewMemoryAuthRepository(users)
	jwtCfg := env.NewStaticJWTConfig([]byte("secret"), time.Minute, time.Hour)
	ts := httptest.NewServer(server.NewRouter(server.Deps{
		Auth:         authService.NewService(repository.NoTx{}, users, sessions, jwtCfg, 1000),
		Script:       script.NewService(env.DefaultGameConfig(), s, repository.NoTx{}, users),
		Pay:          payService.NewService(repository.NoTx{}, users),
		AccessSecret: []byte("secret"),
		CookieMaxAge: 3600,
	}))
	t.Cleanup(ts.Close)

	c, err := client.New(ts.URL, 5*time.Second, token_repo.NewTokenRepository(filepath.Join(t.TempDir(), "token.yaml")))
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	return &autoplayEnv{client: c, stats: stats_repo.NewStatsRepository(100)}
}

type autoplayConfig struct {
	login, password string
}

func (c autoplayConfig) Game() string            { return "line" }
func (c autoplayConfig) Rounds() int             { return 1 }
func (c autoplayConfig) Bet() int                { return 10 }
func (c autoplayConfig) Cooldown() time.Duration { return 0 }
func (c autoplayConfig) Login() string           { return c.login }
func (c autoplayConfig) Password() string        { return c.password }
func (c autoplayConfig) Name() string            { return "bot" }
func (c autoplayConfig) SyncSchedule() string    { return "@every 1s" }

func TestSignIn(t *testing.T) {
	ctx := context.Background()
	e := newAutoplayEnv(t, &script.Script{})

	if err := signIn(ctx, e.client, autoplayConfig{login: "bot", password: "pw"}); err != nil {
		t.Fatalf("first sign in: %v", err)
	}
	if e.client.Profile().Login != "bot" {
		t.Fatalf("profile = %+v", e.client.Profile())
	}

	// Сохраненный токен переиспользуется
	if err := signIn(ctx, e.client, autoplayConfig{login: "bot", password: "pw"}); err != nil {
		t.Fatalf("second sign in: %v", err)
	}

	err := signIn(ctx, e.client, autoplayConfig{login: "other", password: "pw"})
	if err != nil {
		t.Fatalf("new login: %v", err)
	}

	err = signIn(ctx, e.client, autoplayConfig{login: "bot", password: "wrong"})
	if !client.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("wrong password err = %v", err)
	}
}

func TestAutoplayLine(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	board := converter.FromLineBoard(model.DefaultLineBoard())
	e := newAutoplayEnv(t, &script.Script{
		Loop: true,
		Line: []line.SpinResponse{{Board: board}, {Board: board, TotalPayout: 20}},
	})
	if err := signIn(ctx, e.client, autoplayConfig{login: "bot", password: "pw"}); err != nil {
		t.Fatal(err)
	}

	s := lineSession.NewLineSession(env.DefaultGameConfig(), e.client.Line(), e.client.Pay(),
		timer.New(), newRecorder(e.stats, nil), service.NewSeededRNG(1))
	defer s.Close()
	s.SetOnline(true)
	s.SetTurbo(true)

	a := &autoplay{game: "line", line: s, bet: 10}
	played, err := a.run(ctx, 4)
	if err != nil || played != 4 {
		t.Fatalf("run = %d, %v", played, err)
	}

	// Наблюдатель вызывается после выхода сессии в Idle
	waitFor(t, func() bool { return e.stats.Stats("line").Rounds == 4 })
	stats := e.stats.Stats("line")
	if stats.TotalBet != 40 || stats.TotalPayout != 40 {
		t.Fatalf("stats = %+v", stats)
	}
	if got := s.Snapshot().Economy.Balance; got != 1000 {
		t.Fatalf("balance = %d, want 1000", got)
	}
}

func TestAutoplayStopsWithoutMoney(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s := lineSession.NewLineSession(env.DefaultGameConfig(), nil, nil,
		timer.New(), nil, service.NewSeededRNG(1))
	defer s.Close()
	s.SetTurbo(true)

	// Оффлайн выигрышей нет: 1000 при ставке 100 хватает ровно на 10 спинов
	a := &autoplay{game: "line", line: s, bet: 100}
	played, err := a.run(ctx, 1000)
	if err != nil || played != 10 {
		t.Fatalf("run = %d, %v", played, err)
	}
	if s.CanSpin() {
		t.Fatalf("session still affordable after autoplay stopped")
	}
}

func TestAutoplayCascadeResolvesSteps(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	initial := model.DefaultCascadeBoard()
	initial[5][0] = model.Sym6
	initial[6][0] = model.Sym6
	steps := []model.CascadeStep{{
		Index: 0,
		Clusters: []model.Cluster{{
			Symbol: model.Sym6,
			Cells:  []model.Position{{Row: 5, Col: 0}, {Row: 6, Col: 0}},
			Count:  2,
			Payout: 6,
		}},
		NewSymbols: []model.NewSymbol{
			{Position: model.Position{Row: 0, Col: 0}, Symbol: model.Sym2},
			{Position: model.Position{Row: 1, Col: 0}, Symbol: model.Sym3},
		},
	}}
	final := replay.Replay(initial, steps)

	e := newAutoplayEnv(t, &script.Script{
		Loop: true,
		Cascade: []cascade.SpinResponse{{
			Board:       converter.FromCascadeBoard(final),
			Cascades:    converter.FromCascadeSteps(steps),
			TotalPayout: 6,
		}},
	})
	if err := signIn(ctx, e.client, autoplayConfig{login: "bot", password: "pw"}); err != nil {
		t.Fatal(err)
	}

	s := cascadeSession.NewCascadeSession(env.DefaultGameConfig(), e.client.Cascade(), e.client.Pay(),
		timer.New(), newRecorder(e.stats, nil), service.NewSeededRNG(1))
	defer s.Close()
	s.SetOnline(true)
	s.SetTurbo(true)
	if err := s.SyncBalance(ctx); err != nil {
		t.Fatal(err)
	}

	a := &autoplay{game: "cascade", cascade: s, bet: 20, stepDelay: 10 * time.Millisecond}
	played, err := a.run(ctx, 2)
	if err != nil || played != 2 {
		t.Fatalf("run = %d, %v", played, err)
	}

	if v := s.LastValidation(); !v.Valid {
		t.Fatalf("validation = %+v", v)
	}
	snap := s.Snapshot()
	if snap.Board != final || snap.Economy.Balance != 1000-2*20+2*6 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if stats := e.stats.Stats("cascade"); stats.Rounds != 2 || stats.TotalPayout != 12 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestBalanceSync(t *testing.T) {
	ctx := context.Background()
	e := newAutoplayEnv(t, &script.Script{})
	if err := signIn(ctx, e.client, autoplayConfig{login: "bot", password: "pw"}); err != nil {
		t.Fatal(err)
	}

	s := lineSession.NewLineSession(env.DefaultGameConfig(), e.client.Line(), e.client.Pay(),
		timer.New(), nil, service.NewSeededRNG(1))
	defer s.Close()
	s.SetOnline(true)

	if _, err := startBalanceSync(ctx, "not a schedule", s); err == nil {
		t.Fatalf("bad schedule accepted")
	}

	if err := e.client.Pay().Deposit(ctx, 250); err != nil {
		t.Fatal(err)
	}
	c, err := startBalanceSync(ctx, "@every 1s", s)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Stop()

	waitFor(t, func() bool { return s.Snapshot().Economy.Balance == 1250 })
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met in time")
		}
		time.Sleep(20 * time.Millisecond)
	}
}
