package app

import (
	"context"
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"casino_client/internal/api/client"
	"casino_client/internal/api/server"
	"casino_client/internal/config"
	"casino_client/internal/config/env"
	"casino_client/internal/repository"
	"casino_client/internal/repository/auth_repo"
	"casino_client/internal/repository/round_repo"
	"casino_client/internal/repository/stats_repo"
	"casino_client/internal/repository/token_repo"
	"casino_client/internal/repository/user_repo"
	"casino_client/internal/service"
	authService "casino_client/internal/service/auth"
	"casino_client/internal/service/cascade"
	"casino_client/internal/service/line"
	payService "casino_client/internal/service/pay"
	"casino_client/internal/service/script"
	"casino_client/pkg/timer"
)

const (
	gameConfigPath = "config.yaml"
	statsWindow    = 500
)

type ServiceProvider struct {
	// Database. Необязательна: без PG_DSN хранилища живут в памяти.
	pgConfig  config.PGConfig
	pgChecked bool
	dbClient  *pgxpool.Pool

	//TXManager
	trManager trm.Manager
	txManager repository.TxManager

	gameCfg config.GameConfig

	// Scripted backend
	httpCfg    config.HTTPConfig
	scriptCfg  config.ScriptConfig
	jwtCfg     config.JWTConfig
	script     *script.Script
	userRepo   repository.UserRepository
	authRepo   repository.AuthRepository
	authServ   service.AuthService
	payServ    service.PaymentService
	scriptServ service.ScriptService
	router     chi.Router

	// Client
	apiCfg      config.APIConfig
	autoplayCfg config.AutoplayConfig
	tokenRepo   repository.TokenRepository
	apiClient   *client.Client
	statsRepo   repository.StatsRepository
	roundRepo   repository.RoundRepository
	roundsDone  bool
	recorder    service.RoundObserver
	lineSess    service.LineSession
	cascadeSess service.CascadeSession
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

// PgConfig возвращает nil, если PG_DSN не задан
func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if !sp.pgChecked {
		cfg, err := env.NewPGConfig()
		if err != nil && !errors.Is(err, env.ErrNoDSN) {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
		sp.pgChecked = true
	}
	return sp.pgConfig
}

// DBClient возвращает nil без базы
func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil && sp.PgConfig() != nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) trmManager(ctx context.Context) trm.Manager {
	if sp.trManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.trManager = m
	}
	return sp.trManager
}

// TXManager - транзакции Postgres или NoTx для хранилищ в памяти
func (sp *ServiceProvider) TXManager(ctx context.Context) repository.TxManager {
	if sp.txManager == nil {
		if sp.DBClient(ctx) != nil {
			sp.txManager = sp.trmManager(ctx)
		} else {
			sp.txManager = repository.NoTx{}
		}
	}
	return sp.txManager
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(gameConfigPath)
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) ScriptCfg() config.ScriptConfig {
	if sp.scriptCfg == nil {
		cfg, err := env.NewScriptConfig()
		if err != nil {
			panic("failed to get script config: " + err.Error())
		}
		sp.scriptCfg = cfg
	}
	return sp.scriptCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) Script() *script.Script {
	if sp.script == nil {
		s, err := script.LoadScript(sp.ScriptCfg().ScriptPath(), sp.GameCfg().Paylines())
		if err != nil {
			panic("failed to load script: " + err.Error())
		}
		sp.script = s
	}
	return sp.script
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		if dbc := sp.DBClient(ctx); dbc != nil {
			sp.userRepo = user_repo.NewUserRepository(dbc)
		} else {
			sp.userRepo = user_repo.NewMemoryUserRepository()
		}
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		if dbc := sp.DBClient(ctx); dbc != nil {
			sp.authRepo = auth_repo.NewAuthRepository(dbc)
		} else {
			sp.authRepo = auth_repo.NewMemoryAuthRepository(sp.UserRepo(ctx))
		}
	}
	return sp.authRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = authService.NewService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
			sp.ScriptCfg().StartBalance(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) PayService(ctx context.Context) service.PaymentService {
	if sp.payServ == nil {
		sp.payServ = payService.NewService(sp.TXManager(ctx), sp.UserRepo(ctx))
	}
	return sp.payServ
}

func (sp *ServiceProvider) ScriptService(ctx context.Context) service.ScriptService {
	if sp.scriptServ == nil {
		sp.scriptServ = script.NewService(sp.GameCfg(), sp.Script(), sp.TXManager(ctx), sp.UserRepo(ctx))
	}
	return sp.scriptServ
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		sp.router = server.NewRouter(server.Deps{
			Auth:         sp.AuthService(ctx),
			Script:       sp.ScriptService(ctx),
			Pay:          sp.PayService(ctx),
			AccessSecret: sp.JWTCfg().AccessTokenSecretKey(),
			CookieMaxAge: int(sp.JWTCfg().RefreshTokenDuration().Seconds()),
		})
	}
	return sp.router
}

func (sp *ServiceProvider) APICfg() config.APIConfig {
	if sp.apiCfg == nil {
		cfg, err := env.NewAPIConfig()
		if err != nil {
			panic("failed to get api config: " + err.Error())
		}
		sp.apiCfg = cfg
	}
	return sp.apiCfg
}

func (sp *ServiceProvider) AutoplayCfg() config.AutoplayConfig {
	if sp.autoplayCfg == nil {
		cfg, err := env.NewAutoplayConfig()
		if err != nil {
			panic("failed to get autoplay config: " + err.Error())
		}
		sp.autoplayCfg = cfg
	}
	return sp.autoplayCfg
}

func (sp *ServiceProvider) TokenRepo() repository.TokenRepository {
	if sp.tokenRepo == nil {
		sp.tokenRepo = token_repo.NewTokenRepository(sp.APICfg().TokenFile())
	}
	return sp.tokenRepo
}

func (sp *ServiceProvider) Client() *client.Client {
	if sp.apiClient == nil {
		c, err := client.New(sp.APICfg().BaseURL(), sp.APICfg().Timeout(), sp.TokenRepo())
		if err != nil {
			panic("failed to create api client: " + err.Error())
		}
		sp.apiClient = c
	}
	return sp.apiClient
}

func (sp *ServiceProvider) StatsRepo() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(statsWindow)
	}
	return sp.statsRepo
}

// RoundRepo - журнал раундов в Postgres, nil без PG_DSN
func (sp *ServiceProvider) RoundRepo(ctx context.Context) repository.RoundRepository {
	if !sp.roundsDone {
		if dbc := sp.DBClient(ctx); dbc != nil {
			sp.roundRepo = round_repo.NewRoundRepository(dbc, sp.trmManager(ctx))
		}
		sp.roundsDone = true
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) Recorder(ctx context.Context) service.RoundObserver {
	if sp.recorder == nil {
		sp.recorder = newRecorder(sp.StatsRepo(), sp.RoundRepo(ctx))
	}
	return sp.recorder
}

func (sp *ServiceProvider) LineSession(ctx context.Context) service.LineSession {
	if sp.lineSess == nil {
		c := sp.Client()
		sp.lineSess = line.NewLineSession(
			sp.GameCfg(),
			c.Line(),
			c.Pay(),
			timer.New(),
			sp.Recorder(ctx),
			service.NewRNG(),
		)
	}
	return sp.lineSess
}

func (sp *ServiceProvider) CascadeSession(ctx context.Context) service.CascadeSession {
	if sp.cascadeSess == nil {
		c := sp.Client()
		sp.cascadeSess = cascade.NewCascadeSession(
			sp.GameCfg(),
			c.Cascade(),
			c.Pay(),
			timer.New(),
			sp.Recorder(ctx),
			service.NewRNG(),
		)
	}
	return sp.cascadeSess
}

// Close закрывает пул соединений
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
