package config

import (
	"time"

	"github.com/joho/godotenv"

	"casino_client/internal/ledger"
	"casino_client/internal/model"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GameConfig - таблицы игр из config.yaml
type GameConfig interface {
	LineRules() ledger.Rules
	CascadeRules() ledger.Rules
	Paylines() []model.Payline
	Timings() model.Timings
}

// APIConfig - подключение клиента к игровому серверу
type APIConfig interface {
	BaseURL() string
	Timeout() time.Duration
	Online() bool
	Turbo() bool
	TokenFile() string
}

type AutoplayConfig interface {
	Game() string
	Rounds() int
	Bet() int
	Cooldown() time.Duration
	Login() string
	Password() string
	Name() string
	SyncSchedule() string
}

type HTTPConfig interface {
	Address() string
}

// ScriptConfig - тестовый сервер с записанными ответами
type ScriptConfig interface {
	ScriptPath() string
	StartBalance() int
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
