package env

import (
	"errors"
	"os"

	"casino_client/internal/config"
)

const (
	dsnName = "PG_DSN"
)

var ErrNoDSN = errors.New("pg dsn not found")

type pgConfig struct {
	dsn string
}

// NewPGConfig - журнал раундов необязателен, без PG_DSN возвращается ErrNoDSN
func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(dsnName)
	if len(dsn) == 0 {
		return nil, ErrNoDSN
	}

	return &pgConfig{
		dsn: dsn,
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}
