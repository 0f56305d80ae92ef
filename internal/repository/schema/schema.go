// Package schema создает таблицы тестового сервера и журнала раундов.
package schema

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var migrations = []struct {
	name string
	sql  string
}{
	{"users", migrationUsers},
	{"sessions", migrationSessions},
	{"rounds", migrationRounds},
}

// Apply выполняет миграции по порядку. Все миграции идемпотентны.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, m := range migrations {
		if _, err := pool.Exec(ctx, m.sql); err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
		log.WithField("migration", m.name).Debug("migration applied")
	}
	return nil
}

var migrationUsers = `
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL DEFAULT '',
    login TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    balance BIGINT NOT NULL DEFAULT 0
);
`

var migrationSessions = `
CREATE TABLE IF NOT EXISTS sessions (
    session_id TEXT PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    refresh_hash TEXT NOT NULL,
    expired_time TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id);
`

var migrationRounds = `
CREATE TABLE IF NOT EXISTS rounds (
    id TEXT PRIMARY KEY,
    game VARCHAR(16) NOT NULL,
    bet BIGINT NOT NULL,
    payout BIGINT NOT NULL,
    balance BIGINT NOT NULL,
    free_spins_left INTEGER NOT NULL DEFAULT 0,
    in_free_spin BOOLEAN NOT NULL DEFAULT FALSE,
    board_valid BOOLEAN NOT NULL DEFAULT TRUE,
    board JSONB,
    played_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_rounds_game ON rounds(game);
CREATE TABLE IF NOT EXISTS round_cascades (
    round_id TEXT NOT NULL REFERENCES rounds(id) ON DELETE CASCADE,
    cascade_index INTEGER NOT NULL,
    clusters INTEGER NOT NULL,
    payout BIGINT NOT NULL,
    step JSONB NOT NULL,
    PRIMARY KEY (round_id, cascade_index)
);
`
