package env

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"casino_client/internal/config"
)

// Переменные AUTOPLAY_*
type autoplayConfig struct {
	GameName   string        `envconfig:"GAME" default:"line"`
	RoundCount int           `envconfig:"ROUNDS" default:"100"`
	BetValue   int           `envconfig:"BET" default:"10"`
	Pause      time.Duration `envconfig:"COOLDOWN" default:"500ms"`
	UserLogin  string        `envconfig:"LOGIN" required:"true"`
	UserPass   string        `envconfig:"PASSWORD" required:"true"`
	UserName   string        `envconfig:"NAME" default:"autoplay"`
	Sync       string        `envconfig:"SYNC_SCHEDULE" default:"@every 30s"`
}

func NewAutoplayConfig() (config.AutoplayConfig, error) {
	var cfg autoplayConfig
	if err := envconfig.Process("autoplay", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load autoplay config: %w", err)
	}
	if cfg.GameName != "line" && cfg.GameName != "cascade" {
		return nil, fmt.Errorf("AUTOPLAY_GAME must be line or cascade, got %q", cfg.GameName)
	}
	if cfg.RoundCount <= 0 {
		return nil, fmt.Errorf("AUTOPLAY_ROUNDS must be > 0")
	}
	return &cfg, nil
}

func (c *autoplayConfig) Game() string {
	return c.GameName
}

func (c *autoplayConfig) Rounds() int {
	return c.RoundCount
}

func (c *autoplayConfig) Bet() int {
	return c.BetValue
}

func (c *autoplayConfig) Cooldown() time.Duration {
	return c.Pause
}

func (c *autoplayConfig) Login() string {
	return c.UserLogin
}

func (c *autoplayConfig) Password() string {
	return c.UserPass
}

func (c *autoplayConfig) Name() string {
	return c.UserName
}

func (c *autoplayConfig) SyncSchedule() string {
	return c.Sync
}
