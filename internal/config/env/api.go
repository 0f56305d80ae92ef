package env

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"casino_client/internal/config"
)

type apiConfig struct {
	URL         string        `envconfig:"API_URL" default:"http://localhost:8080"`
	HTTPTimeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
	IsOnline    bool          `envconfig:"API_ONLINE" default:"true"`
	IsTurbo     bool          `envconfig:"API_TURBO" default:"false"`
	TokenPath   string        `envconfig:"TOKEN_FILE" default:".casino_token.yaml"`
}

func NewAPIConfig() (config.APIConfig, error) {
	var cfg apiConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load api config: %w", err)
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("API_TIMEOUT must be > 0")
	}
	return &cfg, nil
}

func (c *apiConfig) BaseURL() string {
	return c.URL
}

func (c *apiConfig) Timeout() time.Duration {
	return c.HTTPTimeout
}

func (c *apiConfig) Online() bool {
	return c.IsOnline
}

func (c *apiConfig) Turbo() bool {
	return c.IsTurbo
}

func (c *apiConfig) TokenFile() string {
	return c.TokenPath
}
