package env

import (
	"fmt"
	"os"
	"time"

	"casino_client/internal/config"
)

const (
	refreshTokenDurationEnvName = "REFRESH_TOKEN_DURATION"
	accessTokenKeyEnvName       = "ACCESS_TOKEN"
	accessTokenDurationEnvName  = "ACCESS_TOKEN_DURATION"

	// Тестовому серверу не нужны долгие токены
	defaultAccessTokenDuration  = 15 * time.Minute
	defaultRefreshTokenDuration = 24 * time.Hour
)

type jwtConfig struct {
	refreshTokenDuration time.Duration
	accessTokenSecretKey string
	accessTokenDuration  time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	secret := os.Getenv(accessTokenKeyEnvName)
	if len(secret) == 0 {
		return nil, fmt.Errorf("access token secret key not found")
	}

	accessDuration, err := durationFromEnv(accessTokenDurationEnvName, defaultAccessTokenDuration)
	if err != nil {
		return nil, err
	}
	refreshDuration, err := durationFromEnv(refreshTokenDurationEnvName, defaultRefreshTokenDuration)
	if err != nil {
		return nil, err
	}

	return NewStaticJWTConfig([]byte(secret), accessDuration, refreshDuration), nil
}

// NewStaticJWTConfig - конфиг без окружения (тесты, встроенный сервер)
func NewStaticJWTConfig(secret []byte, access, refresh time.Duration) config.JWTConfig {
	return &jwtConfig{
		accessTokenSecretKey: string(secret),
		accessTokenDuration:  access,
		refreshTokenDuration: refresh,
	}
}

func durationFromEnv(name string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if len(raw) == 0 {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}

func (j *jwtConfig) RefreshTokenDuration() time.Duration {
	return j.refreshTokenDuration
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTokenDuration
}
