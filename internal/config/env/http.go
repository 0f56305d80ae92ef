package env

import (
	"errors"
	"os"
	"strconv"

	"casino_client/internal/config"
)

const (
	httpAddressEnvName  = "HTTP_ADDRESS"
	scriptPathEnvName   = "SCRIPT_PATH"
	startBalanceEnvName = "START_BALANCE"

	defaultStartBalance = 1000
)

type httpConfig struct {
	address string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	address := os.Getenv(httpAddressEnvName)
	if len(address) == 0 {
		return nil, errors.New("http address not found")
	}

	return &httpConfig{
		address: address,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}

type scriptConfig struct {
	path         string
	startBalance int
}

func NewScriptConfig() (config.ScriptConfig, error) {
	path := os.Getenv(scriptPathEnvName)
	if len(path) == 0 {
		return nil, errors.New("script path not found")
	}

	balance := defaultStartBalance
	if raw := os.Getenv(startBalanceEnvName); len(raw) != 0 {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("invalid start balance: " + err.Error())
		}
		balance = v
	}

	return &scriptConfig{
		path:         path,
		startBalance: balance,
	}, nil
}

func (cfg *scriptConfig) ScriptPath() string {
	return cfg.path
}

func (cfg *scriptConfig) StartBalance() int {
	return cfg.startBalance
}
