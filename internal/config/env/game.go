package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"casino_client/internal/config"
	"casino_client/internal/ledger"
	"casino_client/internal/model"
)

type rulesYAML struct {
	MinBet              int  `yaml:"min_bet"`
	MaxBet              int  `yaml:"max_bet"`
	EvenBet             bool `yaml:"even_bet"`
	DefaultBalance      int  `yaml:"default_balance"`
	DefaultBet          int  `yaml:"default_bet"`
	BonusCostMultiplier int  `yaml:"bonus_cost_multiplier"`
	BonusFreeSpins      int  `yaml:"bonus_free_spins"`
}

type paylineYAML struct {
	ID      int   `yaml:"id"`
	Pattern []int `yaml:"pattern"`
}

type phaseYAML struct {
	Normal time.Duration `yaml:"normal"`
	Turbo  time.Duration `yaml:"turbo"`
}

type gameYAML struct {
	Line     rulesYAML            `yaml:"line"`
	Cascade  rulesYAML            `yaml:"cascade"`
	Paylines []paylineYAML        `yaml:"paylines"`
	Phases   map[string]phaseYAML `yaml:"phases"`
}

var phaseNames = map[string]model.Phase{
	model.PhaseReelSpin.String():     model.PhaseReelSpin,
	model.PhaseReelSettle.String():   model.PhaseReelSettle,
	model.PhaseCascadeDelay.String(): model.PhaseCascadeDelay,
	model.PhaseBonusAck.String():     model.PhaseBonusAck,
}

type gameConfig struct {
	line     ledger.Rules
	cascade  ledger.Rules
	paylines []model.Payline
	timings  model.Timings
}

// DefaultGameConfig - встроенные таблицы без config.yaml
func DefaultGameConfig() config.GameConfig {
	return &gameConfig{
		line:     ledger.LineRules(),
		cascade:  ledger.CascadeRules(),
		paylines: model.DefaultPaylines(),
		timings:  model.DefaultTimings(),
	}
}

// NewGameConfigFromYAML читает config.yaml поверх встроенных значений.
// Отсутствующий файл не ошибка: используются встроенные таблицы.
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultGameConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parseGameConfig(data)
}

func parseGameConfig(data []byte) (config.GameConfig, error) {
	raw := gameYAML{
		Line:    toRulesYAML(ledger.LineRules()),
		Cascade: toRulesYAML(ledger.CascadeRules()),
		Phases:  make(map[string]phaseYAML),
	}
	for p, d := range model.DefaultTimings() {
		raw.Phases[p.String()] = phaseYAML{Normal: d.Normal, Turbo: d.Turbo}
	}

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	cfg := &gameConfig{
		line:     ledger.Rules(raw.Line),
		cascade:  ledger.Rules(raw.Cascade),
		paylines: model.DefaultPaylines(),
		timings:  make(model.Timings, len(raw.Phases)),
	}
	for _, r := range []ledger.Rules{cfg.line, cfg.cascade} {
		if r.MinBet <= 0 || r.MaxBet < r.MinBet {
			return nil, fmt.Errorf("invalid bet limits [%d, %d]", r.MinBet, r.MaxBet)
		}
		if r.EvenBet && (r.MinBet+1)/2*2 > r.MaxBet {
			return nil, fmt.Errorf("no even bet in [%d, %d]", r.MinBet, r.MaxBet)
		}
		if r.DefaultBet < r.MinBet || r.DefaultBet > r.MaxBet {
			return nil, fmt.Errorf("default bet %d outside [%d, %d]", r.DefaultBet, r.MinBet, r.MaxBet)
		}
		if r.BonusCostMultiplier <= 0 || r.BonusFreeSpins <= 0 {
			return nil, errors.New("bonus cost multiplier and free spins must be > 0")
		}
	}

	if len(raw.Paylines) > 0 {
		lines, err := toPaylines(raw.Paylines)
		if err != nil {
			return nil, err
		}
		cfg.paylines = lines
	}

	for name, d := range raw.Phases {
		p, ok := phaseNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown phase %q", name)
		}
		if d.Normal < 0 || d.Turbo < 0 {
			return nil, fmt.Errorf("phase %q: negative duration", name)
		}
		cfg.timings[p] = model.PhaseDuration{Normal: d.Normal, Turbo: d.Turbo}
	}
	return cfg, nil
}

func toRulesYAML(r ledger.Rules) rulesYAML {
	return rulesYAML(r)
}

func toPaylines(raw []paylineYAML) ([]model.Payline, error) {
	seen := make(map[int]bool, len(raw))
	res := make([]model.Payline, 0, len(raw))
	for _, l := range raw {
		if seen[l.ID] {
			return nil, fmt.Errorf("payline %d repeated", l.ID)
		}
		seen[l.ID] = true
		if len(l.Pattern) != model.LineReels {
			return nil, fmt.Errorf("payline %d: pattern must have %d rows", l.ID, model.LineReels)
		}
		p := model.Payline{ID: l.ID}
		for reel, row := range l.Pattern {
			if row < 0 || row >= model.LineRows {
				return nil, fmt.Errorf("payline %d: row %d out of range", l.ID, row)
			}
			p.Pattern[reel] = row
		}
		res = append(res, p)
	}
	return res, nil
}

func (c *gameConfig) LineRules() ledger.Rules {
	return c.line
}

func (c *gameConfig) CascadeRules() ledger.Rules {
	return c.cascade
}

func (c *gameConfig) Paylines() []model.Payline {
	return c.paylines
}

func (c *gameConfig) Timings() model.Timings {
	return c.timings
}
