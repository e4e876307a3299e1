package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"retirement-planner/domain"
)

// Config holds all retirement-planner configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Redis  RedisConfig  `toml:"redis"`
	Policy PolicyConfig `toml:"policy"`
	Rates  RatesConfig  `toml:"rates"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr             string `toml:"addr"`
	ReadTimeoutSecs  int    `toml:"read_timeout_secs"`
	WriteTimeoutSecs int    `toml:"write_timeout_secs"`
	IdleTimeoutSecs  int    `toml:"idle_timeout_secs"`
	RateLimitPerMin  int    `toml:"rate_limit_per_min"`
}

// RedisConfig selects the plan cache. An empty addr keeps the in-process
// cache.
type RedisConfig struct {
	Addr         string `toml:"addr,omitempty"`
	CacheTTLSecs int    `toml:"cache_ttl_secs"`
}

// PolicyConfig is the default retirement age band applied when a request
// omits its own policy.
type PolicyConfig struct {
	NormalRetirementAge int `toml:"normal_retirement_age"`
	WithdrawalAge       int `toml:"withdrawal_age"`
	EndOfRetirementAge  int `toml:"end_of_retirement_age"`
}

// RatesConfig is the default rate assumptions, as decimals.
type RatesConfig struct {
	SavingsReturn        float64 `toml:"savings_return"`
	PostRetirementReturn float64 `toml:"post_retirement_return"`
	Inflation            float64 `toml:"inflation"`
	IncomeGrowth         float64 `toml:"income_growth"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:             ":8080",
			ReadTimeoutSecs:  15,
			WriteTimeoutSecs: 15,
			IdleTimeoutSecs:  60,
			RateLimitPerMin:  5,
		},
		Redis: RedisConfig{
			CacheTTLSecs: 3600,
		},
		Policy: PolicyConfig{
			NormalRetirementAge: 65,
			WithdrawalAge:       70,
			EndOfRetirementAge:  95,
		},
		Rates: RatesConfig{
			SavingsReturn:        0.08,
			PostRetirementReturn: 0.05,
			Inflation:            0.03,
			IncomeGrowth:         0.03,
		},
	}
}

// Load reads the config file at path, returning defaults if it doesn't
// exist.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// AgePolicy converts the policy section into the domain type.
func (c Config) AgePolicy() domain.AgePolicy {
	return domain.AgePolicy{
		NormalRetirementAge: c.Policy.NormalRetirementAge,
		WithdrawalAge:       c.Policy.WithdrawalAge,
		EndOfRetirementAge:  c.Policy.EndOfRetirementAge,
	}
}

// RateAssumptions converts the rates section into the domain type.
func (c Config) RateAssumptions() domain.RateAssumptions {
	return domain.RateAssumptions{
		SavingsReturnRate:        c.Rates.SavingsReturn,
		PostRetirementReturnRate: c.Rates.PostRetirementReturn,
		InflationRate:            c.Rates.Inflation,
		IncomeGrowthRate:         c.Rates.IncomeGrowth,
	}
}

// CacheTTL returns the configured cache expiry.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.Redis.CacheTTLSecs) * time.Second
}
