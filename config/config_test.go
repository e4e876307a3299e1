package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 65, cfg.Policy.NormalRetirementAge)
	assert.Equal(t, 0.08, cfg.Rates.SavingsReturn)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
addr = ":9090"

[redis]
addr = "localhost:6379"
cache_ttl_secs = 600

[policy]
normal_retirement_age = 62
withdrawal_age = 72
end_of_retirement_age = 90

[rates]
savings_return = 0.07
post_retirement_return = 0.04
inflation = 0.025
income_growth = 0.02
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 15, cfg.Server.ReadTimeoutSecs, "unset fields keep defaults")
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)

	policy := cfg.AgePolicy()
	assert.Equal(t, 62, policy.NormalRetirementAge)
	assert.Equal(t, 90, policy.EndOfRetirementAge)

	rates := cfg.RateAssumptions()
	assert.Equal(t, 0.07, rates.SavingsReturnRate)
	assert.Equal(t, 0.025, rates.InflationRate)

	assert.Equal(t, 600, int(cfg.CacheTTL().Seconds()))
}

func TestLoad_BadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\naddr=1"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
