package config_test

import (
	"os"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"

	"github.com/lodestake/staked/config"
	"github.com/lodestake/staked/types"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidation(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.TimeMode = "blocktime"
	require.ErrorContains(t, cfg.Validate(), "unsupported time mode")

	cfg = config.DefaultConfig()
	cfg.LogFormat = "xml"
	require.ErrorContains(t, cfg.Validate(), "unsupported log format")

	cfg = config.DefaultConfig()
	cfg.StakeDenom = ""
	require.ErrorContains(t, cfg.Validate(), "denominations")

	cfg = config.DefaultConfig()
	cfg.OwnerAccount = cfg.CustodyAccount
	require.ErrorContains(t, cfg.Validate(), "must differ")

	cfg = config.DefaultConfig()
	cfg.Metrics = nil
	require.ErrorContains(t, cfg.Validate(), "metrics")

	cfg = config.DefaultConfig()
	cfg.Policy = nil
	require.ErrorContains(t, cfg.Validate(), "policy")
}

func TestLoadConfigRoundTrip(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	cfg := config.DefaultConfigWithHomePath(home)

	fileParser := flags.NewParser(&cfg, flags.Default)
	err := flags.NewIniParser(fileParser).WriteFile(
		config.ConfigFile(home),
		flags.IniIncludeComments|flags.IniIncludeDefaults,
	)
	require.NoError(t, err)

	loaded, err := config.LoadConfig(home)
	require.NoError(t, err)
	require.Equal(t, cfg.TimeMode, loaded.TimeMode)
	require.Equal(t, cfg.StakeDenom, loaded.StakeDenom)
	require.Equal(t, cfg.Policy.RewardRate, loaded.Policy.RewardRate)
	require.Equal(t, cfg.Metrics.Port, loaded.Metrics.Port)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(os.TempDir() + "/does-not-exist")
	require.ErrorContains(t, err, "does not exist")
}

func TestPolicyConfigParams(t *testing.T) {
	t.Parallel()

	pc := config.DefaultPolicyConfig()
	require.NoError(t, pc.Validate())

	params := pc.Params()
	require.NoError(t, params.Validate())
	require.Equal(t, types.LockPolicy(pc.LockPolicy), params.LockPolicy)
	require.Equal(t, pc.RewardRate, params.RewardRate)

	pc.EarlyExitFeeRate = types.RateDenominator + 1
	require.Error(t, pc.Validate())
}
