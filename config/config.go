package config

import (
	"fmt"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/jessevdk/go-flags"

	"github.com/lodestake/staked/util"
)

const (
	defaultLogLevel       = "debug"
	defaultLogFormat      = "console"
	defaultLogFilename    = "staked.log"
	defaultConfigFileName = "staked.conf"
	defaultLogDirname     = "logs"
	defaultTimeMode       = "timestamp"
	defaultBankBackend    = "memory"
	defaultStakeDenom     = "ustake"
	defaultRewardDenom    = "ureward"
	defaultOwnerAccount   = "owner"
	defaultCustodyAccount = "staked-vault"
)

// DefaultStakedDir specifies the default home directory for the ledger daemon:
//
//	C:\Users\<username>\AppData\Local\Staked on Windows
//	~/.staked on Linux
//	~/Library/Application Support/Staked on MacOS
var DefaultStakedDir = btcutil.AppDataDir("staked", false)

type Config struct {
	LogLevel       string `long:"loglevel" description:"Logging level for all subsystems" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"fatal"`
	LogFormat      string `long:"logformat" description:"Encoding of the log output" choice:"json" choice:"console" choice:"logfmt"`
	TimeMode       string `long:"timemode" description:"Clock unit used to measure staking duration" choice:"timestamp" choice:"height"`
	BankBackend    string `long:"bankbackend" description:"Asset transfer backend moving tokens in and out of custody" choice:"memory"`
	StakeDenom     string `long:"stakedenom" description:"Denomination of the stake token"`
	RewardDenom    string `long:"rewarddenom" description:"Denomination of the reward token"`
	OwnerAccount   string `long:"owner" description:"Account authorized for administrative operations"`
	CustodyAccount string `long:"custody" description:"Account holding the ledger's custodied funds"`

	Metrics *MetricsConfig `group:"metrics" namespace:"metrics"`

	Policy *PolicyConfig `group:"policy" namespace:"policy"`
}

// LoadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
func LoadConfig(homePath string) (*Config, error) {
	// The home directory is required to have a configuration file with a specific name
	// under it.
	cfgFile := ConfigFile(homePath)
	if !util.FileExists(cfgFile) {
		return nil, fmt.Errorf("specified config file does "+
			"not exist in %s", cfgFile)
	}

	// If there are issues parsing the config file, return an error
	var cfg Config
	fileParser := flags.NewParser(&cfg, flags.Default)
	err := flags.NewIniParser(fileParser).ParseFile(cfgFile)
	if err != nil {
		return nil, err
	}

	// Make sure everything we just loaded makes sense.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the given configuration to be sane. This makes sure no
// illegal values or combination of values are set.
func (cfg *Config) Validate() error {
	if cfg.Metrics == nil {
		return fmt.Errorf("empty metrics config")
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return fmt.Errorf("invalid metrics config: %w", err)
	}

	if cfg.Policy == nil {
		return fmt.Errorf("empty policy config")
	}

	if err := cfg.Policy.Validate(); err != nil {
		return fmt.Errorf("invalid policy config: %w", err)
	}

	switch cfg.TimeMode {
	case "timestamp", "height":
	default:
		return fmt.Errorf("unsupported time mode: %s", cfg.TimeMode)
	}

	switch cfg.LogFormat {
	case "json", "console", "logfmt":
	default:
		return fmt.Errorf("unsupported log format: %s", cfg.LogFormat)
	}

	if cfg.StakeDenom == "" || cfg.RewardDenom == "" {
		return fmt.Errorf("stake and reward denominations must be set")
	}

	if cfg.OwnerAccount == "" {
		return fmt.Errorf("owner account must be set")
	}

	if cfg.CustodyAccount == "" {
		return fmt.Errorf("custody account must be set")
	}

	if cfg.OwnerAccount == cfg.CustodyAccount {
		return fmt.Errorf("owner and custody accounts must differ")
	}

	return nil
}

func ConfigFile(homePath string) string {
	return filepath.Join(homePath, defaultConfigFileName)
}

func LogFile(homePath string) string {
	return filepath.Join(LogDir(homePath), defaultLogFilename)
}

func LogDir(homePath string) string {
	return filepath.Join(homePath, defaultLogDirname)
}

func DefaultConfigWithHomePath(homePath string) Config {
	metricsCfg := DefaultMetricsConfig()
	policyCfg := DefaultPolicyConfig()
	cfg := Config{
		LogLevel:       defaultLogLevel,
		LogFormat:      defaultLogFormat,
		TimeMode:       defaultTimeMode,
		BankBackend:    defaultBankBackend,
		StakeDenom:     defaultStakeDenom,
		RewardDenom:    defaultRewardDenom,
		OwnerAccount:   defaultOwnerAccount,
		CustodyAccount: defaultCustodyAccount,
		Metrics:        &metricsCfg,
		Policy:         &policyCfg,
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	return cfg
}

func DefaultConfig() Config {
	return DefaultConfigWithHomePath(DefaultStakedDir)
}
