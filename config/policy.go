package config

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/lodestake/staked/types"
)

const (
	// 2100-01-01T00:00:00Z; effectively an open-ended staking window
	defaultWindowEnd = uint64(4102444800)

	defaultMinDeposit       = uint64(100)
	defaultMaxTotalStake    = uint64(1_000_000_000_000)
	defaultRewardRate       = uint64(100)
	defaultLockDuration     = uint64(604800) // seven days in timestamp mode
	defaultEarlyExitFeeRate = uint64(50)
)

// PolicyConfig holds the initial values of the owner-mutable staking policy.
// Amounts are plain integers here; they are converted to arbitrary-precision
// integers when handed to the engine.
type PolicyConfig struct {
	WindowStart      uint64 `long:"windowstart" description:"Clock value at which the staking window opens"`
	WindowEnd        uint64 `long:"windowend" description:"Clock value at which the staking window closes (exclusive)"`
	MinDeposit       uint64 `long:"mindeposit" description:"Minimum amount for a single deposit"`
	MaxTotalStake    uint64 `long:"maxtotalstake" description:"Cap on the ledger-wide total principal"`
	RewardRate       uint64 `long:"rewardrate" description:"Reward accrued per principal unit per clock unit, scaled by 1000"`
	LockDuration     uint64 `long:"lockduration" description:"Number of clock units a deposit stays locked for"`
	EarlyExitFeeRate uint64 `long:"earlyexitfeerate" description:"Fee rate for early withdrawals, scaled by 1000"`
	LockPolicy       string `long:"lockpolicy" description:"How withdrawals before the lock expires are handled" choice:"early-exit-fee" choice:"hard-lock"`
}

func (cfg *PolicyConfig) Validate() error {
	params := cfg.Params()

	return params.Validate()
}

// Params converts the configured values into the engine's policy parameters.
func (cfg *PolicyConfig) Params() types.PolicyParams {
	return types.PolicyParams{
		WindowStart:      cfg.WindowStart,
		WindowEnd:        cfg.WindowEnd,
		MinDeposit:       sdkmath.NewIntFromUint64(cfg.MinDeposit),
		MaxTotalStake:    sdkmath.NewIntFromUint64(cfg.MaxTotalStake),
		RewardRate:       cfg.RewardRate,
		LockDuration:     cfg.LockDuration,
		EarlyExitFeeRate: cfg.EarlyExitFeeRate,
		LockPolicy:       types.LockPolicy(cfg.LockPolicy),
		Paused:           false,
	}
}

func DefaultPolicyConfig() PolicyConfig {
	cfg := PolicyConfig{
		WindowStart:      0,
		WindowEnd:        defaultWindowEnd,
		MinDeposit:       defaultMinDeposit,
		MaxTotalStake:    defaultMaxTotalStake,
		RewardRate:       defaultRewardRate,
		LockDuration:     defaultLockDuration,
		EarlyExitFeeRate: defaultEarlyExitFeeRate,
		LockPolicy:       string(types.LockPolicyEarlyExitFee),
	}

	if err := cfg.Validate(); err != nil {
		panic(fmt.Errorf("invalid default policy config: %w", err))
	}

	return cfg
}
