package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// RateDenominator is the fixed-point scaling denominator applied to
// RewardRate and EarlyExitFeeRate, e.g. a fee rate of 50 is 5%.
const RateDenominator = 1000

// LockPolicy selects how withdrawals before the lock-up duration has
// elapsed are handled. The two policies are alternative deployment
// configurations, never combined.
type LockPolicy string

const (
	// LockPolicyEarlyExitFee allows withdrawal at any time, deducting a fee
	// from payouts made before the lock-up duration has elapsed.
	LockPolicyEarlyExitFee LockPolicy = "early-exit-fee"
	// LockPolicyHardLock rejects withdrawal outright until the lock-up
	// duration has elapsed. No fee is ever charged.
	LockPolicyHardLock LockPolicy = "hard-lock"
)

func (p LockPolicy) Validate() error {
	switch p {
	case LockPolicyEarlyExitFee, LockPolicyHardLock:
		return nil
	default:
		return fmt.Errorf("unsupported lock policy: %s", p)
	}
}

// PolicyParams holds the global owner-mutable staking parameters consulted
// by the ledger engine on every operation.
type PolicyParams struct {
	// Deposits are accepted while the clock is within [WindowStart, WindowEnd)
	WindowStart uint64
	WindowEnd   uint64

	// Minimum amount for a single deposit
	MinDeposit sdkmath.Int
	// Cap on the ledger-wide total principal, not per-account
	MaxTotalStake sdkmath.Int

	// Reward accrued per unit of principal per elapsed clock unit,
	// scaled by RateDenominator
	RewardRate uint64

	// Number of clock units a deposit stays locked for
	LockDuration uint64
	// Fee rate applied by LockPolicyEarlyExitFee, scaled by RateDenominator
	EarlyExitFeeRate uint64

	LockPolicy LockPolicy

	// While true, deposits are rejected; withdrawals and claims are not
	// affected
	Paused bool
}

func (p *PolicyParams) Validate() error {
	if p.WindowEnd <= p.WindowStart {
		return fmt.Errorf("staking window end %d must be after start %d", p.WindowEnd, p.WindowStart)
	}

	if p.MinDeposit.IsNil() || !p.MinDeposit.IsPositive() {
		return fmt.Errorf("minimum deposit must be positive")
	}

	if p.MaxTotalStake.IsNil() || p.MaxTotalStake.LT(p.MinDeposit) {
		return fmt.Errorf("maximum total stake must be at least the minimum deposit")
	}

	if p.RewardRate == 0 {
		return fmt.Errorf("reward rate must be positive")
	}

	if p.LockDuration == 0 {
		return fmt.Errorf("lock duration must be positive")
	}

	if p.EarlyExitFeeRate > RateDenominator {
		return fmt.Errorf("early exit fee rate %d exceeds denominator %d", p.EarlyExitFeeRate, RateDenominator)
	}

	return p.LockPolicy.Validate()
}
