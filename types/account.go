package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// AccountID identifies a staking account holder. It is opaque to the ledger;
// the engine only requires it to be non-empty.
type AccountID string

func (id AccountID) Validate() error {
	if len(id) == 0 {
		return fmt.Errorf("empty account identifier")
	}

	return nil
}

func (id AccountID) String() string {
	return string(id)
}

// AccountRecord is the per-holder ledger entry. A record with zero principal
// is never stored; the engine deletes it on full withdrawal.
type AccountRecord struct {
	// The amount of stake tokens currently deposited and locked
	Principal sdkmath.Int
	// Reward computed by settlement but not yet claimed
	AccruedReward sdkmath.Int
	// Clock value at the most recent deposit, used for lock-up eligibility
	DepositTimestamp uint64
	// Clock value through which rewards have been settled into AccruedReward.
	// Never exceeds the clock and never decreases.
	RewardCheckpoint uint64
	// Running total of reward ever paid out to this account. Informational
	// only; never consumed by the engine.
	CumulativeClaimed sdkmath.Int
}

// NewAccountRecord returns an empty record whose reward checkpoint starts
// at the given clock value.
func NewAccountRecord(now uint64) AccountRecord {
	return AccountRecord{
		Principal:         sdkmath.ZeroInt(),
		AccruedReward:     sdkmath.ZeroInt(),
		DepositTimestamp:  now,
		RewardCheckpoint:  now,
		CumulativeClaimed: sdkmath.ZeroInt(),
	}
}
