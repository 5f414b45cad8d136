package testutil

import (
	"encoding/hex"
	"math/rand"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/lodestake/staked/types"
)

func GenRandomByteArray(r *rand.Rand, length uint64) []byte {
	buf := make([]byte, length)
	r.Read(buf)
	return buf
}

func GenRandomHexStr(r *rand.Rand, length uint64) string {
	randBytes := GenRandomByteArray(r, length)
	return hex.EncodeToString(randBytes)
}

func GenRandomAccountID(r *rand.Rand) types.AccountID {
	return types.AccountID(GenRandomHexStr(r, 20))
}

// GenRandomAmount returns an amount in [min, max].
func GenRandomAmount(r *rand.Rand, min, max int64) sdkmath.Int {
	return sdkmath.NewInt(min + r.Int63n(max-min+1))
}

// GenValidFeeRate returns an early-exit fee rate within the denominator.
func GenValidFeeRate(r *rand.Rand) uint64 {
	return uint64(r.Int63n(types.RateDenominator/2)) + 1
}

// GenRandomPolicy returns a valid policy with an open staking window so that
// generated deposits are accepted.
func GenRandomPolicy(r *rand.Rand) types.PolicyParams {
	lockPolicy := types.LockPolicyEarlyExitFee
	if r.Intn(2) == 0 {
		lockPolicy = types.LockPolicyHardLock
	}

	return types.PolicyParams{
		WindowStart:      0,
		WindowEnd:        1 << 62,
		MinDeposit:       sdkmath.NewInt(r.Int63n(100) + 1),
		MaxTotalStake:    sdkmath.NewInt(1_000_000_000_000),
		RewardRate:       uint64(r.Int63n(types.RateDenominator)) + 1,
		LockDuration:     uint64(r.Int63n(1000)) + 1,
		EarlyExitFeeRate: GenValidFeeRate(r),
		LockPolicy:       lockPolicy,
	}
}

func AddRandomSeedsToFuzzer(f *testing.F, num uint) {
	// Seed based on the current time
	r := rand.New(rand.NewSource(time.Now().Unix()))
	var idx uint
	for idx = 0; idx < num; idx++ {
		f.Add(r.Int63())
	}
}
