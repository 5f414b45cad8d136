package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/lodestake/staked/types"
)

func validParams() types.PolicyParams {
	return types.PolicyParams{
		WindowStart:      0,
		WindowEnd:        1000,
		MinDeposit:       sdkmath.NewInt(10),
		MaxTotalStake:    sdkmath.NewInt(1000),
		RewardRate:       100,
		LockDuration:     50,
		EarlyExitFeeRate: 50,
		LockPolicy:       types.LockPolicyEarlyExitFee,
	}
}

func TestPolicyParamsValidate(t *testing.T) {
	t.Parallel()

	p := validParams()
	require.NoError(t, p.Validate())

	p = validParams()
	p.WindowEnd = p.WindowStart
	require.Error(t, p.Validate())

	p = validParams()
	p.MinDeposit = sdkmath.ZeroInt()
	require.Error(t, p.Validate())

	p = validParams()
	p.MaxTotalStake = p.MinDeposit.SubRaw(1)
	require.Error(t, p.Validate())

	p = validParams()
	p.RewardRate = 0
	require.Error(t, p.Validate())

	p = validParams()
	p.LockDuration = 0
	require.Error(t, p.Validate())

	p = validParams()
	p.EarlyExitFeeRate = types.RateDenominator + 1
	require.Error(t, p.Validate())

	p = validParams()
	p.LockPolicy = "graceful"
	require.Error(t, p.Validate())
}

func TestAccountIDValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, types.AccountID("").Validate())
	require.NoError(t, types.AccountID("alice").Validate())
}

func TestNewAccountRecord(t *testing.T) {
	t.Parallel()

	rec := types.NewAccountRecord(42)
	require.True(t, rec.Principal.IsZero())
	require.True(t, rec.AccruedReward.IsZero())
	require.True(t, rec.CumulativeClaimed.IsZero())
	require.Equal(t, uint64(42), rec.DepositTimestamp)
	require.Equal(t, uint64(42), rec.RewardCheckpoint)
}
