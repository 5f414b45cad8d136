package e2etest

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lodestake/staked/bankclient"
	"github.com/lodestake/staked/clock"
	stakedcfg "github.com/lodestake/staked/config"
	"github.com/lodestake/staked/ledger"
	"github.com/lodestake/staked/types"
)

type testManager struct {
	engine     *ledger.Engine
	stakeBank  *bankclient.MemoryBank
	rewardBank *bankclient.MemoryBank
	clock      *clock.HeightSource
	custody    types.AccountID
}

func startManager(t *testing.T, policy types.PolicyParams) *testManager {
	t.Helper()

	cfg := stakedcfg.DefaultConfigWithHomePath(t.TempDir())
	custody := types.AccountID(cfg.CustodyAccount)

	logger := zap.NewNop()
	stakeBank := bankclient.NewMemoryBank(cfg.StakeDenom, custody, logger)
	rewardBank := bankclient.NewMemoryBank(cfg.RewardDenom, custody, logger)
	require.NoError(t, rewardBank.Mint(custody, sdkmath.NewInt(1_000_000_000)))

	src := clock.NewHeightSource(1)

	engine, err := ledger.NewEngine(&cfg, policy, stakeBank, rewardBank, src, logger, nil)
	require.NoError(t, err)
	require.NoError(t, engine.Start())
	t.Cleanup(func() {
		require.NoError(t, engine.Stop())
	})

	return &testManager{
		engine:     engine,
		stakeBank:  stakeBank,
		rewardBank: rewardBank,
		clock:      src,
		custody:    custody,
	}
}

// TestStakingLifecycle walks a staker through the full deposit, accrual,
// claim and withdrawal flow against real in-memory banks and checks that
// every token is accounted for at the end.
func TestStakingLifecycle(t *testing.T) {
	policy := types.PolicyParams{
		WindowStart:      0,
		WindowEnd:        1 << 40,
		MinDeposit:       sdkmath.NewInt(100),
		MaxTotalStake:    sdkmath.NewInt(1_000_000),
		RewardRate:       100,
		LockDuration:     30,
		EarlyExitFeeRate: 50,
		LockPolicy:       types.LockPolicyEarlyExitFee,
	}

	tm := startManager(t, policy)

	alice := types.AccountID("alice")
	require.NoError(t, tm.stakeBank.Mint(alice, sdkmath.NewInt(10_000)))

	require.NoError(t, tm.engine.Deposit(alice, sdkmath.NewInt(2000)))

	bal, err := tm.stakeBank.BalanceOf(alice)
	require.NoError(t, err)
	require.Equal(t, int64(8000), bal.Int64())

	bal, err = tm.stakeBank.BalanceOf(tm.custody)
	require.NoError(t, err)
	require.Equal(t, int64(2000), bal.Int64())

	// 10 * 2000 * 100 / 1000 = 2000 reward units
	tm.clock.Advance(10)
	require.Equal(t, int64(2000), tm.engine.EstimatedReward(alice).Int64())

	require.NoError(t, tm.engine.Claim(alice))
	rewards, err := tm.rewardBank.BalanceOf(alice)
	require.NoError(t, err)
	require.Equal(t, int64(2000), rewards.Int64())

	// past the lock, the full principal comes back with no fee
	tm.clock.Advance(25)
	require.NoError(t, tm.engine.Claim(alice))
	require.NoError(t, tm.engine.Withdraw(alice, sdkmath.NewInt(2000)))

	bal, err = tm.stakeBank.BalanceOf(alice)
	require.NoError(t, err)
	require.Equal(t, int64(10_000), bal.Int64())

	require.True(t, tm.engine.TotalStaked().IsZero())
	require.Equal(t, uint64(0), tm.engine.HolderCount())
}

// TestEarlyExitFeesAreSweepable retains fees in custody and lets the owner
// sweep exactly the surplus over the outstanding principal.
func TestEarlyExitFeesAreSweepable(t *testing.T) {
	policy := types.PolicyParams{
		WindowStart:      0,
		WindowEnd:        1 << 40,
		MinDeposit:       sdkmath.NewInt(100),
		MaxTotalStake:    sdkmath.NewInt(1_000_000),
		RewardRate:       100,
		LockDuration:     1000,
		EarlyExitFeeRate: 100,
		LockPolicy:       types.LockPolicyEarlyExitFee,
	}

	tm := startManager(t, policy)
	owner := tm.engine.Owner()

	alice := types.AccountID("alice")
	bob := types.AccountID("bob")
	require.NoError(t, tm.stakeBank.Mint(alice, sdkmath.NewInt(10_000)))
	require.NoError(t, tm.stakeBank.Mint(bob, sdkmath.NewInt(10_000)))

	require.NoError(t, tm.engine.Deposit(alice, sdkmath.NewInt(1000)))
	require.NoError(t, tm.engine.Deposit(bob, sdkmath.NewInt(3000)))

	// alice exits early: 10% fee on 1000 leaves 100 in custody
	require.NoError(t, tm.engine.Withdraw(alice, sdkmath.NewInt(1000)))

	bal, err := tm.stakeBank.BalanceOf(alice)
	require.NoError(t, err)
	require.Equal(t, int64(9900), bal.Int64())

	err = tm.engine.SweepSurplus(owner, sdkmath.NewInt(101))
	require.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	require.NoError(t, tm.engine.SweepSurplus(owner, sdkmath.NewInt(100)))

	ownerBal, err := tm.stakeBank.BalanceOf(owner)
	require.NoError(t, err)
	require.Equal(t, int64(100), ownerBal.Int64())

	// bob's principal is untouched by the sweep
	bal, err = tm.stakeBank.BalanceOf(tm.custody)
	require.NoError(t, err)
	require.Equal(t, int64(3000), bal.Int64())
}

// TestOwnerAdministration drives the pause switch and policy updates through
// a running engine.
func TestOwnerAdministration(t *testing.T) {
	policy := types.PolicyParams{
		WindowStart:      0,
		WindowEnd:        1 << 40,
		MinDeposit:       sdkmath.NewInt(100),
		MaxTotalStake:    sdkmath.NewInt(1_000_000),
		RewardRate:       100,
		LockDuration:     30,
		EarlyExitFeeRate: 50,
		LockPolicy:       types.LockPolicyHardLock,
	}

	tm := startManager(t, policy)
	owner := tm.engine.Owner()

	alice := types.AccountID("alice")
	require.NoError(t, tm.stakeBank.Mint(alice, sdkmath.NewInt(10_000)))
	require.NoError(t, tm.stakeBank.Mint(owner, sdkmath.NewInt(10_000)))

	paused, err := tm.engine.TogglePause(owner)
	require.NoError(t, err)
	require.True(t, paused)

	err = tm.engine.Deposit(alice, sdkmath.NewInt(500))
	require.ErrorIs(t, err, ledger.ErrStakingPaused)

	paused, err = tm.engine.TogglePause(owner)
	require.NoError(t, err)
	require.False(t, paused)

	// the owner can fund a position for someone else
	require.NoError(t, tm.engine.StakeOnBehalfOf(owner, alice, sdkmath.NewInt(500)))

	rec, found := tm.engine.Account(alice)
	require.True(t, found)
	require.Equal(t, int64(500), rec.Principal.Int64())

	ownerBal, err := tm.stakeBank.BalanceOf(owner)
	require.NoError(t, err)
	require.Equal(t, int64(9500), ownerBal.Int64())

	require.NoError(t, tm.engine.SetMinDeposit(owner, sdkmath.NewInt(600)))
	err = tm.engine.Deposit(alice, sdkmath.NewInt(500))
	require.ErrorIs(t, err, ledger.ErrBelowMinimum)
	require.NoError(t, tm.engine.Deposit(alice, sdkmath.NewInt(600)))
}
