package bankclient_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/lodestake/staked/bankclient"
	"github.com/lodestake/staked/types"
)

const custody = types.AccountID("vault")

func TestMemoryBankTransfers(t *testing.T) {
	t.Parallel()

	bank := bankclient.NewMemoryBank("ustake", custody, nil)
	alice := types.AccountID("alice")

	require.NoError(t, bank.Mint(alice, sdkmath.NewInt(1000)))

	require.NoError(t, bank.TransferIn(alice, sdkmath.NewInt(400)))

	bal, err := bank.BalanceOf(alice)
	require.NoError(t, err)
	require.Equal(t, int64(600), bal.Int64())

	bal, err = bank.BalanceOf(custody)
	require.NoError(t, err)
	require.Equal(t, int64(400), bal.Int64())

	require.NoError(t, bank.TransferOut(alice, sdkmath.NewInt(150)))

	bal, err = bank.BalanceOf(alice)
	require.NoError(t, err)
	require.Equal(t, int64(750), bal.Int64())

	require.NoError(t, bank.Close())
}

func TestMemoryBankRejectsOverdraft(t *testing.T) {
	t.Parallel()

	bank := bankclient.NewMemoryBank("ustake", custody, nil)
	alice := types.AccountID("alice")

	require.NoError(t, bank.Mint(alice, sdkmath.NewInt(100)))

	err := bank.TransferIn(alice, sdkmath.NewInt(101))
	require.ErrorContains(t, err, "insufficient")

	// nothing moved on failure
	bal, err := bank.BalanceOf(alice)
	require.NoError(t, err)
	require.Equal(t, int64(100), bal.Int64())

	bal, err = bank.BalanceOf(custody)
	require.NoError(t, err)
	require.True(t, bal.IsZero())
}

func TestMemoryBankValidation(t *testing.T) {
	t.Parallel()

	bank := bankclient.NewMemoryBank("ustake", custody, nil)

	require.Error(t, bank.Mint("", sdkmath.NewInt(1)))
	require.Error(t, bank.Mint("alice", sdkmath.ZeroInt()))
	require.Error(t, bank.TransferIn("", sdkmath.NewInt(1)))
	require.Error(t, bank.TransferIn("alice", sdkmath.NewInt(-1)))
}

func TestNewBankFactory(t *testing.T) {
	t.Parallel()

	bank, err := bankclient.NewBank("memory", "ustake", custody, nil)
	require.NoError(t, err)
	require.NotNil(t, bank)

	_, err = bankclient.NewBank("postgres", "ustake", custody, nil)
	require.Error(t, err)
}
