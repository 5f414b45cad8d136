package bankclient

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"go.uber.org/zap"

	"github.com/lodestake/staked/types"
)

const (
	memoryBackendName = "memory"
)

// Bank moves a single asset's value between holders and the ledger's
// custody account. The engine treats a returned error as fatal to the
// triggering operation and never retries a transfer; only balance queries
// are retryable.
type Bank interface {
	// TransferIn moves amount from the given holder into custody.
	TransferIn(from types.AccountID, amount sdkmath.Int) error

	// TransferOut moves amount from custody to the given holder.
	TransferOut(to types.AccountID, amount sdkmath.Int) error

	// BalanceOf returns the holder's current balance of this asset.
	BalanceOf(holder types.AccountID) (sdkmath.Int, error)

	Close() error
}

// NewBank creates a bank client for one asset denomination against the
// configured backend.
func NewBank(backend, denom string, custody types.AccountID, logger *zap.Logger) (Bank, error) {
	switch backend {
	case memoryBackendName:
		return NewMemoryBank(denom, custody, logger), nil
	default:
		return nil, fmt.Errorf("unsupported bank backend: %s", backend)
	}
}
