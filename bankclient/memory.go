package bankclient

import (
	"fmt"
	"sync"

	sdkmath "cosmossdk.io/math"
	"go.uber.org/zap"

	"github.com/lodestake/staked/types"
)

// MemoryBank keeps balances in process memory. It backs single-node
// deployments and the integration tests; minting is only available here.
type MemoryBank struct {
	mu       sync.Mutex
	denom    string
	custody  types.AccountID
	balances map[types.AccountID]sdkmath.Int

	logger *zap.Logger
}

var _ Bank = (*MemoryBank)(nil)

func NewMemoryBank(denom string, custody types.AccountID, logger *zap.Logger) *MemoryBank {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &MemoryBank{
		denom:    denom,
		custody:  custody,
		balances: make(map[types.AccountID]sdkmath.Int),
		logger:   logger,
	}
}

// Mint credits the holder with freshly created funds.
func (b *MemoryBank) Mint(to types.AccountID, amount sdkmath.Int) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("mint amount must be positive")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.balances[to] = b.balanceLocked(to).Add(amount)

	return nil
}

func (b *MemoryBank) TransferIn(from types.AccountID, amount sdkmath.Int) error {
	return b.transfer(from, b.custody, amount)
}

func (b *MemoryBank) TransferOut(to types.AccountID, amount sdkmath.Int) error {
	return b.transfer(b.custody, to, amount)
}

func (b *MemoryBank) BalanceOf(holder types.AccountID) (sdkmath.Int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.balanceLocked(holder), nil
}

func (b *MemoryBank) Close() error {
	return nil
}

func (b *MemoryBank) transfer(from, to types.AccountID, amount sdkmath.Int) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("transfer amount must be positive")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	fromBal := b.balanceLocked(from)
	if fromBal.LT(amount) {
		return fmt.Errorf("insufficient %s balance of %s: have %s, need %s",
			b.denom, from, fromBal, amount)
	}

	b.balances[from] = fromBal.Sub(amount)
	b.balances[to] = b.balanceLocked(to).Add(amount)

	b.logger.Debug("transferred funds",
		zap.String("denom", b.denom),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.String("amount", amount.String()),
	)

	return nil
}

func (b *MemoryBank) balanceLocked(holder types.AccountID) sdkmath.Int {
	bal, ok := b.balances[holder]
	if !ok {
		return sdkmath.ZeroInt()
	}

	return bal
}
