package ledger

import (
	errorsmod "cosmossdk.io/errors"
)

const codespace = "ledger"

// Every precondition failure terminates the operation with one of these
// errors. Failures are scoped to the single operation that raised them;
// the ledger remains usable afterwards.
var (
	ErrInvalidAccount        = errorsmod.Register(codespace, 2, "invalid account identifier")
	ErrUnauthorized          = errorsmod.Register(codespace, 3, "caller is not the ledger owner")
	ErrInvalidParameter      = errorsmod.Register(codespace, 4, "invalid policy parameter")
	ErrStakingPaused         = errorsmod.Register(codespace, 5, "staking is paused")
	ErrOutOfWindow           = errorsmod.Register(codespace, 6, "outside the staking window")
	ErrBelowMinimum          = errorsmod.Register(codespace, 7, "deposit below the minimum")
	ErrAboveMaximum          = errorsmod.Register(codespace, 8, "deposit exceeds the total stake cap")
	ErrInsufficientPrincipal = errorsmod.Register(codespace, 9, "withdrawal exceeds staked principal")
	ErrLockNotExpired        = errorsmod.Register(codespace, 10, "lock-up period has not expired")
	ErrNothingToClaim        = errorsmod.Register(codespace, 11, "no accrued reward to claim")
	ErrInsufficientFunds     = errorsmod.Register(codespace, 12, "custodied funds cannot cover the payout")
	ErrTransferFailed        = errorsmod.Register(codespace, 13, "asset transfer failed")
	ErrReentrantCall         = errorsmod.Register(codespace, 14, "operation already in progress")
)
