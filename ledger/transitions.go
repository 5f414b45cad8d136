package ledger

import (
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/lodestake/staked/types"
)

// pendingReward computes the reward rec accrues between its checkpoint and
// now: elapsed * principal * rate / denominator, with the scaling
// denominator applied last so small fractional rates do not truncate to
// zero prematurely. Zero principal or zero elapsed time accrues nothing.
func pendingReward(rec *types.AccountRecord, now uint64, rewardRate uint64) sdkmath.Int {
	if !rec.Principal.IsPositive() || now <= rec.RewardCheckpoint {
		return sdkmath.ZeroInt()
	}

	elapsed := sdkmath.NewIntFromUint64(now - rec.RewardCheckpoint)

	return elapsed.
		Mul(rec.Principal).
		Mul(sdkmath.NewIntFromUint64(rewardRate)).
		QuoRaw(types.RateDenominator)
}

// settle folds the reward accrued through now into the record and advances
// its checkpoint. It never fails and is a no-op when no clock units have
// elapsed since the last settlement.
func settle(rec *types.AccountRecord, now uint64, rewardRate uint64) {
	inc := pendingReward(rec, now, rewardRate)
	if inc.IsPositive() {
		rec.AccruedReward = rec.AccruedReward.Add(inc)
	}

	if now > rec.RewardCheckpoint {
		rec.RewardCheckpoint = now
	}
}

// Deposit locks the given amount of the caller's stake tokens in the ledger.
func (e *Engine) Deposit(caller types.AccountID, amount sdkmath.Int) error {
	return e.deposit("deposit", caller, caller, amount)
}

// deposit runs the deposit transition crediting the given account, pulling
// the stake from the payer. All validation happens up front; the ledger is
// only mutated once the transfer has succeeded, so a failed transfer leaves
// no trace.
func (e *Engine) deposit(op string, payer, account types.AccountID, amount sdkmath.Int) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	start := time.Now()
	defer func() {
		timedOperationLag.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	if err := account.Validate(); err != nil {
		return e.reject(op, ErrInvalidAccount.Wrap(err.Error()))
	}
	if amount.IsNil() {
		return e.reject(op, ErrInvalidParameter.Wrap("nil deposit amount"))
	}

	now := e.clock.Now()

	e.mu.RLock()
	pol := e.policy
	projected := e.totalPrincipal.Add(amount)
	var next types.AccountRecord
	rec, exists := e.accounts[account]
	if exists {
		next = *rec
	}
	e.mu.RUnlock()

	switch {
	case pol.Paused:
		return e.reject(op, ErrStakingPaused)
	case amount.LT(pol.MinDeposit):
		return e.reject(op, ErrBelowMinimum.Wrapf(
			"deposit %s is below the minimum %s", amount, pol.MinDeposit))
	case projected.GT(pol.MaxTotalStake):
		return e.reject(op, ErrAboveMaximum.Wrapf(
			"total principal would reach %s, cap is %s", projected, pol.MaxTotalStake))
	case now < pol.WindowStart || now >= pol.WindowEnd:
		return e.reject(op, ErrOutOfWindow.Wrapf(
			"clock %d is outside [%d, %d)", now, pol.WindowStart, pol.WindowEnd))
	}

	if exists {
		// settle the pre-existing principal through now so the fresh
		// deposit cannot retroactively dilute rewards already earned
		settle(&next, now, pol.RewardRate)
	} else {
		next = types.NewAccountRecord(now)
	}
	next.DepositTimestamp = now
	next.Principal = next.Principal.Add(amount)

	if err := e.stakeBank.TransferIn(payer, amount); err != nil {
		return e.reject(op, ErrTransferFailed.Wrap(err.Error()))
	}

	e.mu.Lock()
	e.accounts[account] = &next
	e.totalPrincipal = e.totalPrincipal.Add(amount)
	if !exists {
		e.holderCount++
	}
	e.mu.Unlock()

	totalDeposits.Inc()
	depositTime := time.Now()
	metricsTimeKeeper.SetPreviousDeposit(&depositTime)

	e.sink.Publish(types.DepositEvent{
		Account:      account,
		Amount:       amount,
		NewPrincipal: next.Principal,
		Timestamp:    now,
	})

	return nil
}

// Withdraw returns up to the caller's full principal. Under the hard-lock
// policy it is rejected until the lock-up has expired; under the
// early-exit-fee policy an early withdrawal pays out minus the fee, which
// stays custodied. A withdrawal that empties the account deletes its record
// and discards any unclaimed reward.
func (e *Engine) Withdraw(caller types.AccountID, amount sdkmath.Int) error {
	const op = "withdraw"

	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	start := time.Now()
	defer func() {
		timedOperationLag.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	if err := caller.Validate(); err != nil {
		return e.reject(op, ErrInvalidAccount.Wrap(err.Error()))
	}
	if amount.IsNil() || !amount.IsPositive() {
		return e.reject(op, ErrInvalidParameter.Wrap("withdrawal amount must be positive"))
	}

	now := e.clock.Now()

	e.mu.RLock()
	pol := e.policy
	var next types.AccountRecord
	rec, exists := e.accounts[caller]
	if exists {
		next = *rec
	}
	e.mu.RUnlock()

	if !exists {
		return e.reject(op, ErrInsufficientPrincipal.Wrap("account holds no stake"))
	}
	if amount.GT(next.Principal) {
		return e.reject(op, ErrInsufficientPrincipal.Wrapf(
			"requested %s exceeds principal %s", amount, next.Principal))
	}

	fee := sdkmath.ZeroInt()
	if lockedUntil := next.DepositTimestamp + pol.LockDuration; now < lockedUntil {
		switch pol.LockPolicy {
		case types.LockPolicyHardLock:
			return e.reject(op, ErrLockNotExpired.Wrapf(
				"locked until %d, clock is %d", lockedUntil, now))
		case types.LockPolicyEarlyExitFee:
			fee = amount.MulRaw(int64(pol.EarlyExitFeeRate)).QuoRaw(types.RateDenominator)
		}
	}
	payout := amount.Sub(fee)

	bal, err := e.custodyBalance(e.stakeBank)
	if err != nil {
		return e.reject(op, ErrTransferFailed.Wrapf("custody balance query: %s", err))
	}
	if bal.LT(payout) {
		return e.reject(op, ErrInsufficientFunds.Wrapf(
			"custody holds %s, payout is %s", bal, payout))
	}

	settle(&next, now, pol.RewardRate)
	next.Principal = next.Principal.Sub(amount)

	emptied := next.Principal.IsZero()
	forfeited := sdkmath.ZeroInt()
	if emptied {
		// the record goes away with its unclaimed reward; the matching
		// reward-token balance stays custodied and becomes owner surplus
		forfeited = next.AccruedReward
	}

	if payout.IsPositive() {
		if err := e.stakeBank.TransferOut(caller, payout); err != nil {
			return e.reject(op, ErrTransferFailed.Wrap(err.Error()))
		}
	}

	e.mu.Lock()
	if emptied {
		delete(e.accounts, caller)
		e.holderCount--
	} else {
		e.accounts[caller] = &next
	}
	e.totalPrincipal = e.totalPrincipal.Sub(amount)
	e.mu.Unlock()

	totalWithdrawals.Inc()
	if fee.IsPositive() {
		earlyExitFeesRetained.Add(amountMetric(fee))
	}
	if forfeited.IsPositive() {
		rewardsForfeited.Add(amountMetric(forfeited))
	}
	withdrawalTime := time.Now()
	metricsTimeKeeper.SetPreviousWithdrawal(&withdrawalTime)

	e.sink.Publish(types.WithdrawEvent{
		Account:         caller,
		Amount:          amount,
		Fee:             fee,
		ForfeitedReward: forfeited,
		Timestamp:       now,
	})

	return nil
}

// Claim settles the caller's reward through the current clock and pays the
// full accrued amount out in reward tokens. The accrued balance is only
// zeroed once the transfer has succeeded.
func (e *Engine) Claim(caller types.AccountID) error {
	const op = "claim"

	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	start := time.Now()
	defer func() {
		timedOperationLag.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	if err := caller.Validate(); err != nil {
		return e.reject(op, ErrInvalidAccount.Wrap(err.Error()))
	}

	now := e.clock.Now()

	e.mu.RLock()
	pol := e.policy
	var next types.AccountRecord
	rec, exists := e.accounts[caller]
	if exists {
		next = *rec
	}
	e.mu.RUnlock()

	if !exists {
		return e.reject(op, ErrNothingToClaim.Wrap("account holds no stake"))
	}

	settle(&next, now, pol.RewardRate)
	total := next.AccruedReward
	if total.IsZero() {
		return e.reject(op, ErrNothingToClaim)
	}

	bal, err := e.custodyBalance(e.rewardBank)
	if err != nil {
		return e.reject(op, ErrTransferFailed.Wrapf("custody balance query: %s", err))
	}
	if bal.LT(total) {
		return e.reject(op, ErrInsufficientFunds.Wrapf(
			"custody holds %s reward tokens, claim is %s", bal, total))
	}

	if err := e.rewardBank.TransferOut(caller, total); err != nil {
		return e.reject(op, ErrTransferFailed.Wrap(err.Error()))
	}

	next.AccruedReward = sdkmath.ZeroInt()
	next.CumulativeClaimed = next.CumulativeClaimed.Add(total)

	e.mu.Lock()
	e.accounts[caller] = &next
	e.mu.Unlock()

	totalClaims.Inc()
	rewardsClaimed.Add(amountMetric(total))
	claimTime := time.Now()
	metricsTimeKeeper.SetPreviousClaim(&claimTime)

	e.sink.Publish(types.ClaimEvent{
		Account:   caller,
		Amount:    total,
		Timestamp: now,
	})

	return nil
}
