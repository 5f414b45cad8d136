package ledger

import (
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/lodestake/staked/types"
)

// StakeOnBehalfOf runs the deposit transition credited to the given account,
// funded from the owner's balance. Owner-gated.
func (e *Engine) StakeOnBehalfOf(caller, account types.AccountID, amount sdkmath.Int) error {
	const op = "stake_on_behalf_of"

	if err := e.requireOwner(caller); err != nil {
		return e.reject(op, err)
	}

	return e.deposit(op, caller, account, amount)
}

// SweepSurplus transfers up to the custodied stake-token balance in excess
// of the total principal (forfeited fees and the like) to the owner.
func (e *Engine) SweepSurplus(caller types.AccountID, amount sdkmath.Int) error {
	const op = "sweep_surplus"

	if err := e.requireOwner(caller); err != nil {
		return e.reject(op, err)
	}

	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	start := time.Now()
	defer func() {
		timedOperationLag.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	if amount.IsNil() || !amount.IsPositive() {
		return e.reject(op, ErrInvalidParameter.Wrap("sweep amount must be positive"))
	}

	bal, err := e.custodyBalance(e.stakeBank)
	if err != nil {
		return e.reject(op, ErrTransferFailed.Wrapf("custody balance query: %s", err))
	}

	e.mu.RLock()
	total := e.totalPrincipal
	e.mu.RUnlock()

	surplus := bal.Sub(total)
	if amount.GT(surplus) {
		return e.reject(op, ErrInsufficientFunds.Wrapf(
			"surplus is %s, requested %s", surplus, amount))
	}

	if err := e.stakeBank.TransferOut(e.owner, amount); err != nil {
		return e.reject(op, ErrTransferFailed.Wrap(err.Error()))
	}

	e.sink.Publish(types.SurplusSweptEvent{
		Amount:    amount,
		Timestamp: e.clock.Now(),
	})

	return nil
}

// TogglePause flips the pause flag and returns the new value. While paused,
// deposits are rejected; withdrawals and claims stay available.
func (e *Engine) TogglePause(caller types.AccountID) (bool, error) {
	const op = "toggle_pause"

	if err := e.requireOwner(caller); err != nil {
		return false, e.reject(op, err)
	}

	if err := e.begin(); err != nil {
		return false, err
	}
	defer e.end()

	e.mu.Lock()
	e.policy.Paused = !e.policy.Paused
	paused := e.policy.Paused
	e.mu.Unlock()

	e.sink.Publish(types.PauseToggledEvent{
		Paused:    paused,
		Timestamp: e.clock.Now(),
	})

	return paused, nil
}

// updatePolicy applies one owner-gated setter to the policy registry. The
// mutation is validated against a copy and committed only when it succeeds.
func (e *Engine) updatePolicy(op, field string, caller types.AccountID, mutate func(p *types.PolicyParams) error) error {
	if err := e.requireOwner(caller); err != nil {
		return e.reject(op, err)
	}

	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	e.mu.Lock()
	updated := e.policy
	err := mutate(&updated)
	if err == nil {
		e.policy = updated
	}
	e.mu.Unlock()

	if err != nil {
		return e.reject(op, err)
	}

	e.sink.Publish(types.PolicyUpdatedEvent{
		Field:     field,
		Timestamp: e.clock.Now(),
	})

	return nil
}

// SetWindowEnd moves the staking window's close. The new end must be
// strictly in the future and after the window start.
func (e *Engine) SetWindowEnd(caller types.AccountID, end uint64) error {
	now := e.clock.Now()

	return e.updatePolicy("set_window_end", "window_end", caller, func(p *types.PolicyParams) error {
		if end <= now {
			return ErrInvalidParameter.Wrapf(
				"window end %d is not in the future (clock is %d)", end, now)
		}
		if end <= p.WindowStart {
			return ErrInvalidParameter.Wrapf(
				"window end %d is not after start %d", end, p.WindowStart)
		}
		p.WindowEnd = end
		return nil
	})
}

func (e *Engine) SetMinDeposit(caller types.AccountID, min sdkmath.Int) error {
	return e.updatePolicy("set_min_deposit", "min_deposit", caller, func(p *types.PolicyParams) error {
		if min.IsNil() || !min.IsPositive() {
			return ErrInvalidParameter.Wrap("minimum deposit must be positive")
		}
		if min.GT(p.MaxTotalStake) {
			return ErrInvalidParameter.Wrapf(
				"minimum deposit %s exceeds the total stake cap %s", min, p.MaxTotalStake)
		}
		p.MinDeposit = min
		return nil
	})
}

func (e *Engine) SetMaxTotalStake(caller types.AccountID, max sdkmath.Int) error {
	return e.updatePolicy("set_max_total_stake", "max_total_stake", caller, func(p *types.PolicyParams) error {
		if max.IsNil() || max.LT(p.MinDeposit) {
			return ErrInvalidParameter.Wrap(
				"total stake cap must be at least the minimum deposit")
		}
		p.MaxTotalStake = max
		return nil
	})
}

// SetRewardRate changes the accrual rate. The new rate applies to all
// elapsed time that has not been settled yet, so accounts keep accruing at
// the old rate only up to their last settlement.
func (e *Engine) SetRewardRate(caller types.AccountID, rate uint64) error {
	return e.updatePolicy("set_reward_rate", "reward_rate", caller, func(p *types.PolicyParams) error {
		if rate == 0 {
			return ErrInvalidParameter.Wrap("reward rate must be positive")
		}
		p.RewardRate = rate
		return nil
	})
}

func (e *Engine) SetLockDuration(caller types.AccountID, duration uint64) error {
	return e.updatePolicy("set_lock_duration", "lock_duration", caller, func(p *types.PolicyParams) error {
		if duration == 0 {
			return ErrInvalidParameter.Wrap("lock duration must be positive")
		}
		p.LockDuration = duration
		return nil
	})
}

func (e *Engine) SetEarlyExitFee(caller types.AccountID, rate uint64) error {
	return e.updatePolicy("set_early_exit_fee", "early_exit_fee", caller, func(p *types.PolicyParams) error {
		if rate > types.RateDenominator {
			return ErrInvalidParameter.Wrapf(
				"early exit fee rate %d exceeds denominator %d", rate, types.RateDenominator)
		}
		p.EarlyExitFeeRate = rate
		return nil
	})
}
