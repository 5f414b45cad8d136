package ledger

import (
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"

	"github.com/lodestake/staked/bankclient"
	"github.com/lodestake/staked/clock"
	stakedcfg "github.com/lodestake/staked/config"
	"github.com/lodestake/staked/types"
)

var (
	RtyAttNum = uint(5)
	RtyAtt    = retry.Attempts(RtyAttNum)
	RtyDel    = retry.Delay(time.Millisecond * 400)
	RtyErr    = retry.LastErrorOnly(true)
)

// Engine is the staking ledger engine. It owns the account ledger and the
// policy registry exclusively; every state transition runs through its
// public operations, one at a time, to completion.
type Engine struct {
	startOnce sync.Once
	stopOnce  sync.Once

	wg   sync.WaitGroup
	quit chan struct{}

	// inFlight rejects any nested or overlapping state-changing operation
	// before it can observe intermediate state
	inFlight atomic.Bool

	// mu guards the account map, the policy registry and the aggregates so
	// read-only queries stay consistent while a transfer is outstanding
	mu             sync.RWMutex
	accounts       map[types.AccountID]*types.AccountRecord
	policy         types.PolicyParams
	totalPrincipal sdkmath.Int
	holderCount    uint64

	owner   types.AccountID
	custody types.AccountID

	stakeBank  bankclient.Bank
	rewardBank bankclient.Bank
	clock      clock.Source

	config *stakedcfg.Config
	logger *zap.Logger
	sink   types.EventSink
}

func NewEngine(
	config *stakedcfg.Config,
	policy types.PolicyParams,
	stakeBank bankclient.Bank,
	rewardBank bankclient.Bank,
	src clock.Source,
	logger *zap.Logger,
	sink types.EventSink,
) (*Engine, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid staking policy: %w", err)
	}

	if stakeBank == nil || rewardBank == nil {
		return nil, fmt.Errorf("both stake and reward banks are required")
	}

	if src == nil {
		return nil, fmt.Errorf("clock source is required")
	}

	owner := types.AccountID(config.OwnerAccount)
	if err := owner.Validate(); err != nil {
		return nil, fmt.Errorf("invalid owner account: %w", err)
	}

	custody := types.AccountID(config.CustodyAccount)
	if err := custody.Validate(); err != nil {
		return nil, fmt.Errorf("invalid custody account: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	if sink == nil {
		sink = newLogSink(logger)
	}

	return &Engine{
		accounts:       make(map[types.AccountID]*types.AccountRecord),
		policy:         policy,
		totalPrincipal: sdkmath.ZeroInt(),
		owner:          owner,
		custody:        custody,
		stakeBank:      stakeBank,
		rewardBank:     rewardBank,
		clock:          src,
		config:         config,
		logger:         logger,
		sink:           sink,
		quit:           make(chan struct{}),
	}, nil
}

func (e *Engine) Config() *stakedcfg.Config {
	return e.config
}

func (e *Engine) Owner() types.AccountID {
	return e.owner
}

// Policy returns a copy of the current policy registry.
func (e *Engine) Policy() types.PolicyParams {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.policy
}

// Account returns a snapshot of the holder's ledger record. The second
// return value reports whether the account holds stake.
func (e *Engine) Account(id types.AccountID) (types.AccountRecord, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rec, ok := e.accounts[id]
	if !ok {
		return types.AccountRecord{}, false
	}

	return *rec, true
}

// EstimatedReward returns the account's accrued reward plus what settlement
// through the current clock would add. It never mutates the ledger.
func (e *Engine) EstimatedReward(id types.AccountID) sdkmath.Int {
	now := e.clock.Now()

	e.mu.RLock()
	defer e.mu.RUnlock()

	rec, ok := e.accounts[id]
	if !ok {
		return sdkmath.ZeroInt()
	}

	return rec.AccruedReward.Add(pendingReward(rec, now, e.policy.RewardRate))
}

// TotalStaked returns the sum of principal over all live accounts.
func (e *Engine) TotalStaked() sdkmath.Int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.totalPrincipal
}

// HolderCount returns the number of accounts with positive principal.
func (e *Engine) HolderCount() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.holderCount
}

// begin acquires the run-to-completion guard. Any operation invoked while
// another one is executing, including a callback from a bank mid-transfer,
// is rejected outright.
func (e *Engine) begin() error {
	if !e.inFlight.CompareAndSwap(false, true) {
		return ErrReentrantCall
	}

	return nil
}

func (e *Engine) end() {
	e.inFlight.Store(false)
}

func (e *Engine) reject(op string, err error) error {
	failedOperations.WithLabelValues(op).Inc()
	e.logger.Debug("operation rejected",
		zap.String("operation", op),
		zap.Error(err),
	)

	return err
}

func (e *Engine) requireOwner(caller types.AccountID) error {
	if caller != e.owner {
		return ErrUnauthorized.Wrapf("caller %s", caller)
	}

	return nil
}

// custodyBalance queries the ledger's custodied balance of the given asset.
// Unlike transfers, balance queries are retryable.
func (e *Engine) custodyBalance(bank bankclient.Bank) (sdkmath.Int, error) {
	var bal sdkmath.Int

	if err := retry.Do(func() error {
		var err error
		bal, err = bank.BalanceOf(e.custody)
		if err != nil {
			return err
		}
		return nil
	}, RtyAtt, RtyDel, RtyErr, retry.OnRetry(func(n uint, err error) {
		e.logger.Debug(
			"failed to query the custody balance",
			zap.Uint("attempt", n+1),
			zap.Uint("max_attempts", RtyAttNum),
			zap.Error(err),
		)
	})); err != nil {
		return sdkmath.Int{}, err
	}

	return bal, nil
}

func (e *Engine) metricsUpdateLoop() {
	defer e.wg.Done()

	interval := e.config.Metrics.UpdateInterval
	e.logger.Info("starting metrics update loop",
		zap.Float64("interval seconds", interval.Seconds()))
	updateTicker := time.NewTicker(interval)

	for {
		select {
		case <-updateTicker.C:
			metricsTimeKeeper.UpdatePrometheusMetrics()

			e.mu.RLock()
			totalPrincipalGauge.Set(amountMetric(e.totalPrincipal))
			holderCountGauge.Set(float64(e.holderCount))
			e.mu.RUnlock()

			if bal, err := e.stakeBank.BalanceOf(e.custody); err == nil {
				custodiedBalanceGauge.WithLabelValues("stake").Set(amountMetric(bal))
			}
			if bal, err := e.rewardBank.BalanceOf(e.custody); err == nil {
				custodiedBalanceGauge.WithLabelValues("reward").Set(amountMetric(bal))
			}
		case <-e.quit:
			updateTicker.Stop()
			e.logger.Info("exiting metrics update loop")
			return
		}
	}
}

func (e *Engine) Start() error {
	var startErr error
	e.startOnce.Do(func() {
		e.logger.Info("Starting Staking Ledger Engine")

		e.wg.Add(1)
		go e.metricsUpdateLoop()
	})

	return startErr
}

func (e *Engine) Stop() error {
	var stopErr error
	e.stopOnce.Do(func() {
		e.logger.Info("Stopping Staking Ledger Engine")

		close(e.quit)
		e.wg.Wait()

		e.logger.Debug("Staking Ledger Engine successfully stopped")
	})

	return stopErr
}

// amountMetric reports an arbitrary-precision amount as a float64 gauge or
// counter value.
func amountMetric(v sdkmath.Int) float64 {
	f, _ := new(big.Float).SetInt(v.BigInt()).Float64()

	return f
}
