package ledger

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metricsTimer struct {
	mu                                                 sync.Mutex
	previousDeposit, previousWithdrawal, previousClaim *time.Time
}

func newMetricsTimer() *metricsTimer {
	return &metricsTimer{
		mu: sync.Mutex{},
	}
}

func (mt *metricsTimer) SetPreviousDeposit(t *time.Time) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.previousDeposit = t
}

func (mt *metricsTimer) SetPreviousWithdrawal(t *time.Time) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.previousWithdrawal = t
}

func (mt *metricsTimer) SetPreviousClaim(t *time.Time) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.previousClaim = t
}

func (mt *metricsTimer) UpdatePrometheusMetrics() {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	// each gauge starts reporting once its transition has happened at least once
	if mt.previousDeposit != nil {
		secondsSinceLastDeposit.Set(time.Since(*mt.previousDeposit).Seconds())
	}
	if mt.previousWithdrawal != nil {
		secondsSinceLastWithdrawal.Set(time.Since(*mt.previousWithdrawal).Seconds())
	}
	if mt.previousClaim != nil {
		secondsSinceLastClaim.Set(time.Since(*mt.previousClaim).Seconds())
	}
}

var (
	// Variables to calculate Prometheus Metrics
	metricsTimeKeeper = newMetricsTimer()

	// Prometheus metrics
	totalDeposits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staked_deposits_total",
		Help: "Total number of committed deposits",
	})
	totalWithdrawals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staked_withdrawals_total",
		Help: "Total number of committed withdrawals",
	})
	totalClaims = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staked_claims_total",
		Help: "Total number of committed reward claims",
	})
	failedOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staked_failed_operations_total",
			Help: "Total number of rejected or failed operations",
		},
		[]string{"operation"},
	)
	totalPrincipalGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "staked_total_principal",
		Help: "Sum of principal over all live accounts",
	})
	holderCountGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "staked_holder_count",
		Help: "Number of accounts with positive principal",
	})
	custodiedBalanceGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "staked_custodied_balance",
			Help: "Balance held in the ledger's custody account per asset",
		},
		[]string{"asset"},
	)
	earlyExitFeesRetained = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staked_early_exit_fees_total",
		Help: "Cumulative stake-token amount retained as early-exit fees",
	})
	rewardsClaimed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staked_rewards_claimed_total",
		Help: "Cumulative reward-token amount paid out to claimers",
	})
	rewardsForfeited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staked_rewards_forfeited_total",
		Help: "Cumulative unclaimed reward discarded on full withdrawal",
	})
	secondsSinceLastDeposit = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "staked_seconds_since_last_deposit",
		Help: "Seconds since the last committed deposit",
	})
	secondsSinceLastWithdrawal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "staked_seconds_since_last_withdrawal",
		Help: "Seconds since the last committed withdrawal",
	})
	secondsSinceLastClaim = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "staked_seconds_since_last_claim",
		Help: "Seconds since the last committed reward claim",
	})
	timedOperationLag = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "staked_operation_seconds",
			Help:       "Seconds taken to execute a ledger operation",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"operation"},
	)
)
