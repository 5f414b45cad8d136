package service

import (
	"fmt"
	"sync/atomic"

	"github.com/lightningnetwork/lnd/signal"
	"go.uber.org/zap"

	"github.com/lodestake/staked/ledger"
)

// LedgerServer is the main daemon construct for the staking ledger.
type LedgerServer struct {
	started int32

	engine *ledger.Engine

	logger *zap.Logger

	interceptor signal.Interceptor
}

// NewLedgerServer creates a new server wrapping the given engine.
func NewLedgerServer(l *zap.Logger, engine *ledger.Engine, sig signal.Interceptor) *LedgerServer {
	return &LedgerServer{
		logger:      l,
		engine:      engine,
		interceptor: sig,
	}
}

// RunUntilShutdown runs the main staking ledger loop until a signal is
// received to shut down the process.
func (s *LedgerServer) RunUntilShutdown() error {
	if atomic.AddInt32(&s.started, 1) != 1 {
		return nil
	}

	metricsCfg := s.engine.Config().Metrics
	promAddr, err := metricsCfg.Address()
	if err != nil {
		return err
	}

	ps := NewPrometheusServer(promAddr, s.logger)

	defer func() {
		ps.Stop()
		s.logger.Info("Shutdown Prometheus server complete")
		_ = s.engine.Stop()
		s.logger.Info("Shutdown staking ledger server complete")
	}()

	go ps.Start()

	if err := s.engine.Start(); err != nil {
		return fmt.Errorf("failed to start the staking ledger engine: %w", err)
	}

	s.logger.Info("Staking Ledger Daemon is fully active!")

	// Wait for shutdown signal from either a graceful server stop or from
	// the interrupt handler.
	<-s.interceptor.ShutdownChannel()

	return nil
}
