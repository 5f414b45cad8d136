package ledger

import (
	"go.uber.org/zap"

	"github.com/lodestake/staked/types"
)

// logSink is the default event sink; it records every committed transition
// as a structured log line.
type logSink struct {
	logger *zap.Logger
}

var _ types.EventSink = (*logSink)(nil)

func newLogSink(logger *zap.Logger) *logSink {
	return &logSink{logger: logger}
}

func (s *logSink) Publish(ev types.Event) {
	switch e := ev.(type) {
	case types.DepositEvent:
		s.logger.Info("deposit",
			zap.String("account", e.Account.String()),
			zap.String("amount", e.Amount.String()),
			zap.String("new_principal", e.NewPrincipal.String()),
			zap.Uint64("timestamp", e.Timestamp),
		)
	case types.WithdrawEvent:
		s.logger.Info("withdrawal",
			zap.String("account", e.Account.String()),
			zap.String("amount", e.Amount.String()),
			zap.String("fee", e.Fee.String()),
			zap.String("forfeited_reward", e.ForfeitedReward.String()),
			zap.Uint64("timestamp", e.Timestamp),
		)
	case types.ClaimEvent:
		s.logger.Info("reward claim",
			zap.String("account", e.Account.String()),
			zap.String("amount", e.Amount.String()),
			zap.Uint64("timestamp", e.Timestamp),
		)
	case types.SurplusSweptEvent:
		s.logger.Info("surplus swept",
			zap.String("amount", e.Amount.String()),
			zap.Uint64("timestamp", e.Timestamp),
		)
	case types.PauseToggledEvent:
		s.logger.Info("pause toggled",
			zap.Bool("paused", e.Paused),
			zap.Uint64("timestamp", e.Timestamp),
		)
	case types.PolicyUpdatedEvent:
		s.logger.Info("policy updated",
			zap.String("field", e.Field),
			zap.Uint64("timestamp", e.Timestamp),
		)
	default:
		s.logger.Info("ledger event", zap.String("kind", ev.Kind()))
	}
}
