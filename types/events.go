package types

import (
	sdkmath "cosmossdk.io/math"
)

// Event is a notification emitted by the ledger engine after a committed
// state transition.
type Event interface {
	Kind() string
}

// EventSink receives engine notifications. Publish must not call back into
// the engine's state-changing operations.
type EventSink interface {
	Publish(ev Event)
}

type DepositEvent struct {
	Account      AccountID
	Amount       sdkmath.Int
	NewPrincipal sdkmath.Int
	Timestamp    uint64
}

func (DepositEvent) Kind() string { return "deposit" }

type WithdrawEvent struct {
	Account AccountID
	Amount  sdkmath.Int
	// Fee retained by the ledger under the early-exit-fee policy;
	// zero otherwise
	Fee sdkmath.Int
	// Unclaimed reward discarded because the withdrawal emptied the account
	ForfeitedReward sdkmath.Int
	Timestamp       uint64
}

func (WithdrawEvent) Kind() string { return "withdraw" }

type ClaimEvent struct {
	Account   AccountID
	Amount    sdkmath.Int
	Timestamp uint64
}

func (ClaimEvent) Kind() string { return "claim" }

type SurplusSweptEvent struct {
	Amount    sdkmath.Int
	Timestamp uint64
}

func (SurplusSweptEvent) Kind() string { return "surplus_swept" }

type PauseToggledEvent struct {
	Paused    bool
	Timestamp uint64
}

func (PauseToggledEvent) Kind() string { return "pause_toggled" }

type PolicyUpdatedEvent struct {
	Field     string
	Timestamp uint64
}

func (PolicyUpdatedEvent) Kind() string { return "policy_updated" }
