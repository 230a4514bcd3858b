package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind labels a committed vault operation.
type EventKind string

const (
	EventDeposit     EventKind = "DEPOSIT"
	EventWithdraw    EventKind = "WITHDRAW"
	EventSpend       EventKind = "SPEND"
	EventInvest      EventKind = "INVEST"
	EventDivest      EventKind = "DIVEST"
	EventPolicySet   EventKind = "POLICY_SET"
	EventMerchantSet EventKind = "MERCHANT_SET"
)

// VaultEvent is the structured record emitted after every committed
// operation. It carries enough for an external audit trail without the
// observer re-deriving accounting state.
type VaultEvent struct {
	ID         uuid.UUID `json:"id"`
	Kind       EventKind `json:"kind"`
	Owner      Address   `json:"owner"`
	Spender    Address   `json:"spender,omitempty"`
	Merchant   Address   `json:"merchant,omitempty"`
	Amount     int64     `json:"amount"`
	ShareDelta int64     `json:"share_delta"` // positive = mint, negative = burn
	DayBucket  int64     `json:"day_bucket"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
