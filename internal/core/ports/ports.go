package ports

import (
	"context"

	"expense-vault/internal/core/domain"
)

// AssetLedger is the Asset Transfer Port: it moves the underlying fungible
// asset between accounts and answers balance queries. A failed call must
// leave the ledger unchanged so the enclosing vault operation can abort.
type AssetLedger interface {
	Transfer(ctx context.Context, from, to domain.Address, amount int64) error
	BalanceOf(ctx context.Context, account domain.Address) (int64, error)
}

// YieldVenue is the external yield-bearing venue behind the strategy
// adapter. The vault never consumes this directly; only the adapter does.
// Deposit moves funds from the adapter's idle balance into the venue,
// Withdraw the reverse. Position reports the adapter's current value inside
// the venue (principal plus accrued yield).
type YieldVenue interface {
	Deposit(ctx context.Context, amount int64) error
	Withdraw(ctx context.Context, amount int64) error
	Position(ctx context.Context) (int64, error)
}

// Strategy is the adapter boundary the vault consumes. All three calls must
// fail loudly rather than silently truncate when a requested amount cannot
// be honored.
type Strategy interface {
	TotalAssets(ctx context.Context) (int64, error)
	DepositFromVault(ctx context.Context, amount int64) error
	WithdrawToVault(ctx context.Context, amount int64) error
}

// SignerRecoverer is the Signature Verification Port: given a message digest
// and a signature blob it recovers the signing identity.
type SignerRecoverer interface {
	RecoverSigner(digest []byte, signature []byte) (domain.Address, error)
}

// EventSink receives the structured record emitted after each committed
// vault operation. Sinks are best-effort observers: a sink failure is logged
// by the vault but never aborts the already-committed operation.
type EventSink interface {
	Record(ctx context.Context, event *domain.VaultEvent) error
}

// EventRepository persists vault events for the external audit trail.
type EventRepository interface {
	Create(ctx context.Context, event *domain.VaultEvent) error
	ListRecent(ctx context.Context, limit int) ([]domain.VaultEvent, error)
}
