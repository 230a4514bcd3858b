package strategy

import (
	"context"
	"fmt"
	"sync"

	"expense-vault/internal/core/domain"
)

// Crediter is the extra capability SimVenue needs from a ledger to material-
// ize simulated yield. Both the memory and postgres ledgers provide it.
type Crediter interface {
	Credit(ctx context.Context, account domain.Address, amount int64) error
}

// SimLedger combines the transfer surface with crediting.
type SimLedger interface {
	Transfer(ctx context.Context, from, to domain.Address, amount int64) error
	Crediter
}

// SimVenue is a simulated yield venue for demo mode and tests. It holds real
// ledger balance in its own account and tracks its position explicitly, so
// the strategy adapter on top of it behaves exactly as with a live venue.
type SimVenue struct {
	mu       sync.Mutex
	assets   SimLedger
	account  domain.Address // the venue's ledger account
	holder   domain.Address // the strategy adapter's account
	position int64
}

// NewSimVenue creates an empty simulated venue.
func NewSimVenue(assets SimLedger, account, holder domain.Address) *SimVenue {
	return &SimVenue{assets: assets, account: account, holder: holder}
}

// Deposit moves amount from the holder into the venue.
func (v *SimVenue) Deposit(ctx context.Context, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("deposit amount must be positive, got %d", amount)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.assets.Transfer(ctx, v.holder, v.account, amount); err != nil {
		return err
	}
	v.position += amount
	return nil
}

// Withdraw moves amount from the venue back to the holder. Fails loudly when
// the position cannot honor the request.
func (v *SimVenue) Withdraw(ctx context.Context, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("withdraw amount must be positive, got %d", amount)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.position < amount {
		return fmt.Errorf("venue position %d below requested %d", v.position, amount)
	}
	if err := v.assets.Transfer(ctx, v.account, v.holder, amount); err != nil {
		return err
	}
	v.position -= amount
	return nil
}

// Position reports the holder's current value in the venue.
func (v *SimVenue) Position(_ context.Context) (int64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.position, nil
}

// Accrue simulates yield: mints amount into the venue's account and grows
// the position by the same amount.
func (v *SimVenue) Accrue(ctx context.Context, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("accrual amount must be positive, got %d", amount)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.assets.Credit(ctx, v.account, amount); err != nil {
		return err
	}
	v.position += amount
	return nil
}
