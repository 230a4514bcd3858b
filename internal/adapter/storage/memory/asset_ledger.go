package memory

import (
	"context"
	"fmt"
	"sync"

	"expense-vault/internal/core/domain"
)

// AssetLedger implements ports.AssetLedger on an in-process map. It backs
// the demo mode and tests; semantics match the postgres adapter, including
// failed transfers leaving both balances untouched.
type AssetLedger struct {
	mu       sync.Mutex
	balances map[domain.Address]int64
}

// NewAssetLedger creates an empty in-memory ledger.
func NewAssetLedger() *AssetLedger {
	return &AssetLedger{balances: make(map[domain.Address]int64)}
}

// Transfer moves amount between accounts, failing on insufficient balance.
func (l *AssetLedger) Transfer(_ context.Context, from, to domain.Address, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("transfer amount must be positive, got %d", amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balances[from] < amount {
		return fmt.Errorf("account %s balance %d below transfer amount %d", from, l.balances[from], amount)
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	return nil
}

// BalanceOf reads an account balance. Unknown accounts hold zero.
func (l *AssetLedger) BalanceOf(_ context.Context, account domain.Address) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[account], nil
}

// Credit mints amount into an account. Demo funding and simulated yield.
func (l *AssetLedger) Credit(_ context.Context, account domain.Address, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("credit amount must be positive, got %d", amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[account] += amount
	return nil
}
