package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"expense-vault/internal/core/domain"
)

// AssetLedger implements ports.AssetLedger on an accounts table. Transfers
// run in a transaction with the source row locked, so a failed call leaves
// both balances untouched.
type AssetLedger struct {
	pool Pool
}

// NewAssetLedger creates a postgres-backed asset ledger.
func NewAssetLedger(pool Pool) *AssetLedger {
	return &AssetLedger{pool: pool}
}

// Transfer moves amount from one account to another atomically. It fails if
// the source balance is insufficient.
func (l *AssetLedger) Transfer(ctx context.Context, from, to domain.Address, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("transfer amount must be positive, got %d", amount)
	}

	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transfer: %w", err)
	}
	defer tx.Rollback(ctx)

	var balance int64
	err = tx.QueryRow(ctx,
		`SELECT balance FROM accounts WHERE address = $1 FOR UPDATE`, from,
	).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("account %s has no balance", from)
	}
	if err != nil {
		return fmt.Errorf("lock source account: %w", err)
	}
	if balance < amount {
		return fmt.Errorf("account %s balance %d below transfer amount %d", from, balance, amount)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE accounts SET balance = balance - $1, updated_at = NOW() WHERE address = $2`,
		amount, from,
	); err != nil {
		return fmt.Errorf("debit source account: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO accounts (address, balance) VALUES ($1, $2)
		 ON CONFLICT (address) DO UPDATE SET balance = accounts.balance + $2, updated_at = NOW()`,
		to, amount,
	); err != nil {
		return fmt.Errorf("credit destination account: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transfer: %w", err)
	}
	return nil
}

// BalanceOf reads an account balance. Unknown accounts hold zero.
func (l *AssetLedger) BalanceOf(ctx context.Context, account domain.Address) (int64, error) {
	var balance int64
	err := l.pool.QueryRow(ctx,
		`SELECT balance FROM accounts WHERE address = $1`, account,
	).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// Credit mints amount into an account. Operator-side funding only; the vault
// itself never creates asset out of thin air.
func (l *AssetLedger) Credit(ctx context.Context, account domain.Address, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("credit amount must be positive, got %d", amount)
	}
	_, err := l.pool.Exec(ctx,
		`INSERT INTO accounts (address, balance) VALUES ($1, $2)
		 ON CONFLICT (address) DO UPDATE SET balance = accounts.balance + $2, updated_at = NOW()`,
		account, amount,
	)
	if err != nil {
		return fmt.Errorf("credit account: %w", err)
	}
	return nil
}
