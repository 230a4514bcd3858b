package strategy

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"expense-vault/internal/core/domain"
	"expense-vault/internal/core/ports"
)

// VenueStrategy implements ports.Strategy over an external yield venue. The
// adapter holds its own ledger account: depositFromVault pulls from the
// vault into that account before handing funds to the venue, withdrawToVault
// does the reverse. Funds never pass through any third account.
type VenueStrategy struct {
	venue  ports.YieldVenue
	assets ports.AssetLedger
	vault  domain.Address // the vault's account
	self   domain.Address // the adapter's own account
	log    zerolog.Logger
}

// NewVenueStrategy creates the strategy adapter.
func NewVenueStrategy(venue ports.YieldVenue, assets ports.AssetLedger, vault, self domain.Address, log zerolog.Logger) *VenueStrategy {
	return &VenueStrategy{venue: venue, assets: assets, vault: vault, self: self, log: log}
}

// TotalAssets is the venue position plus any transient balance sitting in
// the adapter's own account between moves.
func (s *VenueStrategy) TotalAssets(ctx context.Context) (int64, error) {
	position, err := s.venue.Position(ctx)
	if err != nil {
		return 0, fmt.Errorf("read venue position: %w", err)
	}
	idle, err := s.assets.BalanceOf(ctx, s.self)
	if err != nil {
		return 0, fmt.Errorf("read adapter balance: %w", err)
	}
	return position + idle, nil
}

// DepositFromVault pulls amount from the vault and places it in the venue.
// If the venue rejects the deposit the pulled funds are returned.
func (s *VenueStrategy) DepositFromVault(ctx context.Context, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("deposit amount must be positive, got %d", amount)
	}
	if err := s.assets.Transfer(ctx, s.vault, s.self, amount); err != nil {
		return fmt.Errorf("pull from vault: %w", err)
	}
	if err := s.venue.Deposit(ctx, amount); err != nil {
		if refundErr := s.assets.Transfer(ctx, s.self, s.vault, amount); refundErr != nil {
			// Funds are stuck in the adapter account; TotalAssets still
			// counts them, so vault accounting stays correct.
			s.log.Error().Err(refundErr).Int64("amount", amount).
				Msg("failed to refund vault after venue deposit failure")
		}
		return fmt.Errorf("venue deposit: %w", err)
	}
	return nil
}

// WithdrawToVault pulls amount out of the venue and returns it to the vault.
func (s *VenueStrategy) WithdrawToVault(ctx context.Context, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("withdraw amount must be positive, got %d", amount)
	}
	if err := s.venue.Withdraw(ctx, amount); err != nil {
		return fmt.Errorf("venue withdraw: %w", err)
	}
	if err := s.assets.Transfer(ctx, s.self, s.vault, amount); err != nil {
		return fmt.Errorf("return to vault: %w", err)
	}
	return nil
}
