package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"expense-vault/internal/core/domain"
	"expense-vault/internal/core/ports"
	"expense-vault/pkg/apperror"
)

// VaultService is the share-accounting core. It owns share issuance and
// redemption, the idle/invested split, and the policy engine consulted on
// delegated spends. Every mutating operation runs under one exclusive lock
// for its full duration, external port calls included; reads take the read
// lock and only ever observe fully committed state.
//
// Implements ports.VaultLedger and ports.PolicyAdmin.
type VaultService struct {
	mu      sync.RWMutex
	entered bool // reentrancy flag, set/cleared around the critical section

	account   domain.Address // the vault's own asset account
	assets    ports.AssetLedger
	strategy  ports.Strategy // nil until wired
	signer    ports.SignerRecoverer
	sink      ports.EventSink // nil = event recording disabled
	policy    *policyEngine
	dayLength time.Duration
	now       func() time.Time
	log       zerolog.Logger

	totalShares int64
	shares      map[domain.Address]int64
}

// VaultParams holds the dependencies for NewVaultService.
type VaultParams struct {
	Account   domain.Address
	Assets    ports.AssetLedger
	Signer    ports.SignerRecoverer
	Sink      ports.EventSink // optional
	DayLength time.Duration
	Now       func() time.Time // optional, defaults to time.Now
	Logger    zerolog.Logger
}

// NewVaultService creates a vault with zero outstanding shares.
func NewVaultService(p VaultParams) *VaultService {
	now := p.Now
	if now == nil {
		now = time.Now
	}
	return &VaultService{
		account:   p.Account,
		assets:    p.Assets,
		signer:    p.Signer,
		sink:      p.Sink,
		policy:    newPolicyEngine(),
		dayLength: p.DayLength,
		now:       now,
		log:       p.Logger,
		shares:    make(map[domain.Address]int64),
	}
}

// WireStrategy attaches (or replaces) the strategy adapter.
func (v *VaultService) WireStrategy(ctx context.Context, s ports.Strategy) error {
	ctx, err := v.beginMutation(ctx)
	if err != nil {
		return err
	}
	defer v.endMutation()
	_ = ctx
	v.strategy = s
	v.log.Info().Msg("strategy adapter wired")
	return nil
}

// reentrancyToken marks a context as belonging to an in-flight mutation of a
// specific vault. External ports receive the derived context, so a port
// implementation calling back into this vault's mutating surface is detected
// before it can deadlock on the lock it already transitively holds.
type reentrancyToken struct{}

func (v *VaultService) beginMutation(ctx context.Context) (context.Context, error) {
	if owner, ok := ctx.Value(reentrancyToken{}).(*VaultService); ok && owner == v {
		return nil, apperror.ErrReentrantCall()
	}
	v.mu.Lock()
	if v.entered {
		v.mu.Unlock()
		return nil, apperror.ErrReentrantCall()
	}
	v.entered = true
	return context.WithValue(ctx, reentrancyToken{}, v), nil
}

func (v *VaultService) endMutation() {
	v.entered = false
	v.mu.Unlock()
}

// --- Vault Ledger operations ---

// Deposit pulls amount from the depositor and mints shares at the current
// price. The first depositor bootstraps a 1:1 price; later deposits round
// the minted shares down in favor of existing holders.
func (v *VaultService) Deposit(ctx context.Context, depositor domain.Address, amount int64) (*domain.VaultEvent, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if depositor.IsZero() {
		return nil, apperror.ErrInvalidAddress("depositor")
	}

	ctx, err := v.beginMutation(ctx)
	if err != nil {
		return nil, err
	}
	defer v.endMutation()

	assetsBefore, err := v.totalAssetsLocked(ctx)
	if err != nil {
		return nil, err
	}

	var minted int64
	if v.totalShares == 0 {
		minted = amount
	} else {
		if assetsBefore <= 0 {
			// Outstanding shares with zero assets is terminal insolvency:
			// there is no defined price to mint at.
			return nil, apperror.ErrVaultInsolvent()
		}
		minted, err = sharesForDeposit(amount, v.totalShares, assetsBefore)
		if err != nil {
			return nil, err
		}
		if minted == 0 {
			return nil, apperror.ErrDepositTooSmall()
		}
	}

	if err := v.assets.Transfer(ctx, depositor, v.account, amount); err != nil {
		return nil, apperror.ErrTransferFailed(err)
	}

	v.shares[depositor] += minted
	v.totalShares += minted

	ev := v.newEvent(domain.EventDeposit, depositor, "", "", amount, minted)
	v.emit(ctx, ev)
	return ev, nil
}

// Withdraw redeems the caller's shares for assets at the current price,
// rounding the payout down in the vault's favor. Shortfalls in idle balance
// are pulled back from the strategy before paying out.
func (v *VaultService) Withdraw(ctx context.Context, owner domain.Address, shares int64) (*domain.VaultEvent, error) {
	if shares <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if owner.IsZero() {
		return nil, apperror.ErrInvalidAddress("owner")
	}

	ctx, err := v.beginMutation(ctx)
	if err != nil {
		return nil, err
	}
	defer v.endMutation()

	if v.shares[owner] < shares {
		return nil, apperror.ErrInsufficientShares()
	}

	totalAssets, err := v.totalAssetsLocked(ctx)
	if err != nil {
		return nil, err
	}
	if totalAssets <= 0 {
		return nil, apperror.ErrVaultInsolvent()
	}

	amount, err := assetsForShares(shares, v.totalShares, totalAssets)
	if err != nil {
		return nil, err
	}

	// Burn first; the burn is restored if liquidity or the payout transfer
	// fails, keeping the whole operation all-or-nothing.
	v.burn(owner, shares)

	if amount > 0 {
		if err := v.ensureIdle(ctx, amount); err != nil {
			v.mint(owner, shares)
			return nil, err
		}
		if err := v.assets.Transfer(ctx, v.account, owner, amount); err != nil {
			v.mint(owner, shares)
			return nil, apperror.ErrTransferFailed(err)
		}
	}

	ev := v.newEvent(domain.EventWithdraw, owner, "", "", amount, -shares)
	v.emit(ctx, ev)
	return ev, nil
}

// DelegatedSpend moves amount out of the owner's position to the merchant,
// authorized by the (owner, spender) policy. Shares are burned with ceiling
// rounding so the position can never pay out more value than it gives up.
func (v *VaultService) DelegatedSpend(ctx context.Context, req ports.SpendRequest) (*domain.VaultEvent, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Owner.IsZero() {
		return nil, apperror.ErrInvalidAddress("owner")
	}
	if req.Spender.IsZero() {
		return nil, apperror.ErrInvalidAddress("spender")
	}
	if req.Merchant.IsZero() {
		return nil, apperror.ErrInvalidAddress("merchant")
	}

	ctx, err := v.beginMutation(ctx)
	if err != nil {
		return nil, err
	}
	defer v.endMutation()

	if err := v.policy.authorizeSpend(req.Owner, req.Spender, req.Merchant, req.Amount); err != nil {
		return nil, err
	}

	totalAssets, err := v.totalAssetsLocked(ctx)
	if err != nil {
		return nil, err
	}
	if v.totalShares <= 0 || totalAssets <= 0 {
		return nil, apperror.ErrVaultInsolvent()
	}

	// The daily counter is the last check before share effects. Once
	// committed it stands even if a later step aborts the operation.
	bucket := domain.DayBucket(v.now(), v.dayLength)
	if err := v.policy.commitDailySpend(req.Owner, req.Spender, bucket, req.Amount); err != nil {
		return nil, err
	}

	burn, err := sharesForSpend(req.Amount, v.totalShares, totalAssets)
	if err != nil {
		return nil, err
	}
	if v.shares[req.Owner] < burn {
		return nil, apperror.ErrInsufficientShares()
	}

	v.burn(req.Owner, burn)

	if err := v.ensureIdle(ctx, req.Amount); err != nil {
		v.mint(req.Owner, burn)
		return nil, err
	}
	if err := v.assets.Transfer(ctx, v.account, req.Merchant, req.Amount); err != nil {
		v.mint(req.Owner, burn)
		return nil, apperror.ErrTransferFailed(err)
	}

	ev := v.newEvent(domain.EventSpend, req.Owner, req.Spender, req.Merchant, req.Amount, -burn)
	ev.DayBucket = bucket
	v.emit(ctx, ev)
	return ev, nil
}

// Invest moves idle balance into the strategy. Admin surface; does not go
// through the rebalancer.
func (v *VaultService) Invest(ctx context.Context, amount int64) (*domain.VaultEvent, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	ctx, err := v.beginMutation(ctx)
	if err != nil {
		return nil, err
	}
	defer v.endMutation()

	if v.strategy == nil {
		return nil, apperror.ErrNoStrategy()
	}
	idle, err := v.assets.BalanceOf(ctx, v.account)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read idle balance: %w", err))
	}
	if idle < amount {
		return nil, apperror.ErrInsufficientIdle()
	}
	if err := v.strategy.DepositFromVault(ctx, amount); err != nil {
		return nil, apperror.ErrTransferFailed(err)
	}

	ev := v.newEvent(domain.EventInvest, v.account, "", "", amount, 0)
	v.emit(ctx, ev)
	return ev, nil
}

// Divest pulls amount back from the strategy into the idle balance.
func (v *VaultService) Divest(ctx context.Context, amount int64) (*domain.VaultEvent, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	ctx, err := v.beginMutation(ctx)
	if err != nil {
		return nil, err
	}
	defer v.endMutation()

	if v.strategy == nil {
		return nil, apperror.ErrNoStrategy()
	}
	if err := v.strategy.WithdrawToVault(ctx, amount); err != nil {
		return nil, apperror.ErrStrategyShortfall(err)
	}

	ev := v.newEvent(domain.EventDivest, v.account, "", "", amount, 0)
	v.emit(ctx, ev)
	return ev, nil
}

// ensureIdle is the liquidity rebalancer: it makes sure the vault's
// directly-held balance covers amount, pulling any shortfall back from the
// strategy. The idle balance is re-read after the pull rather than trusting
// the strategy's return alone.
func (v *VaultService) ensureIdle(ctx context.Context, amount int64) error {
	idle, err := v.assets.BalanceOf(ctx, v.account)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("read idle balance: %w", err))
	}
	if idle >= amount {
		return nil
	}
	if v.strategy == nil {
		return apperror.ErrInsufficientLiquidity()
	}

	shortfall := amount - idle
	if err := v.strategy.WithdrawToVault(ctx, shortfall); err != nil {
		return apperror.ErrStrategyShortfall(err)
	}

	idle, err = v.assets.BalanceOf(ctx, v.account)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("re-read idle balance: %w", err))
	}
	if idle < amount {
		return apperror.ErrStrategyShortfall(
			fmt.Errorf("idle %d still below required %d after pulling %d", idle, amount, shortfall))
	}
	return nil
}

// --- Policy Engine operations ---

// SetPolicy replaces the (owner, spender) policy in direct mode: the caller
// asserts it is the owner.
func (v *VaultService) SetPolicy(ctx context.Context, owner, spender domain.Address, policy domain.Policy) (*domain.VaultEvent, error) {
	if owner.IsZero() {
		return nil, apperror.ErrInvalidAddress("owner")
	}
	if spender.IsZero() {
		return nil, apperror.ErrInvalidAddress("spender")
	}
	if !policy.Valid() {
		return nil, apperror.ErrInvalidPolicyLimits()
	}

	ctx, err := v.beginMutation(ctx)
	if err != nil {
		return nil, err
	}
	defer v.endMutation()

	if err := v.policy.setPolicy(owner, spender, policy); err != nil {
		return nil, err
	}

	ev := v.newEvent(domain.EventPolicySet, owner, spender, "", 0, 0)
	ev.Detail = policyDetail(policy)
	v.emit(ctx, ev)
	return ev, nil
}

// SetPolicySigned replaces the (owner, spender) policy authorized by an
// owner-produced signature over a nonce-protected, expiring digest. The
// nonce is consumed as soon as the signer is confirmed, before the write is
// applied, so a signature is usable at most once.
func (v *VaultService) SetPolicySigned(ctx context.Context, upd ports.SignedPolicyUpdate) (*domain.VaultEvent, error) {
	if upd.Owner.IsZero() {
		return nil, apperror.ErrInvalidAddress("owner")
	}
	if upd.Spender.IsZero() {
		return nil, apperror.ErrInvalidAddress("spender")
	}

	ctx, err := v.beginMutation(ctx)
	if err != nil {
		return nil, err
	}
	defer v.endMutation()

	if v.now().Unix() > upd.Expiry {
		return nil, apperror.ErrAuthorizationExpired()
	}

	nonce := v.policy.nonceOf(upd.Owner)
	digest := PolicyUpdateDigest(v.account, upd.Owner, upd.Spender, upd.Policy, nonce, upd.Expiry)

	signer, err := v.signer.RecoverSigner(digest, upd.Signature)
	if err != nil {
		return nil, err
	}
	if signer != upd.Owner {
		return nil, apperror.ErrStaleAuthorization()
	}

	v.policy.consumeNonce(upd.Owner)

	if err := v.policy.setPolicy(upd.Owner, upd.Spender, upd.Policy); err != nil {
		return nil, err
	}

	ev := v.newEvent(domain.EventPolicySet, upd.Owner, upd.Spender, "", 0, 0)
	ev.Detail = policyDetail(upd.Policy)
	v.emit(ctx, ev)
	return ev, nil
}

// SetMerchantAllowed updates the merchant whitelist in direct mode.
func (v *VaultService) SetMerchantAllowed(ctx context.Context, owner, spender, merchant domain.Address, allowed bool) (*domain.VaultEvent, error) {
	if owner.IsZero() {
		return nil, apperror.ErrInvalidAddress("owner")
	}
	if spender.IsZero() {
		return nil, apperror.ErrInvalidAddress("spender")
	}
	if merchant.IsZero() {
		return nil, apperror.ErrInvalidAddress("merchant")
	}

	ctx, err := v.beginMutation(ctx)
	if err != nil {
		return nil, err
	}
	defer v.endMutation()

	v.policy.setMerchant(owner, spender, merchant, allowed)

	ev := v.newEvent(domain.EventMerchantSet, owner, spender, merchant, 0, 0)
	ev.Detail = fmt.Sprintf("allowed=%t", allowed)
	v.emit(ctx, ev)
	return ev, nil
}

// SetMerchantAllowedSigned updates the merchant whitelist authorized by an
// owner signature, with the same nonce discipline as SetPolicySigned.
func (v *VaultService) SetMerchantAllowedSigned(ctx context.Context, upd ports.SignedMerchantUpdate) (*domain.VaultEvent, error) {
	if upd.Owner.IsZero() {
		return nil, apperror.ErrInvalidAddress("owner")
	}
	if upd.Spender.IsZero() {
		return nil, apperror.ErrInvalidAddress("spender")
	}
	if upd.Merchant.IsZero() {
		return nil, apperror.ErrInvalidAddress("merchant")
	}

	ctx, err := v.beginMutation(ctx)
	if err != nil {
		return nil, err
	}
	defer v.endMutation()

	if v.now().Unix() > upd.Expiry {
		return nil, apperror.ErrAuthorizationExpired()
	}

	nonce := v.policy.nonceOf(upd.Owner)
	digest := MerchantUpdateDigest(v.account, upd.Owner, upd.Spender, upd.Merchant, upd.Allowed, nonce, upd.Expiry)

	signer, err := v.signer.RecoverSigner(digest, upd.Signature)
	if err != nil {
		return nil, err
	}
	if signer != upd.Owner {
		return nil, apperror.ErrStaleAuthorization()
	}

	v.policy.consumeNonce(upd.Owner)
	v.policy.setMerchant(upd.Owner, upd.Spender, upd.Merchant, upd.Allowed)

	ev := v.newEvent(domain.EventMerchantSet, upd.Owner, upd.Spender, upd.Merchant, 0, 0)
	ev.Detail = fmt.Sprintf("allowed=%t", upd.Allowed)
	v.emit(ctx, ev)
	return ev, nil
}

// --- Read-only queries ---

func (v *VaultService) SharesOf(owner domain.Address) int64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.shares[owner]
}

func (v *VaultService) TotalShares() int64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.totalShares
}

// TotalAssets is the vault's idle balance plus the strategy's position.
func (v *VaultService) TotalAssets(ctx context.Context) (int64, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.totalAssetsLocked(ctx)
}

// IdleBalance is the asset held directly by the vault.
func (v *VaultService) IdleBalance(ctx context.Context) (int64, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	idle, err := v.assets.BalanceOf(ctx, v.account)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("read idle balance: %w", err))
	}
	return idle, nil
}

func (v *VaultService) PolicyOf(owner, spender domain.Address) (domain.Policy, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.policy.policyOf(owner, spender)
}

func (v *VaultService) IsMerchantAllowed(owner, spender, merchant domain.Address) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.policy.merchantAllowed(owner, spender, merchant)
}

func (v *VaultService) SpentInBucket(owner, spender domain.Address, bucket int64) int64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.policy.spentInBucket(owner, spender, bucket)
}

func (v *VaultService) NonceOf(owner domain.Address) uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.policy.nonceOf(owner)
}

// CurrentDayBucket returns the active spend-counter bucket index.
func (v *VaultService) CurrentDayBucket() int64 {
	return domain.DayBucket(v.now(), v.dayLength)
}

// --- internals ---

func (v *VaultService) mint(owner domain.Address, shares int64) {
	v.shares[owner] += shares
	v.totalShares += shares
}

func (v *VaultService) burn(owner domain.Address, shares int64) {
	v.shares[owner] -= shares
	v.totalShares -= shares
	if v.shares[owner] == 0 {
		delete(v.shares, owner)
	}
}

func (v *VaultService) totalAssetsLocked(ctx context.Context) (int64, error) {
	idle, err := v.assets.BalanceOf(ctx, v.account)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("read idle balance: %w", err))
	}
	if v.strategy == nil {
		return idle, nil
	}
	invested, err := v.strategy.TotalAssets(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("read strategy assets: %w", err))
	}
	return idle + invested, nil
}

func (v *VaultService) newEvent(kind domain.EventKind, owner, spender, merchant domain.Address, amount, shareDelta int64) *domain.VaultEvent {
	now := v.now()
	return &domain.VaultEvent{
		ID:         uuid.New(),
		Kind:       kind,
		Owner:      owner,
		Spender:    spender,
		Merchant:   merchant,
		Amount:     amount,
		ShareDelta: shareDelta,
		DayBucket:  domain.DayBucket(now, v.dayLength),
		CreatedAt:  now.UTC(),
	}
}

// emit records a committed operation. Sink failures are logged, never
// propagated: the operation has already committed.
func (v *VaultService) emit(ctx context.Context, ev *domain.VaultEvent) {
	if v.sink != nil {
		if err := v.sink.Record(ctx, ev); err != nil {
			v.log.Warn().Err(err).Str("kind", string(ev.Kind)).Msg("failed to record vault event")
		}
	}
	v.log.Info().
		Str("kind", string(ev.Kind)).
		Str("owner", ev.Owner.String()).
		Int64("amount", ev.Amount).
		Int64("share_delta", ev.ShareDelta).
		Int64("day_bucket", ev.DayBucket).
		Msg("vault operation committed")
}

func policyDetail(p domain.Policy) string {
	return fmt.Sprintf("enabled=%t max_per_tx=%d daily_limit=%d whitelist=%t",
		p.Enabled, p.MaxPerTx, p.DailyLimit, p.EnforceMerchantWhitelist)
}
