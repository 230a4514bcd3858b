package integration

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expense-vault/internal/adapter/storage/memory"
	"expense-vault/internal/adapter/strategy"
	"expense-vault/internal/core/domain"
	"expense-vault/internal/core/ports"
	"expense-vault/internal/service"
	"expense-vault/pkg/apperror"
)

// The scenarios below run the full stack: the vault service over the
// in-memory ledger and the simulated yield venue, the same wiring demo
// mode uses.

var (
	vaultAcct    = domain.MustAddress("0x00000000000000000000000000000000000000aa")
	strategyAcct = domain.MustAddress("0x00000000000000000000000000000000000000bb")
	venueAcct    = domain.MustAddress("0x00000000000000000000000000000000000000cc")

	alice    = domain.MustAddress("0x0000000000000000000000000000000000000a11")
	bob      = domain.MustAddress("0x0000000000000000000000000000000000000b22")
	agent    = domain.MustAddress("0x0000000000000000000000000000000000000c99")
	merchant = domain.MustAddress("0x0000000000000000000000000000000000000e33")
)

type stack struct {
	vault  *service.VaultService
	ledger *memory.AssetLedger
	venue  *strategy.SimVenue
	clock  time.Time
}

func newStack(t *testing.T) *stack {
	t.Helper()
	s := &stack{
		ledger: memory.NewAssetLedger(),
		clock:  time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
	}
	s.vault = service.NewVaultService(service.VaultParams{
		Account:   vaultAcct,
		Assets:    s.ledger,
		Signer:    service.NewEd25519Recoverer(),
		DayLength: 24 * time.Hour,
		Now:       func() time.Time { return s.clock },
		Logger:    zerolog.Nop(),
	})
	s.venue = strategy.NewSimVenue(s.ledger, venueAcct, strategyAcct)
	strat := strategy.NewVenueStrategy(s.venue, s.ledger, vaultAcct, strategyAcct, zerolog.Nop())
	require.NoError(t, s.vault.WireStrategy(context.Background(), strat))
	return s
}

func (s *stack) fund(t *testing.T, account domain.Address, amount int64) {
	t.Helper()
	require.NoError(t, s.ledger.Credit(context.Background(), account, amount))
}

func (s *stack) balance(t *testing.T, account domain.Address) int64 {
	t.Helper()
	bal, err := s.ledger.BalanceOf(context.Background(), account)
	require.NoError(t, err)
	return bal
}

func (s *stack) deposit(t *testing.T, depositor domain.Address, amount int64) {
	t.Helper()
	s.fund(t, depositor, amount)
	_, err := s.vault.Deposit(context.Background(), depositor, amount)
	require.NoError(t, err)
}

func (s *stack) setPolicy(t *testing.T, owner, spender domain.Address, p domain.Policy) {
	t.Helper()
	_, err := s.vault.SetPolicy(context.Background(), owner, spender, p)
	require.NoError(t, err)
}

func (s *stack) spend(owner, spender domain.Address, amount int64) error {
	_, err := s.vault.DelegatedSpend(context.Background(), ports.SpendRequest{
		Owner: owner, Spender: spender, Merchant: merchant, Amount: amount,
	})
	return err
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

// Two depositors, yield accrual, full drain. Rounding always favors the
// vault, so neither holder can extract more than a fair portion and the
// final drain leaves the vault empty here (the dust happens to be zero).
func TestMultiDepositorYieldRoundTrip(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	s.deposit(t, alice, 100)
	s.deposit(t, bob, 70)
	require.Equal(t, int64(170), s.vault.TotalShares())

	_, err := s.vault.Invest(ctx, 100)
	require.NoError(t, err)
	require.NoError(t, s.venue.Accrue(ctx, 30))

	total, err := s.vault.TotalAssets(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(200), total)

	// floor(100 * 200 / 170) = 117
	_, err = s.vault.Withdraw(ctx, alice, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(117), s.balance(t, alice))

	// floor(70 * 83 / 70) = 83
	_, err = s.vault.Withdraw(ctx, bob, 70)
	require.NoError(t, err)
	assert.Equal(t, int64(83), s.balance(t, bob))

	assert.Equal(t, int64(0), s.vault.TotalShares())
	total, err = s.vault.TotalAssets(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Equal(t, int64(0), s.balance(t, vaultAcct))
	assert.Equal(t, int64(0), s.balance(t, venueAcct))
}

// A spend after yield accrual burns shares at the current price, rounded
// up, so remaining holders are never diluted.
func TestSpendBurnsAtCurrentPrice(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	s.deposit(t, alice, 100)
	_, err := s.vault.Invest(ctx, 50)
	require.NoError(t, err)
	require.NoError(t, s.venue.Accrue(ctx, 50))

	s.setPolicy(t, alice, agent, domain.Policy{Enabled: true, MaxPerTx: 20, DailyLimit: 60})

	// ceil(10 * 100 / 150) = 7 shares burned for a 10-unit spend
	require.NoError(t, s.spend(alice, agent, 10))
	assert.Equal(t, int64(93), s.vault.SharesOf(alice))
	assert.Equal(t, int64(10), s.balance(t, merchant))
}

func TestDailyLimitResetsWithBucket(t *testing.T) {
	s := newStack(t)

	s.deposit(t, alice, 200)
	s.setPolicy(t, alice, agent, domain.Policy{Enabled: true, MaxPerTx: 20, DailyLimit: 30})

	require.NoError(t, s.spend(alice, agent, 20))
	assertCode(t, s.spend(alice, agent, 15), "POL_003")

	// Same spend succeeds once the clock crosses into the next bucket.
	s.clock = s.clock.Add(24 * time.Hour)
	require.NoError(t, s.spend(alice, agent, 15))

	bucket := s.vault.CurrentDayBucket()
	assert.Equal(t, int64(15), s.vault.SpentInBucket(alice, agent, bucket))
	assert.Equal(t, int64(20), s.vault.SpentInBucket(alice, agent, bucket-1))
}

func TestMerchantWhitelistGating(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	s.deposit(t, alice, 100)
	s.setPolicy(t, alice, agent, domain.Policy{
		Enabled: true, EnforceMerchantWhitelist: true, MaxPerTx: 20, DailyLimit: 60,
	})

	assertCode(t, s.spend(alice, agent, 10), "POL_004")

	_, err := s.vault.SetMerchantAllowed(ctx, alice, agent, merchant, true)
	require.NoError(t, err)
	require.NoError(t, s.spend(alice, agent, 10))

	_, err = s.vault.SetMerchantAllowed(ctx, alice, agent, merchant, false)
	require.NoError(t, err)
	assertCode(t, s.spend(alice, agent, 10), "POL_004")
}

// An owner-signed policy update applies exactly once. The nonce advances on
// apply, so resubmitting the identical authorization fails verification.
func TestSignedPolicyUpdateReplayRejected(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	owner := service.AddressFromPublicKey(pub)

	p := domain.Policy{Enabled: true, MaxPerTx: 20, DailyLimit: 60}
	expiry := s.clock.Add(time.Hour).Unix()
	digest := service.PolicyUpdateDigest(vaultAcct, owner, agent, p, 0, expiry)
	upd := ports.SignedPolicyUpdate{
		Owner: owner, Spender: agent, Policy: p, Expiry: expiry,
		Signature: service.SignAuthorization(priv, digest),
	}

	_, err = s.vault.SetPolicySigned(ctx, upd)
	require.NoError(t, err)
	require.Equal(t, uint64(1), s.vault.NonceOf(owner))

	got, ok := s.vault.PolicyOf(owner, agent)
	require.True(t, ok)
	assert.Equal(t, p, got)

	_, err = s.vault.SetPolicySigned(ctx, upd)
	assertCode(t, err, "SEC_001")
	assert.Equal(t, uint64(1), s.vault.NonceOf(owner))
}

// Withdrawing more than the idle balance pulls the shortfall back from the
// strategy before paying out.
func TestWithdrawalPullsStrategyLiquidity(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	s.deposit(t, alice, 100)
	_, err := s.vault.Invest(ctx, 90)
	require.NoError(t, err)

	idle, err := s.vault.IdleBalance(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(10), idle)

	_, err = s.vault.Withdraw(ctx, alice, 100)
	require.NoError(t, err)

	assert.Equal(t, int64(100), s.balance(t, alice))
	assert.Equal(t, int64(0), s.balance(t, vaultAcct))
	assert.Equal(t, int64(0), s.balance(t, venueAcct))

	pos, err := s.venue.Position(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)
}

// End-to-end walk of a typical agent setup: fund, configure, spend within
// the caps, get rejected outside them.
func TestAgentSpendingScenario(t *testing.T) {
	s := newStack(t)

	s.deposit(t, alice, 100)
	s.setPolicy(t, alice, agent, domain.Policy{Enabled: true, MaxPerTx: 20, DailyLimit: 60})

	require.NoError(t, s.spend(alice, agent, 12))
	assert.Equal(t, int64(88), s.vault.SharesOf(alice))
	assert.Equal(t, int64(12), s.balance(t, merchant))

	// Over the per-transaction cap, independent of daily headroom.
	assertCode(t, s.spend(alice, agent, 50), "POL_002")

	require.NoError(t, s.spend(alice, agent, 20))
	require.NoError(t, s.spend(alice, agent, 20))

	// 12 + 20 + 20 spent; another 20 would cross the 60 daily limit.
	assertCode(t, s.spend(alice, agent, 20), "POL_003")

	bucket := s.vault.CurrentDayBucket()
	assert.Equal(t, int64(52), s.vault.SpentInBucket(alice, agent, bucket))
}
