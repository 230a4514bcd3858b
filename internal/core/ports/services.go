package ports

import (
	"context"
	"time"

	"expense-vault/internal/core/domain"
)

// --- Service Ports (Business Logic) ---

// VaultLedger is the share-accounting core: deposits, withdrawals,
// delegated spends, and the admin invest/divest surface.
type VaultLedger interface {
	Deposit(ctx context.Context, depositor domain.Address, amount int64) (*domain.VaultEvent, error)
	Withdraw(ctx context.Context, owner domain.Address, shares int64) (*domain.VaultEvent, error)
	DelegatedSpend(ctx context.Context, req SpendRequest) (*domain.VaultEvent, error)
	Invest(ctx context.Context, amount int64) (*domain.VaultEvent, error)
	Divest(ctx context.Context, amount int64) (*domain.VaultEvent, error)

	SharesOf(owner domain.Address) int64
	TotalShares() int64
	TotalAssets(ctx context.Context) (int64, error)
	IdleBalance(ctx context.Context) (int64, error)
}

// SpendRequest holds validated input for a delegated spend.
type SpendRequest struct {
	Owner    domain.Address
	Spender  domain.Address
	Merchant domain.Address
	Amount   int64
}

// PolicyAdmin is the policy-engine surface: per-(owner, spender) spending
// rules and merchant whitelists, writable directly by the owner or through
// an owner-signed, nonce-protected authorization.
type PolicyAdmin interface {
	SetPolicy(ctx context.Context, owner, spender domain.Address, policy domain.Policy) (*domain.VaultEvent, error)
	SetPolicySigned(ctx context.Context, upd SignedPolicyUpdate) (*domain.VaultEvent, error)
	SetMerchantAllowed(ctx context.Context, owner, spender, merchant domain.Address, allowed bool) (*domain.VaultEvent, error)
	SetMerchantAllowedSigned(ctx context.Context, upd SignedMerchantUpdate) (*domain.VaultEvent, error)

	PolicyOf(owner, spender domain.Address) (domain.Policy, bool)
	IsMerchantAllowed(owner, spender, merchant domain.Address) bool
	SpentInBucket(owner, spender domain.Address, bucket int64) int64
	NonceOf(owner domain.Address) uint64
}

// SignedPolicyUpdate is an owner-signed intent to replace a spending policy.
// Signature covers a domain-separated digest including the owner's current
// nonce and the expiry timestamp.
type SignedPolicyUpdate struct {
	Owner     domain.Address
	Spender   domain.Address
	Policy    domain.Policy
	Expiry    int64 // unix seconds
	Signature []byte
}

// SignedMerchantUpdate is an owner-signed intent to whitelist or delist a
// merchant for one spender.
type SignedMerchantUpdate struct {
	Owner     domain.Address
	Spender   domain.Address
	Merchant  domain.Address
	Allowed   bool
	Expiry    int64 // unix seconds
	Signature []byte
}

// HashService handles password hashing (Argon2id) for the operator account.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations for the operator API.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
}
