package service

import (
	"expense-vault/internal/core/domain"
	"expense-vault/pkg/apperror"
)

type policyKey struct {
	owner, spender domain.Address
}

type merchantKey struct {
	owner, spender, merchant domain.Address
}

type spendKey struct {
	owner, spender domain.Address
	bucket         int64
}

// policyEngine owns the per-(owner, spender) spending rules, merchant
// whitelists, daily-spend counters, and per-owner authorization nonces.
// It carries no lock of its own: every call happens under the owning
// vault's exclusive lock.
type policyEngine struct {
	policies   map[policyKey]domain.Policy
	whitelist  map[merchantKey]bool
	dailySpend map[spendKey]int64
	nonces     map[domain.Address]uint64
}

func newPolicyEngine() *policyEngine {
	return &policyEngine{
		policies:   make(map[policyKey]domain.Policy),
		whitelist:  make(map[merchantKey]bool),
		dailySpend: make(map[spendKey]int64),
		nonces:     make(map[domain.Address]uint64),
	}
}

// setPolicy replaces the policy for (owner, spender). Writes are idempotent
// replacements; daily-spend counters are keyed by bucket, not policy
// version, so they survive rewrites.
func (e *policyEngine) setPolicy(owner, spender domain.Address, p domain.Policy) error {
	if !p.Valid() {
		return apperror.ErrInvalidPolicyLimits()
	}
	e.policies[policyKey{owner, spender}] = p
	return nil
}

func (e *policyEngine) setMerchant(owner, spender, merchant domain.Address, allowed bool) {
	e.whitelist[merchantKey{owner, spender, merchant}] = allowed
}

func (e *policyEngine) policyOf(owner, spender domain.Address) (domain.Policy, bool) {
	p, ok := e.policies[policyKey{owner, spender}]
	return p, ok
}

func (e *policyEngine) merchantAllowed(owner, spender, merchant domain.Address) bool {
	return e.whitelist[merchantKey{owner, spender, merchant}]
}

// authorizeSpend runs the read-only policy checks for a delegated spend:
// policy enabled, amount within the per-transaction cap, merchant
// whitelisted where the policy enforces it.
func (e *policyEngine) authorizeSpend(owner, spender, merchant domain.Address, amount int64) error {
	p, ok := e.policyOf(owner, spender)
	if !ok || !p.Enabled {
		return apperror.ErrPolicyDisabled()
	}
	if amount > p.MaxPerTx {
		return apperror.ErrPerTxLimitExceeded()
	}
	if p.EnforceMerchantWhitelist && !e.merchantAllowed(owner, spender, merchant) {
		return apperror.ErrMerchantNotWhitelisted()
	}
	return nil
}

// commitDailySpend checks the bucket's remaining headroom and records the
// spend. A committed counter is never rolled back by later failures of the
// enclosing operation, so callers must order it as the final check before
// share effects.
func (e *policyEngine) commitDailySpend(owner, spender domain.Address, bucket, amount int64) error {
	p, ok := e.policyOf(owner, spender)
	if !ok {
		return apperror.ErrPolicyDisabled()
	}
	k := spendKey{owner: owner, spender: spender, bucket: bucket}
	if e.dailySpend[k]+amount > p.DailyLimit {
		return apperror.ErrDailyLimitExceeded()
	}
	e.dailySpend[k] += amount
	return nil
}

func (e *policyEngine) spentInBucket(owner, spender domain.Address, bucket int64) int64 {
	return e.dailySpend[spendKey{owner: owner, spender: spender, bucket: bucket}]
}

func (e *policyEngine) nonceOf(owner domain.Address) uint64 {
	return e.nonces[owner]
}

// consumeNonce advances the owner's nonce so a signed authorization built
// against the previous value can never be applied again.
func (e *policyEngine) consumeNonce(owner domain.Address) {
	e.nonces[owner]++
}
