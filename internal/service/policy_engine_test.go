package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expense-vault/internal/core/domain"
)

func TestPolicyEngine_SetPolicy_Validation(t *testing.T) {
	e := newPolicyEngine()

	tests := []struct {
		name    string
		policy  domain.Policy
		wantErr bool
	}{
		{"valid", domain.Policy{Enabled: true, MaxPerTx: 10, DailyLimit: 10}, false},
		{"daily above per-tx", domain.Policy{Enabled: true, MaxPerTx: 10, DailyLimit: 100}, false},
		{"disabled still valid", domain.Policy{Enabled: false, MaxPerTx: 10, DailyLimit: 10}, false},
		{"zero per-tx", domain.Policy{Enabled: true, MaxPerTx: 0, DailyLimit: 10}, true},
		{"negative per-tx", domain.Policy{Enabled: true, MaxPerTx: -1, DailyLimit: 10}, true},
		{"daily below per-tx", domain.Policy{Enabled: true, MaxPerTx: 20, DailyLimit: 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.setPolicy(alice, bob, tt.policy)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPolicyEngine_SetPolicy_IdempotentReplacement(t *testing.T) {
	e := newPolicyEngine()
	require.NoError(t, e.setPolicy(alice, bob, domain.Policy{Enabled: true, MaxPerTx: 10, DailyLimit: 50}))
	require.NoError(t, e.setPolicy(alice, bob, domain.Policy{Enabled: true, MaxPerTx: 20, DailyLimit: 60}))

	p, ok := e.policyOf(alice, bob)
	require.True(t, ok)
	assert.Equal(t, int64(20), p.MaxPerTx, "a rewrite fully replaces the prior policy")
	assert.Equal(t, int64(60), p.DailyLimit)
}

func TestPolicyEngine_AuthorizeSpend(t *testing.T) {
	e := newPolicyEngine()
	require.NoError(t, e.setPolicy(alice, bob, domain.Policy{
		Enabled: true, EnforceMerchantWhitelist: true, MaxPerTx: 20, DailyLimit: 60,
	}))

	err := e.authorizeSpend(alice, bob, merchantM, 5)
	assertAppError(t, err, "POL_004")

	e.setMerchant(alice, bob, merchantM, true)
	assert.NoError(t, e.authorizeSpend(alice, bob, merchantM, 5))

	err = e.authorizeSpend(alice, bob, merchantM, 21)
	assertAppError(t, err, "POL_002")

	// Delisting takes effect immediately.
	e.setMerchant(alice, bob, merchantM, false)
	err = e.authorizeSpend(alice, bob, merchantM, 5)
	assertAppError(t, err, "POL_004")

	err = e.authorizeSpend(alice, merchantM, bob, 5)
	assertAppError(t, err, "POL_001")
}

func TestPolicyEngine_CommitDailySpend_Buckets(t *testing.T) {
	e := newPolicyEngine()
	require.NoError(t, e.setPolicy(alice, bob, domain.Policy{Enabled: true, MaxPerTx: 20, DailyLimit: 30}))

	require.NoError(t, e.commitDailySpend(alice, bob, 100, 20))
	require.NoError(t, e.commitDailySpend(alice, bob, 100, 10))
	assert.Equal(t, int64(30), e.spentInBucket(alice, bob, 100))

	err := e.commitDailySpend(alice, bob, 100, 1)
	assertAppError(t, err, "POL_003")
	assert.Equal(t, int64(30), e.spentInBucket(alice, bob, 100), "a rejected commit must not move the counter")

	// A fresh bucket has full headroom.
	require.NoError(t, e.commitDailySpend(alice, bob, 101, 20))
	assert.Equal(t, int64(20), e.spentInBucket(alice, bob, 101))
}

func TestPolicyEngine_CountersIsolatedPerPair(t *testing.T) {
	e := newPolicyEngine()
	require.NoError(t, e.setPolicy(alice, bob, domain.Policy{Enabled: true, MaxPerTx: 20, DailyLimit: 30}))
	require.NoError(t, e.setPolicy(alice, merchantM, domain.Policy{Enabled: true, MaxPerTx: 20, DailyLimit: 30}))

	require.NoError(t, e.commitDailySpend(alice, bob, 100, 30))
	require.NoError(t, e.commitDailySpend(alice, merchantM, 100, 30), "one spender's spend must not consume another's headroom")
}

func TestPolicyEngine_Nonces(t *testing.T) {
	e := newPolicyEngine()
	assert.Equal(t, uint64(0), e.nonceOf(alice))

	e.consumeNonce(alice)
	e.consumeNonce(alice)
	assert.Equal(t, uint64(2), e.nonceOf(alice))
	assert.Equal(t, uint64(0), e.nonceOf(bob), "nonces are per owner")
}
