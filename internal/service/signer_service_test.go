package service

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expense-vault/internal/core/domain"
)

func TestEd25519Recoverer_RoundTrip(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	digest := PolicyUpdateDigest(testVaultAcct, alice, bob,
		domain.Policy{Enabled: true, MaxPerTx: 20, DailyLimit: 60}, 0, 1_700_003_600)
	blob := SignAuthorization(priv, digest)
	require.Len(t, blob, AuthSignatureSize)

	signer, err := NewEd25519Recoverer().RecoverSigner(digest, blob)
	require.NoError(t, err)
	assert.Equal(t, AddressFromPublicKey(pub), signer)
}

func TestEd25519Recoverer_RejectsTamperedDigest(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	digest := MerchantUpdateDigest(testVaultAcct, alice, bob, merchantM, true, 0, 1_700_003_600)
	blob := SignAuthorization(priv, digest)

	other := MerchantUpdateDigest(testVaultAcct, alice, bob, merchantM, false, 0, 1_700_003_600)
	_, err = NewEd25519Recoverer().RecoverSigner(other, blob)
	assertAppError(t, err, "SEC_001")
}

func TestEd25519Recoverer_RejectsMalformedBlob(t *testing.T) {
	r := NewEd25519Recoverer()

	_, err := r.RecoverSigner([]byte("digest"), nil)
	assertAppError(t, err, "SEC_001")

	_, err = r.RecoverSigner([]byte("digest"), make([]byte, AuthSignatureSize-1))
	assertAppError(t, err, "SEC_001")

	_, err = r.RecoverSigner([]byte("digest"), make([]byte, AuthSignatureSize))
	assertAppError(t, err, "SEC_001")
}

func TestDigests_SensitiveToEveryField(t *testing.T) {
	p := domain.Policy{Enabled: true, MaxPerTx: 20, DailyLimit: 60}
	base := PolicyUpdateDigest(testVaultAcct, alice, bob, p, 3, 1_700_003_600)

	variants := [][]byte{
		PolicyUpdateDigest(merchantM, alice, bob, p, 3, 1_700_003_600),
		PolicyUpdateDigest(testVaultAcct, bob, alice, p, 3, 1_700_003_600),
		PolicyUpdateDigest(testVaultAcct, alice, bob, domain.Policy{Enabled: false, MaxPerTx: 20, DailyLimit: 60}, 3, 1_700_003_600),
		PolicyUpdateDigest(testVaultAcct, alice, bob, domain.Policy{Enabled: true, MaxPerTx: 21, DailyLimit: 60}, 3, 1_700_003_600),
		PolicyUpdateDigest(testVaultAcct, alice, bob, p, 4, 1_700_003_600),
		PolicyUpdateDigest(testVaultAcct, alice, bob, p, 3, 1_700_003_601),
	}
	for i, v := range variants {
		assert.NotEqual(t, base, v, "variant %d must change the digest", i)
	}

	again := PolicyUpdateDigest(testVaultAcct, alice, bob, p, 3, 1_700_003_600)
	assert.Equal(t, base, again, "digest construction must be deterministic")
}

func TestDigests_PolicyAndMerchantDomainsDisjoint(t *testing.T) {
	// Same field bytes under different domain tags must not collide.
	policyDigest := PolicyUpdateDigest(testVaultAcct, alice, bob,
		domain.Policy{Enabled: true, MaxPerTx: 1, DailyLimit: 1}, 0, 0)
	merchantDigest := MerchantUpdateDigest(testVaultAcct, alice, bob, merchantM, true, 0, 0)
	assert.NotEqual(t, policyDigest, merchantDigest)
}

func TestAddressFromPublicKey_StableAndWellFormed(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	addr := AddressFromPublicKey(pub)
	parsed, err := domain.ParseAddress(string(addr))
	require.NoError(t, err)
	assert.Equal(t, addr, parsed)
	assert.Equal(t, addr, AddressFromPublicKey(pub))
}
