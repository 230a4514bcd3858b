package service

import (
	"crypto/ed25519"
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/sha3"

	"expense-vault/internal/core/domain"
	"expense-vault/pkg/apperror"
)

// Authorization digests are domain-separated SHA3-256 hashes over the vault
// identity, the intended state change, the owner's current nonce, and the
// expiry timestamp. Digest construction is pure so it can be tested against
// fixed vectors, independent of any policy state.
const (
	policyUpdateDomain   = "expense-vault/policy-update/v1"
	merchantUpdateDomain = "expense-vault/merchant-update/v1"
)

// AuthSignatureSize is the length of a signature blob: a 32-byte Ed25519
// public key followed by the 64-byte signature.
const AuthSignatureSize = ed25519.PublicKeySize + ed25519.SignatureSize

// Ed25519Recoverer implements ports.SignerRecoverer for pubkey||sig blobs.
type Ed25519Recoverer struct{}

// NewEd25519Recoverer creates the Ed25519 signer-recovery service.
func NewEd25519Recoverer() *Ed25519Recoverer {
	return &Ed25519Recoverer{}
}

// RecoverSigner verifies the signature blob over digest and returns the
// signer's ledger address.
func (*Ed25519Recoverer) RecoverSigner(digest []byte, signature []byte) (domain.Address, error) {
	if len(signature) != AuthSignatureSize {
		return "", apperror.ErrInvalidSignature()
	}
	pub := ed25519.PublicKey(signature[:ed25519.PublicKeySize])
	if !ed25519.Verify(pub, digest, signature[ed25519.PublicKeySize:]) {
		return "", apperror.ErrInvalidSignature()
	}
	return AddressFromPublicKey(pub), nil
}

// AddressFromPublicKey derives the ledger address for an Ed25519 key:
// the last 20 bytes of SHA3-256(pubkey).
func AddressFromPublicKey(pub ed25519.PublicKey) domain.Address {
	h := sha3.Sum256(pub)
	return domain.AddressFromBytes(h[len(h)-20:])
}

// SignAuthorization produces the pubkey||sig blob for a digest. This is the
// client side of the scheme, used by tests and agent simulators.
func SignAuthorization(priv ed25519.PrivateKey, digest []byte) []byte {
	pub := priv.Public().(ed25519.PublicKey)
	blob := make([]byte, 0, AuthSignatureSize)
	blob = append(blob, pub...)
	return append(blob, ed25519.Sign(priv, digest)...)
}

// PolicyUpdateDigest builds the digest an owner signs to authorize replacing
// the policy for (owner, spender).
func PolicyUpdateDigest(vault, owner, spender domain.Address, p domain.Policy, nonce uint64, expiry int64) []byte {
	h := sha3.New256()
	h.Write([]byte(policyUpdateDomain))
	h.Write(vault.Bytes())
	h.Write(owner.Bytes())
	h.Write(spender.Bytes())
	writeBool(h, p.Enabled)
	writeBool(h, p.EnforceMerchantWhitelist)
	writeUint64(h, uint64(p.MaxPerTx))
	writeUint64(h, uint64(p.DailyLimit))
	writeUint64(h, nonce)
	writeUint64(h, uint64(expiry))
	return h.Sum(nil)
}

// MerchantUpdateDigest builds the digest an owner signs to authorize
// whitelisting or delisting a merchant for one spender.
func MerchantUpdateDigest(vault, owner, spender, merchant domain.Address, allowed bool, nonce uint64, expiry int64) []byte {
	h := sha3.New256()
	h.Write([]byte(merchantUpdateDomain))
	h.Write(vault.Bytes())
	h.Write(owner.Bytes())
	h.Write(spender.Bytes())
	h.Write(merchant.Bytes())
	writeBool(h, allowed)
	writeUint64(h, nonce)
	writeUint64(h, uint64(expiry))
	return h.Sum(nil)
}

func writeBool(h hash.Hash, b bool) {
	if b {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
}

func writeUint64(h hash.Hash, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}
