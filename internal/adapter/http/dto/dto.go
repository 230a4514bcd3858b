package dto

import (
	"expense-vault/internal/core/domain"
)

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // unix seconds
}

// DepositRequest is the request body for a vault deposit.
type DepositRequest struct {
	Depositor string `json:"depositor" binding:"required,vault_addr"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
}

// WithdrawRequest is the request body for redeeming shares.
type WithdrawRequest struct {
	Owner  string `json:"owner" binding:"required,vault_addr"`
	Shares int64  `json:"shares" binding:"required,gt=0"`
}

// SpendRequest is the request body for a delegated spend.
type SpendRequest struct {
	Owner    string `json:"owner" binding:"required,vault_addr"`
	Spender  string `json:"spender" binding:"required,vault_addr"`
	Merchant string `json:"merchant" binding:"required,vault_addr"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

// RebalanceRequest is the request body for admin invest/divest.
type RebalanceRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// PolicyBody carries policy fields shared by direct and signed writes.
type PolicyBody struct {
	Enabled                  bool  `json:"enabled"`
	EnforceMerchantWhitelist bool  `json:"enforce_merchant_whitelist"`
	MaxPerTx                 int64 `json:"max_per_tx" binding:"required,gt=0"`
	DailyLimit               int64 `json:"daily_limit" binding:"required,gt=0"`
}

// SetPolicyRequest is the request body for a direct policy write.
type SetPolicyRequest struct {
	Owner   string     `json:"owner" binding:"required,vault_addr"`
	Spender string     `json:"spender" binding:"required,vault_addr"`
	Policy  PolicyBody `json:"policy" binding:"required"`
}

// SignedPolicyRequest is the request body for an owner-signed policy write.
// Signature is the hex-encoded authorization blob.
type SignedPolicyRequest struct {
	Owner     string     `json:"owner" binding:"required,vault_addr"`
	Spender   string     `json:"spender" binding:"required,vault_addr"`
	Policy    PolicyBody `json:"policy" binding:"required"`
	Expiry    int64      `json:"expiry" binding:"required"`
	Signature string     `json:"signature" binding:"required,hexblob"`
}

// SetMerchantRequest is the request body for a direct whitelist write.
type SetMerchantRequest struct {
	Owner    string `json:"owner" binding:"required,vault_addr"`
	Spender  string `json:"spender" binding:"required,vault_addr"`
	Merchant string `json:"merchant" binding:"required,vault_addr"`
	Allowed  *bool  `json:"allowed" binding:"required"`
}

// SignedMerchantRequest is the request body for an owner-signed whitelist
// write.
type SignedMerchantRequest struct {
	Owner     string `json:"owner" binding:"required,vault_addr"`
	Spender   string `json:"spender" binding:"required,vault_addr"`
	Merchant  string `json:"merchant" binding:"required,vault_addr"`
	Allowed   *bool  `json:"allowed" binding:"required"`
	Expiry    int64  `json:"expiry" binding:"required"`
	Signature string `json:"signature" binding:"required,hexblob"`
}

// VaultEventResponse is the wire form of a committed vault event.
type VaultEventResponse struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Owner      string `json:"owner"`
	Spender    string `json:"spender,omitempty"`
	Merchant   string `json:"merchant,omitempty"`
	Amount     int64  `json:"amount"`
	ShareDelta int64  `json:"share_delta"`
	DayBucket  int64  `json:"day_bucket"`
	Detail     string `json:"detail,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// FromVaultEvent converts a domain event to its wire form.
func FromVaultEvent(ev *domain.VaultEvent) VaultEventResponse {
	return VaultEventResponse{
		ID:         ev.ID.String(),
		Kind:       string(ev.Kind),
		Owner:      ev.Owner.String(),
		Spender:    ev.Spender.String(),
		Merchant:   ev.Merchant.String(),
		Amount:     ev.Amount,
		ShareDelta: ev.ShareDelta,
		DayBucket:  ev.DayBucket,
		Detail:     ev.Detail,
		CreatedAt:  ev.CreatedAt.Format("2006-01-02T15:04:05.000000Z07:00"),
	}
}

// VaultStatsResponse is the response for the vault summary query.
type VaultStatsResponse struct {
	TotalShares int64 `json:"total_shares"`
	TotalAssets int64 `json:"total_assets"`
	IdleBalance int64 `json:"idle_balance"`
}

// SharesResponse is the response for a share balance query.
type SharesResponse struct {
	Owner  string `json:"owner"`
	Shares int64  `json:"shares"`
}

// PolicyResponse is the response for a policy query.
type PolicyResponse struct {
	Owner                    string `json:"owner"`
	Spender                  string `json:"spender"`
	Enabled                  bool   `json:"enabled"`
	EnforceMerchantWhitelist bool   `json:"enforce_merchant_whitelist"`
	MaxPerTx                 int64  `json:"max_per_tx"`
	DailyLimit               int64  `json:"daily_limit"`
}

// NonceResponse is the response for an owner nonce query.
type NonceResponse struct {
	Owner string `json:"owner"`
	Nonce uint64 `json:"nonce"`
}

// SpentResponse is the response for a daily-spend counter query.
type SpentResponse struct {
	Owner     string `json:"owner"`
	Spender   string `json:"spender"`
	DayBucket int64  `json:"day_bucket"`
	Spent     int64  `json:"spent"`
}
