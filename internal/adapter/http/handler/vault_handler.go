package handler

import (
	"github.com/gin-gonic/gin"

	"expense-vault/internal/adapter/http/dto"
	"expense-vault/internal/core/domain"
	"expense-vault/internal/core/ports"
	"expense-vault/pkg/apperror"
	"expense-vault/pkg/response"
)

// VaultHandler exposes the vault ledger operations.
type VaultHandler struct {
	vault ports.VaultLedger
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(vault ports.VaultLedger) *VaultHandler {
	return &VaultHandler{vault: vault}
}

// Deposit handles POST /api/v1/vault/deposit.
func (h *VaultHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ev, err := h.vault.Deposit(c.Request.Context(), domain.MustAddress(req.Depositor), req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.FromVaultEvent(ev))
}

// Withdraw handles POST /api/v1/vault/withdraw.
func (h *VaultHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ev, err := h.vault.Withdraw(c.Request.Context(), domain.MustAddress(req.Owner), req.Shares)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromVaultEvent(ev))
}

// Spend handles POST /api/v1/vault/spend.
func (h *VaultHandler) Spend(c *gin.Context) {
	var req dto.SpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ev, err := h.vault.DelegatedSpend(c.Request.Context(), ports.SpendRequest{
		Owner:    domain.MustAddress(req.Owner),
		Spender:  domain.MustAddress(req.Spender),
		Merchant: domain.MustAddress(req.Merchant),
		Amount:   req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromVaultEvent(ev))
}

// Invest handles POST /api/v1/admin/invest.
func (h *VaultHandler) Invest(c *gin.Context) {
	var req dto.RebalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ev, err := h.vault.Invest(c.Request.Context(), req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromVaultEvent(ev))
}

// Divest handles POST /api/v1/admin/divest.
func (h *VaultHandler) Divest(c *gin.Context) {
	var req dto.RebalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ev, err := h.vault.Divest(c.Request.Context(), req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromVaultEvent(ev))
}

// GetStats handles GET /api/v1/vault.
func (h *VaultHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	total, err := h.vault.TotalAssets(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	idle, err := h.vault.IdleBalance(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.VaultStatsResponse{
		TotalShares: h.vault.TotalShares(),
		TotalAssets: total,
		IdleBalance: idle,
	})
}

// GetShares handles GET /api/v1/vault/shares/:owner.
func (h *VaultHandler) GetShares(c *gin.Context) {
	owner, err := domain.ParseAddress(c.Param("owner"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress("owner"))
		return
	}

	response.OK(c, dto.SharesResponse{
		Owner:  owner.String(),
		Shares: h.vault.SharesOf(owner),
	})
}
