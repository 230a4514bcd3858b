package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"expense-vault/internal/adapter/http/dto"
	"expense-vault/internal/core/domain"
	"expense-vault/internal/core/ports"
	"expense-vault/pkg/apperror"
	"expense-vault/pkg/response"
)

// PolicyHandler exposes the policy engine and the event trail.
type PolicyHandler struct {
	policy ports.PolicyAdmin
	events ports.EventRepository // nil = event trail disabled
}

// NewPolicyHandler creates a new PolicyHandler.
func NewPolicyHandler(policy ports.PolicyAdmin, events ports.EventRepository) *PolicyHandler {
	return &PolicyHandler{policy: policy, events: events}
}

func policyFromBody(b dto.PolicyBody) domain.Policy {
	return domain.Policy{
		Enabled:                  b.Enabled,
		EnforceMerchantWhitelist: b.EnforceMerchantWhitelist,
		MaxPerTx:                 b.MaxPerTx,
		DailyLimit:               b.DailyLimit,
	}
}

// SetPolicy handles PUT /api/v1/admin/policies: a direct-mode write by the
// operator acting for the owner.
func (h *PolicyHandler) SetPolicy(c *gin.Context) {
	var req dto.SetPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ev, err := h.policy.SetPolicy(c.Request.Context(),
		domain.MustAddress(req.Owner), domain.MustAddress(req.Spender), policyFromBody(req.Policy))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromVaultEvent(ev))
}

// SetPolicySigned handles POST /api/v1/policies/signed: an owner-signed
// write any caller may submit.
func (h *PolicyHandler) SetPolicySigned(c *gin.Context) {
	var req dto.SignedPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	sig, err := dto.DecodeHexBlob(req.Signature)
	if err != nil {
		response.Error(c, apperror.ErrInvalidSignature())
		return
	}

	ev, err := h.policy.SetPolicySigned(c.Request.Context(), ports.SignedPolicyUpdate{
		Owner:     domain.MustAddress(req.Owner),
		Spender:   domain.MustAddress(req.Spender),
		Policy:    policyFromBody(req.Policy),
		Expiry:    req.Expiry,
		Signature: sig,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromVaultEvent(ev))
}

// SetMerchant handles PUT /api/v1/admin/merchants.
func (h *PolicyHandler) SetMerchant(c *gin.Context) {
	var req dto.SetMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ev, err := h.policy.SetMerchantAllowed(c.Request.Context(),
		domain.MustAddress(req.Owner), domain.MustAddress(req.Spender),
		domain.MustAddress(req.Merchant), *req.Allowed)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromVaultEvent(ev))
}

// SetMerchantSigned handles POST /api/v1/merchants/signed.
func (h *PolicyHandler) SetMerchantSigned(c *gin.Context) {
	var req dto.SignedMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	sig, err := dto.DecodeHexBlob(req.Signature)
	if err != nil {
		response.Error(c, apperror.ErrInvalidSignature())
		return
	}

	ev, err := h.policy.SetMerchantAllowedSigned(c.Request.Context(), ports.SignedMerchantUpdate{
		Owner:     domain.MustAddress(req.Owner),
		Spender:   domain.MustAddress(req.Spender),
		Merchant:  domain.MustAddress(req.Merchant),
		Allowed:   *req.Allowed,
		Expiry:    req.Expiry,
		Signature: sig,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromVaultEvent(ev))
}

// GetPolicy handles GET /api/v1/policies/:owner/:spender. Owners and agents
// poll this before spending.
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	owner, err := domain.ParseAddress(c.Param("owner"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress("owner"))
		return
	}
	spender, err := domain.ParseAddress(c.Param("spender"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress("spender"))
		return
	}

	p, ok := h.policy.PolicyOf(owner, spender)
	if !ok {
		response.Error(c, apperror.ErrPolicyDisabled())
		return
	}
	response.OK(c, dto.PolicyResponse{
		Owner:                    owner.String(),
		Spender:                  spender.String(),
		Enabled:                  p.Enabled,
		EnforceMerchantWhitelist: p.EnforceMerchantWhitelist,
		MaxPerTx:                 p.MaxPerTx,
		DailyLimit:               p.DailyLimit,
	})
}

// GetSpent handles GET /api/v1/policies/:owner/:spender/spent?bucket=N.
func (h *PolicyHandler) GetSpent(c *gin.Context) {
	owner, err := domain.ParseAddress(c.Param("owner"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress("owner"))
		return
	}
	spender, err := domain.ParseAddress(c.Param("spender"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress("spender"))
		return
	}
	bucket, err := strconv.ParseInt(c.Query("bucket"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("bucket must be an integer"))
		return
	}

	response.OK(c, dto.SpentResponse{
		Owner:     owner.String(),
		Spender:   spender.String(),
		DayBucket: bucket,
		Spent:     h.policy.SpentInBucket(owner, spender, bucket),
	})
}

// GetNonce handles GET /api/v1/nonces/:owner. Clients read this to build
// the next authorization digest.
func (h *PolicyHandler) GetNonce(c *gin.Context) {
	owner, err := domain.ParseAddress(c.Param("owner"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress("owner"))
		return
	}

	response.OK(c, dto.NonceResponse{
		Owner: owner.String(),
		Nonce: h.policy.NonceOf(owner),
	})
}

// ListEvents handles GET /api/v1/admin/events?limit=N.
func (h *PolicyHandler) ListEvents(c *gin.Context) {
	if h.events == nil {
		response.OK(c, []dto.VaultEventResponse{})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 500 {
			response.Error(c, apperror.Validation("limit must be between 1 and 500"))
			return
		}
		limit = parsed
	}

	events, err := h.events.ListRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	out := make([]dto.VaultEventResponse, 0, len(events))
	for i := range events {
		out = append(out, dto.FromVaultEvent(&events[i]))
	}
	response.OK(c, out)
}
