package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Input Validation (VAL) ----

func ErrInvalidAmount() *AppError {
	return New("VAL_001", "Amount must be positive", http.StatusBadRequest)
}

func ErrInvalidAddress(which string) *AppError {
	return New("VAL_002", fmt.Sprintf("Invalid %s address", which), http.StatusBadRequest)
}

func ErrInvalidPolicyLimits() *AppError {
	return New("VAL_003", "Policy limits invalid: max_per_tx must be positive and daily_limit >= max_per_tx", http.StatusBadRequest)
}

func ErrDepositTooSmall() *AppError {
	return New("VAL_004", "Deposit too small to mint at least one share", http.StatusBadRequest)
}

// Validation returns a VAL_000-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}

// ---- Signed Authorization (SEC) ----

func ErrInvalidSignature() *AppError {
	return New("SEC_001", "Invalid authorization signature", http.StatusUnauthorized)
}

func ErrAuthorizationExpired() *AppError {
	return New("SEC_002", "Authorization message expired", http.StatusForbidden)
}

func ErrStaleAuthorization() *AppError {
	return New("SEC_003", "Authorization signer mismatch: message replayed or signed with a stale nonce", http.StatusForbidden)
}

// ---- Policy Enforcement (POL) ----

func ErrPolicyDisabled() *AppError {
	return New("POL_001", "Spending policy disabled or not configured", http.StatusForbidden)
}

func ErrPerTxLimitExceeded() *AppError {
	return New("POL_002", "Amount exceeds per-transaction limit", http.StatusUnprocessableEntity)
}

func ErrDailyLimitExceeded() *AppError {
	return New("POL_003", "Daily spending limit exceeded", http.StatusUnprocessableEntity)
}

func ErrMerchantNotWhitelisted() *AppError {
	return New("POL_004", "Merchant is not whitelisted for this spender", http.StatusForbidden)
}

// ---- Vault Accounting & Liquidity (VLT) ----

func ErrInsufficientShares() *AppError {
	return New("VLT_001", "Insufficient share balance", http.StatusPaymentRequired)
}

func ErrVaultInsolvent() *AppError {
	return New("VLT_002", "Vault holds outstanding shares but no assets", http.StatusConflict)
}

func ErrInsufficientLiquidity() *AppError {
	return New("VLT_003", "Insufficient idle liquidity and no strategy wired", http.StatusConflict)
}

func ErrStrategyShortfall(err error) *AppError {
	return Wrap("VLT_004", "Strategy failed to return the requested liquidity", http.StatusConflict, err)
}

func ErrReentrantCall() *AppError {
	return New("VLT_005", "Reentrant vault operation rejected", http.StatusConflict)
}

func ErrNoStrategy() *AppError {
	return New("VLT_006", "No strategy adapter wired", http.StatusConflict)
}

func ErrInsufficientIdle() *AppError {
	return New("VLT_007", "Insufficient idle balance for investment", http.StatusConflict)
}

func ErrTransferFailed(err error) *AppError {
	return Wrap("VLT_008", "Asset transfer rejected", http.StatusConflict, err)
}

// ---- Operator Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
