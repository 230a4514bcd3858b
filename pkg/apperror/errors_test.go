package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("VLT_001", "Insufficient share balance", http.StatusPaymentRequired),
			expected: "[VLT_001] Insufficient share balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("VAL_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestAuthorizationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidSignature", ErrInvalidSignature(), "SEC_001", 401},
		{"AuthorizationExpired", ErrAuthorizationExpired(), "SEC_002", 403},
		{"StaleAuthorization", ErrStaleAuthorization(), "SEC_003", 403},
		{"PolicyDisabled", ErrPolicyDisabled(), "POL_001", 403},
		{"PerTxLimitExceeded", ErrPerTxLimitExceeded(), "POL_002", 422},
		{"DailyLimitExceeded", ErrDailyLimitExceeded(), "POL_003", 422},
		{"MerchantNotWhitelisted", ErrMerchantNotWhitelisted(), "POL_004", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestVaultErrors(t *testing.T) {
	inner := fmt.Errorf("venue illiquid")
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidAmount", ErrInvalidAmount(), "VAL_001", 400},
		{"InvalidAddress", ErrInvalidAddress("merchant"), "VAL_002", 400},
		{"InvalidPolicyLimits", ErrInvalidPolicyLimits(), "VAL_003", 400},
		{"DepositTooSmall", ErrDepositTooSmall(), "VAL_004", 400},
		{"InsufficientShares", ErrInsufficientShares(), "VLT_001", 402},
		{"VaultInsolvent", ErrVaultInsolvent(), "VLT_002", 409},
		{"InsufficientLiquidity", ErrInsufficientLiquidity(), "VLT_003", 409},
		{"StrategyShortfall", ErrStrategyShortfall(inner), "VLT_004", 409},
		{"ReentrantCall", ErrReentrantCall(), "VLT_005", 409},
		{"NoStrategy", ErrNoStrategy(), "VLT_006", 409},
		{"InsufficientIdle", ErrInsufficientIdle(), "VLT_007", 409},
		{"TransferFailed", ErrTransferFailed(inner), "VLT_008", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}

	assert.True(t, errors.Is(ErrStrategyShortfall(inner), inner))
}

func TestErrInvalidAddress_MessageNamesField(t *testing.T) {
	assert.Contains(t, ErrInvalidAddress("spender").Message, "spender")
}
