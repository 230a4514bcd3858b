package dto

import (
	"encoding/hex"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"expense-vault/internal/core/domain"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("vault_addr", validateVaultAddr)
		_ = v.RegisterValidation("hexblob", validateHexBlob)
	}
}

// validateVaultAddr accepts well-formed, non-zero ledger addresses.
func validateVaultAddr(fl validator.FieldLevel) bool {
	addr, err := domain.ParseAddress(fl.Field().String())
	return err == nil && !addr.IsZero()
}

// validateHexBlob accepts non-empty hex strings, with or without the 0x
// prefix.
func validateHexBlob(fl validator.FieldLevel) bool {
	raw := strings.TrimPrefix(fl.Field().String(), "0x")
	if raw == "" {
		return false
	}
	_, err := hex.DecodeString(raw)
	return err == nil
}

// DecodeHexBlob decodes a hexblob-validated field into bytes.
func DecodeHexBlob(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}
