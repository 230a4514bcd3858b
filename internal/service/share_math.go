package service

import (
	"fmt"
	"math"

	"github.com/holiman/uint256"

	"expense-vault/pkg/apperror"
)

// Share/asset conversions multiply two int64 amounts before dividing, so the
// intermediate product can exceed 64 bits. uint256 keeps the arithmetic
// exact; only the final quotient must fit back into int64.

// mulDivFloor returns floor(a*b/den). Inputs must be non-negative, den positive.
func mulDivFloor(a, b, den int64) (int64, error) {
	q, _, err := mulDiv(a, b, den)
	if err != nil {
		return 0, err
	}
	return q, nil
}

// mulDivCeil returns ceil(a*b/den). Inputs must be non-negative, den positive.
func mulDivCeil(a, b, den int64) (int64, error) {
	q, rem, err := mulDiv(a, b, den)
	if err != nil {
		return 0, err
	}
	if rem > 0 {
		if q == math.MaxInt64 {
			return 0, apperror.InternalError(fmt.Errorf("share conversion overflows int64: ceil(%d*%d/%d)", a, b, den))
		}
		q++
	}
	return q, nil
}

func mulDiv(a, b, den int64) (quot int64, rem uint64, err error) {
	if a < 0 || b < 0 || den <= 0 {
		return 0, 0, apperror.InternalError(fmt.Errorf("share conversion with invalid operands: %d*%d/%d", a, b, den))
	}
	num := new(uint256.Int).Mul(uint256.NewInt(uint64(a)), uint256.NewInt(uint64(b)))
	d := uint256.NewInt(uint64(den))
	q := new(uint256.Int).Div(num, d)
	r := new(uint256.Int).Mod(num, d)
	if !q.IsUint64() || q.Uint64() > math.MaxInt64 {
		return 0, 0, apperror.InternalError(fmt.Errorf("share conversion overflows int64: %d*%d/%d", a, b, den))
	}
	return int64(q.Uint64()), r.Uint64(), nil
}

// sharesForDeposit converts a deposit amount into shares at the current
// price, rounding down so existing holders are never diluted.
func sharesForDeposit(amount, totalShares, totalAssets int64) (int64, error) {
	return mulDivFloor(amount, totalShares, totalAssets)
}

// assetsForShares converts redeemed shares into an asset payout, rounding
// down in the vault's favor.
func assetsForShares(shares, totalShares, totalAssets int64) (int64, error) {
	return mulDivFloor(shares, totalAssets, totalShares)
}

// sharesForSpend converts a spend amount into shares to burn, rounding up so
// the owner can never extract more value than the burned shares represent.
func sharesForSpend(amount, totalShares, totalAssets int64) (int64, error) {
	return mulDivCeil(amount, totalShares, totalAssets)
}
