package domain

import "time"

// Policy is the set of limits governing what one spender may do with one
// owner's pooled funds. Amounts are in the asset's smallest unit.
type Policy struct {
	Enabled                  bool  `json:"enabled"`
	EnforceMerchantWhitelist bool  `json:"enforce_merchant_whitelist"`
	MaxPerTx                 int64 `json:"max_per_tx"`
	DailyLimit               int64 `json:"daily_limit"`
}

// Valid reports whether the policy limits are internally consistent:
// a positive per-transaction cap and a daily limit at least as large.
func (p Policy) Valid() bool {
	return p.MaxPerTx > 0 && p.DailyLimit >= p.MaxPerTx
}

// DayBucket returns the index of the fixed-length spending window containing t.
// Counters keyed by bucket index reset implicitly when the index advances.
func DayBucket(t time.Time, dayLength time.Duration) int64 {
	return t.Unix() / int64(dayLength/time.Second)
}
