package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expense-vault/internal/core/domain"
)

var (
	acctA = domain.MustAddress("0x00000000000000000000000000000000000000a1")
	acctB = domain.MustAddress("0x00000000000000000000000000000000000000b2")
)

func TestAssetLedger_TransferAndBalance(t *testing.T) {
	ctx := context.Background()
	l := NewAssetLedger()

	require.NoError(t, l.Credit(ctx, acctA, 500))

	require.NoError(t, l.Transfer(ctx, acctA, acctB, 200))

	a, err := l.BalanceOf(ctx, acctA)
	require.NoError(t, err)
	b, err := l.BalanceOf(ctx, acctB)
	require.NoError(t, err)
	assert.Equal(t, int64(300), a)
	assert.Equal(t, int64(200), b)
}

func TestAssetLedger_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	l := NewAssetLedger()

	require.NoError(t, l.Credit(ctx, acctA, 100))
	err := l.Transfer(ctx, acctA, acctB, 200)
	require.Error(t, err)

	// Nothing moved.
	a, _ := l.BalanceOf(ctx, acctA)
	b, _ := l.BalanceOf(ctx, acctB)
	assert.Equal(t, int64(100), a)
	assert.Equal(t, int64(0), b)
}

func TestAssetLedger_RejectsNonPositive(t *testing.T) {
	ctx := context.Background()
	l := NewAssetLedger()

	assert.Error(t, l.Transfer(ctx, acctA, acctB, 0))
	assert.Error(t, l.Transfer(ctx, acctA, acctB, -5))
	assert.Error(t, l.Credit(ctx, acctA, 0))
}

func TestAssetLedger_UnknownAccountIsZero(t *testing.T) {
	l := NewAssetLedger()
	balance, err := l.BalanceOf(context.Background(), acctB)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}
