package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expense-vault/internal/core/domain"
)

func newTestEvent() *domain.VaultEvent {
	return &domain.VaultEvent{
		ID:         uuid.New(),
		Kind:       domain.EventSpend,
		Owner:      acctA,
		Spender:    acctB,
		Merchant:   acctB,
		Amount:     42,
		ShareDelta: -42,
		DayBucket:  19_675,
		Detail:     "",
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

func eventColumns() []string {
	return []string{"id", "kind", "owner_addr", "spender_addr", "merchant_addr", "amount", "share_delta", "day_bucket", "detail", "created_at"}
}

func eventRow(ev *domain.VaultEvent) *pgxmock.Rows {
	return pgxmock.NewRows(eventColumns()).AddRow(
		ev.ID, string(ev.Kind), ev.Owner, ev.Spender, ev.Merchant,
		ev.Amount, ev.ShareDelta, ev.DayBucket, ev.Detail, ev.CreatedAt,
	)
}

func TestEventRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	ev := newTestEvent()

	mock.ExpectExec("INSERT INTO vault_events").
		WithArgs(ev.ID, string(ev.Kind), ev.Owner, ev.Spender, ev.Merchant,
			ev.Amount, ev.ShareDelta, ev.DayBucket, ev.Detail, ev.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), ev)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_ListRecent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	ev := newTestEvent()

	mock.ExpectQuery("SELECT .+ FROM vault_events ORDER BY created_at DESC LIMIT").
		WithArgs(10).
		WillReturnRows(eventRow(ev))

	events, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, ev.ID, events[0].ID)
	assert.Equal(t, domain.EventSpend, events[0].Kind)
	assert.Equal(t, int64(-42), events[0].ShareDelta)
	assert.NoError(t, mock.ExpectationsWereMet())
}
