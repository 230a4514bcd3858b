package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"expense-vault/internal/core/domain"
	"expense-vault/internal/core/ports/mocks"
)

func TestEventService_PersistsThroughRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEventRepository(ctrl)
	svc := NewEventService(repo, zerolog.Nop())

	ev := &domain.VaultEvent{ID: uuid.New(), Kind: domain.EventDeposit, Owner: alice, Amount: 100, ShareDelta: 100}
	repo.EXPECT().Create(gomock.Any(), ev).Return(nil)

	require.NoError(t, svc.Record(context.Background(), ev))
}

func TestEventService_PropagatesRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEventRepository(ctrl)
	svc := NewEventService(repo, zerolog.Nop())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("db down"))

	err := svc.Record(context.Background(), &domain.VaultEvent{ID: uuid.New(), Kind: domain.EventSpend})
	assert.Error(t, err)
}

func TestEventService_NilRepoLogsOnly(t *testing.T) {
	svc := NewEventService(nil, zerolog.Nop())
	require.NoError(t, svc.Record(context.Background(), &domain.VaultEvent{ID: uuid.New(), Kind: domain.EventWithdraw}))
}
