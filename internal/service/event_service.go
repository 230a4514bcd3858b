package service

import (
	"context"

	"github.com/rs/zerolog"

	"expense-vault/internal/core/domain"
	"expense-vault/internal/core/ports"
)

type eventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

// NewEventService creates the event sink for committed vault operations.
// If repo is nil, events are only written to the logger.
func NewEventService(repo ports.EventRepository, log zerolog.Logger) ports.EventSink {
	return &eventService{repo: repo, log: log}
}

func (s *eventService) Record(ctx context.Context, ev *domain.VaultEvent) error {
	s.log.Info().
		Str("event_id", ev.ID.String()).
		Str("kind", string(ev.Kind)).
		Str("owner", ev.Owner.String()).
		Str("spender", ev.Spender.String()).
		Str("merchant", ev.Merchant.String()).
		Int64("amount", ev.Amount).
		Int64("share_delta", ev.ShareDelta).
		Int64("day_bucket", ev.DayBucket).
		Msg("vault event")

	if s.repo == nil {
		return nil
	}
	return s.repo.Create(ctx, ev)
}
