package postgres

import (
	"context"
	"fmt"

	"expense-vault/internal/core/domain"
)

// EventRepo implements ports.EventRepository.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Create inserts a committed vault event.
func (r *EventRepo) Create(ctx context.Context, ev *domain.VaultEvent) error {
	query := `INSERT INTO vault_events (id, kind, owner_addr, spender_addr, merchant_addr, amount, share_delta, day_bucket, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		ev.ID, string(ev.Kind), ev.Owner, ev.Spender, ev.Merchant,
		ev.Amount, ev.ShareDelta, ev.DayBucket, ev.Detail, ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vault event: %w", err)
	}
	return nil
}

// ListRecent returns the newest events, newest first.
func (r *EventRepo) ListRecent(ctx context.Context, limit int) ([]domain.VaultEvent, error) {
	query := `SELECT id, kind, owner_addr, spender_addr, merchant_addr, amount, share_delta, day_bucket, detail, created_at
		FROM vault_events ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list vault events: %w", err)
	}
	defer rows.Close()

	var events []domain.VaultEvent
	for rows.Next() {
		var ev domain.VaultEvent
		var kind string
		if err := rows.Scan(
			&ev.ID, &kind, &ev.Owner, &ev.Spender, &ev.Merchant,
			&ev.Amount, &ev.ShareDelta, &ev.DayBucket, &ev.Detail, &ev.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vault event: %w", err)
		}
		ev.Kind = domain.EventKind(kind)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vault events: %w", err)
	}
	return events, nil
}
