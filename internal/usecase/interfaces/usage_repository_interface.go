package interfaces

import (
	"context"
	"time"

	"recibozap/internal/domain/entities"
)

// IUsageRepository abstracts DynamoDB persistence for UsageEvent.
//
// CountByUserSince drives the monthly quota: it counts events of the given
// type whose created_at falls in [since, now).

type IUsageRepository interface {
	Record(ctx context.Context, e entities.UsageEvent) error
	CountByUserSince(ctx context.Context, phone, eventType string, since time.Time) (int, error)
}
