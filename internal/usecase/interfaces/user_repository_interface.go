package interfaces

import (
	"context"

	"recibozap/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// The service must be able to:
//   - create a user on first inbound message (idempotent via conditional put)
//   - patch profile fields and recompute the completeness flag
//   - patch subscription linkage written by the billing webhook
//   - bump the lifetime receipts counter after a generation commits
//   - atomically increment the per-year numbering counter

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByPhone(ctx context.Context, phone string) (entities.User, error)
	UpdateProfile(ctx context.Context, phone, fullName, cpfCnpj string) (entities.User, error)
	UpdateSubscription(ctx context.Context, phone string, plan entities.PlanID, status entities.SubscriptionStatus) (entities.User, error)
	IncrementUsage(ctx context.Context, phone string) error
	IncrementYearCounter(ctx context.Context, phone string, year int) (int, error)
}
