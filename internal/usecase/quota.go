package usecase

import (
	"context"
	"time"

	"recibozap/internal/domain/entities"
)

// Quota policy: a month is the server-local calendar month, not a rolling
// 30-day window. Usage counts generation events in [firstDayOfMonth, now).

// CurrentMonthUsage counts this calendar month's generation events for a user.
func (u *UserUseCase) CurrentMonthUsage(ctx context.Context, phone string) (int, error) {
	return u.usage.CountByUserSince(ctx, NormalizePhone(phone), entities.UsageTypeReceiptGenerated, startOfMonth(u.now()))
}

// CanGenerateReceipt reports whether the user is below the plan allowance.
// Unknown users cannot generate.
func (u *UserUseCase) CanGenerateReceipt(ctx context.Context, phone string) (bool, error) {
	phone = NormalizePhone(phone)
	user, err := u.repo.GetByPhone(ctx, phone)
	if err != nil {
		return false, err
	}
	if user.Phone == "" {
		return false, nil
	}

	plan := entities.PlanByID(user.Plan)
	if plan.Unlimited() {
		return true, nil
	}

	usage, err := u.usage.CountByUserSince(ctx, phone, entities.UsageTypeReceiptGenerated, startOfMonth(u.now()))
	if err != nil {
		return false, err
	}
	return usage < plan.ReceiptsPerMonth, nil
}

func startOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
