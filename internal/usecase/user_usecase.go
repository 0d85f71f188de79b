package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"recibozap/internal/domain/entities"
	"recibozap/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrInvalidPlan       = errors.New("invalid plan")
	ErrEmptyProfileField = errors.New("empty profile field")
)

// UserStats is the quota/profile summary consumed by the bot and the dashboard.
type UserStats struct {
	Plan               entities.PlanID             `json:"plan"`
	PlanName           string                      `json:"plan_name"`
	CurrentMonthUsage  int                         `json:"current_month_usage"`
	MonthlyLimit       int                         `json:"monthly_limit"`
	RemainingReceipts  int                         `json:"remaining_receipts"`
	SubscriptionStatus entities.SubscriptionStatus `json:"subscription_status"`
	TotalReceipts      int                         `json:"total_receipts"`
}

// IUserUseCase exposes user/profile operations and the quota engine.
//
// Side effects on User records are confined here; no other component writes
// them except through these operations.

type IUserUseCase interface {
	CreateOrGet(ctx context.Context, phone string) (entities.User, error)
	UpdateProfile(ctx context.Context, phone, fullName, cpfCnpj string) (entities.User, error)
	IsProfileComplete(ctx context.Context, phone string) (bool, error)
	GetStats(ctx context.Context, phone string) (UserStats, error)
	UpdateSubscription(ctx context.Context, phone string, plan entities.PlanID, status entities.SubscriptionStatus) (entities.User, error)
	CanGenerateReceipt(ctx context.Context, phone string) (bool, error)
	CurrentMonthUsage(ctx context.Context, phone string) (int, error)
	RegisterGeneration(ctx context.Context, phone, receiptID string) error
}

type UserUseCase struct {
	repo  interfaces.IUserRepository
	usage interfaces.IUsageRepository
	now   func() time.Time
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, usage interfaces.IUsageRepository) *UserUseCase {
	return &UserUseCase{repo: repo, usage: usage, now: time.Now}
}

// CreateOrGet is idempotent: an unseen phone number gets a fresh FREE-plan user
// with an incomplete profile; a known one is returned untouched.
func (u *UserUseCase) CreateOrGet(ctx context.Context, phone string) (entities.User, error) {
	phone = NormalizePhone(phone)
	if phone == "" {
		return entities.User{}, ErrInvalidPhone
	}

	existing, err := u.repo.GetByPhone(ctx, phone)
	if err != nil {
		return entities.User{}, err
	}
	if existing.Phone != "" {
		return existing, nil
	}

	now := u.now().UTC()
	user := entities.User{
		Phone:              phone,
		Name:               "Usuário WhatsApp",
		Email:              strings.TrimPrefix(phone, "+") + "@whatsapp.temp",
		Plan:               entities.PlanFree,
		SubscriptionStatus: entities.SubscriptionStatusActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	log.Printf("[user][usecase] creating user phone=%s", phone)
	return u.repo.Create(ctx, user)
}

// UpdateProfile patches the provider identity fields and recomputes the
// completeness flag (both fields non-empty).
func (u *UserUseCase) UpdateProfile(ctx context.Context, phone, fullName, cpfCnpj string) (entities.User, error) {
	phone = NormalizePhone(phone)
	if phone == "" {
		return entities.User{}, ErrInvalidPhone
	}
	fullName = strings.TrimSpace(fullName)
	cpfCnpj = strings.TrimSpace(cpfCnpj)

	updated, err := u.repo.UpdateProfile(ctx, phone, fullName, cpfCnpj)
	if err != nil {
		return entities.User{}, err
	}
	if updated.Phone == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *UserUseCase) IsProfileComplete(ctx context.Context, phone string) (bool, error) {
	user, err := u.repo.GetByPhone(ctx, NormalizePhone(phone))
	if err != nil {
		return false, err
	}
	return user.HasCompleteProfile(), nil
}

// GetStats fails with ErrUserNotFound if the user is absent.
func (u *UserUseCase) GetStats(ctx context.Context, phone string) (UserStats, error) {
	phone = NormalizePhone(phone)
	user, err := u.repo.GetByPhone(ctx, phone)
	if err != nil {
		return UserStats{}, err
	}
	if user.Phone == "" {
		return UserStats{}, ErrUserNotFound
	}

	usage, err := u.CurrentMonthUsage(ctx, phone)
	if err != nil {
		return UserStats{}, err
	}

	plan := entities.PlanByID(user.Plan)
	remaining := entities.UnlimitedReceipts
	if !plan.Unlimited() {
		remaining = max(0, plan.ReceiptsPerMonth-usage)
	}

	return UserStats{
		Plan:               plan.ID,
		PlanName:           plan.Name,
		CurrentMonthUsage:  usage,
		MonthlyLimit:       plan.ReceiptsPerMonth,
		RemainingReceipts:  remaining,
		SubscriptionStatus: user.SubscriptionStatus,
		TotalReceipts:      user.ReceiptsUsed,
	}, nil
}

// UpdateSubscription is called by the billing integration when a plan changes.
func (u *UserUseCase) UpdateSubscription(ctx context.Context, phone string, plan entities.PlanID, status entities.SubscriptionStatus) (entities.User, error) {
	phone = NormalizePhone(phone)
	if phone == "" {
		return entities.User{}, ErrInvalidPhone
	}
	switch plan {
	case entities.PlanFree, entities.PlanBasic, entities.PlanPro, entities.PlanUnlimited:
	default:
		return entities.User{}, ErrInvalidPlan
	}

	updated, err := u.repo.UpdateSubscription(ctx, phone, plan, status)
	if err != nil {
		return entities.User{}, err
	}
	if updated.Phone == "" {
		return entities.User{}, ErrUserNotFound
	}
	log.Printf("[user][usecase] subscription updated phone=%s plan=%s status=%s", phone, plan, status)
	return updated, nil
}

// RegisterGeneration records one quota-consuming generation event and bumps the
// lifetime counter. Called only after the receipt record has persisted.
func (u *UserUseCase) RegisterGeneration(ctx context.Context, phone, receiptID string) error {
	phone = NormalizePhone(phone)
	if phone == "" {
		return ErrInvalidPhone
	}

	event := entities.UsageEvent{
		ID:        uuid.NewString(),
		UserPhone: phone,
		Type:      entities.UsageTypeReceiptGenerated,
		ReceiptID: receiptID,
		CreatedAt: u.now().UTC(),
	}
	if err := u.usage.Record(ctx, event); err != nil {
		return err
	}
	return u.repo.IncrementUsage(ctx, phone)
}
