package response

import (
	"recibozap/internal/domain/entities"
	"recibozap/internal/usecase"
)

type UserStatsResponse struct {
	Plan               string `json:"plan"`
	PlanName           string `json:"plan_name"`
	CurrentMonthUsage  int    `json:"current_month_usage"`
	MonthlyLimit       int    `json:"monthly_limit"`
	RemainingReceipts  int    `json:"remaining_receipts"`
	SubscriptionStatus string `json:"subscription_status"`
	TotalReceipts      int    `json:"total_receipts"`
}

func FromUserStats(s usecase.UserStats) UserStatsResponse {
	return UserStatsResponse{
		Plan:               string(s.Plan),
		PlanName:           s.PlanName,
		CurrentMonthUsage:  s.CurrentMonthUsage,
		MonthlyLimit:       s.MonthlyLimit,
		RemainingReceipts:  s.RemainingReceipts,
		SubscriptionStatus: string(s.SubscriptionStatus),
		TotalReceipts:      s.TotalReceipts,
	}
}

type UserResponse struct {
	Phone              string `json:"phone"`
	Name               string `json:"name"`
	FullName           string `json:"full_name,omitempty"`
	CpfCnpj            string `json:"cpf_cnpj,omitempty"`
	ProfileComplete    bool   `json:"profile_complete"`
	Plan               string `json:"plan"`
	SubscriptionStatus string `json:"subscription_status"`
	ReceiptsUsed       int    `json:"receipts_used"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		Phone:              u.Phone,
		Name:               u.Name,
		FullName:           u.FullName,
		CpfCnpj:            u.CpfCnpj,
		ProfileComplete:    u.ProfileComplete,
		Plan:               string(u.Plan),
		SubscriptionStatus: string(u.SubscriptionStatus),
		ReceiptsUsed:       u.ReceiptsUsed,
	}
}
