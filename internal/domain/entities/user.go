package entities

import "time"

// SubscriptionStatus mirrors the billing provider's subscription state.
//
// The service never talks to the billing provider directly; the status is
// written by the subscription update endpoint and read by the quota checks.

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

// User is the service-provider account persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: phone (normalized E.164 string)
//
// Profile rules:
//   - ProfileComplete is derived: FullName and CpfCnpj both non-empty.
//   - YearCounters holds the per-calendar-year receipt numbering counters
//     (attribute receipts_count_<year>), incremented atomically by the
//     numbering flow.
type User struct {
	Phone              string             `json:"phone"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	FullName           string             `json:"full_name"`
	CpfCnpj            string             `json:"cpf_cnpj"`
	ProfileComplete    bool               `json:"profile_complete"`
	Plan               PlanID             `json:"plan"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	StripeCustomerID   string             `json:"stripe_customer_id,omitempty"`
	StripeSubID        string             `json:"stripe_subscription_id,omitempty"`
	ReceiptsUsed       int                `json:"receipts_used"`
	YearCounters       map[int]int        `json:"year_counters,omitempty"`
	LastReceiptAt      time.Time          `json:"last_receipt_at,omitzero"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// HasCompleteProfile recomputes the completeness flag from the profile fields.
func (u User) HasCompleteProfile() bool {
	return u.FullName != "" && u.CpfCnpj != ""
}
