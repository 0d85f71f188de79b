package repository

import (
	"testing"
	"time"

	"recibozap/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestUserItemRoundTrip(t *testing.T) {
	now := time.Date(2025, time.July, 23, 12, 0, 0, 0, time.UTC)
	u := entities.User{
		Phone:              "+5511999999999",
		Name:               "Usuário WhatsApp",
		Email:              "5511999999999@whatsapp.temp",
		FullName:           "João Prestador",
		CpfCnpj:            "123.456.789-00",
		ProfileComplete:    true,
		Plan:               entities.PlanBasic,
		SubscriptionStatus: entities.SubscriptionStatusActive,
		ReceiptsUsed:       7,
		LastReceiptAt:      now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	it := toUserItem(u)
	if it.Plan != "BASIC" || it.SubscriptionStatus != "active" {
		t.Fatalf("unexpected item %+v", it)
	}
	if it.CreatedAt != "2025-07-23T12:00:00Z" {
		t.Fatalf("unexpected created_at %s", it.CreatedAt)
	}
	if it.LastReceiptAt == "" {
		t.Fatalf("expected last_receipt_at set")
	}

	zero := u
	zero.LastReceiptAt = time.Time{}
	if toUserItem(zero).LastReceiptAt != "" {
		t.Fatalf("expected empty last_receipt_at for zero time")
	}
}

func TestUnmarshalUser(t *testing.T) {
	item := map[string]types.AttributeValue{
		"phone":               &types.AttributeValueMemberS{Value: "+5511999999999"},
		"name":                &types.AttributeValueMemberS{Value: "Usuário WhatsApp"},
		"email":               &types.AttributeValueMemberS{Value: "5511999999999@whatsapp.temp"},
		"full_name":           &types.AttributeValueMemberS{Value: "João Prestador"},
		"cpf_cnpj":            &types.AttributeValueMemberS{Value: "123.456.789-00"},
		"profile_complete":    &types.AttributeValueMemberBOOL{Value: true},
		"plan":                &types.AttributeValueMemberS{Value: "PRO"},
		"subscription_status": &types.AttributeValueMemberS{Value: "active"},
		"receipts_used":       &types.AttributeValueMemberN{Value: "12"},
		"created_at":          &types.AttributeValueMemberS{Value: "2025-07-23T12:00:00Z"},
		"updated_at":          &types.AttributeValueMemberS{Value: "2025-07-23T12:00:00Z"},
		"receipts_count_2024": &types.AttributeValueMemberN{Value: "30"},
		"receipts_count_2025": &types.AttributeValueMemberN{Value: "12"},
	}

	u, err := unmarshalUser(item)
	if err != nil {
		t.Fatalf("unmarshalUser: %v", err)
	}
	if u.Phone != "+5511999999999" || u.Plan != entities.PlanPro || u.ReceiptsUsed != 12 {
		t.Fatalf("unexpected user %+v", u)
	}
	if !u.ProfileComplete {
		t.Fatalf("expected complete profile")
	}
	if u.YearCounters[2024] != 30 || u.YearCounters[2025] != 12 {
		t.Fatalf("unexpected year counters %+v", u.YearCounters)
	}
	if u.CreatedAt.IsZero() {
		t.Fatalf("expected parsed created_at")
	}
}

func TestUnmarshalUser_IgnoresMalformedCounters(t *testing.T) {
	item := map[string]types.AttributeValue{
		"phone":                &types.AttributeValueMemberS{Value: "+5511999999999"},
		"plan":                 &types.AttributeValueMemberS{Value: "FREE"},
		"created_at":           &types.AttributeValueMemberS{Value: "2025-07-23T12:00:00Z"},
		"updated_at":           &types.AttributeValueMemberS{Value: "2025-07-23T12:00:00Z"},
		"receipts_count_abc":   &types.AttributeValueMemberN{Value: "3"},
		"receipts_count_2025":  &types.AttributeValueMemberS{Value: "not-a-number"},
		"unrelated_attribute1": &types.AttributeValueMemberS{Value: "x"},
	}

	u, err := unmarshalUser(item)
	if err != nil {
		t.Fatalf("unmarshalUser: %v", err)
	}
	if len(u.YearCounters) != 0 {
		t.Fatalf("expected no counters, got %+v", u.YearCounters)
	}
}
