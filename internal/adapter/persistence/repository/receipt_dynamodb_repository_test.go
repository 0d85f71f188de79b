package repository

import (
	"testing"
	"time"

	"recibozap/internal/domain/entities"
)

func TestReceiptItemRoundTrip(t *testing.T) {
	now := time.Date(2025, time.July, 23, 12, 0, 0, 123456789, time.UTC)
	rec := entities.Receipt{
		ID:                 "r-1",
		UserPhone:          "+5511999999999",
		Number:             "003/2025",
		ClientName:         "Maria Cliente",
		ClientDocument:     "987.654.321-00",
		ServiceName:        "Consultoria em Marketing",
		ServiceDescription: "Campanha de julho",
		Amount:             1500.50,
		Currency:           "BRL",
		ServiceDate:        "23/07/2025",
		Category:           "consultoria",
		Status:             entities.ReceiptStatusActive,
		GeneratedVia:       entities.GeneratedViaWhatsApp,
		DocumentHash:       "ABCDEF0123456789",
		Filename:           "recibo_r-1.pdf",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	it := toReceiptItem(rec)
	if it.Amount != "1500.5" {
		t.Fatalf("unexpected stored amount %s", it.Amount)
	}
	if it.Status != "active" || it.GeneratedVia != "whatsapp" {
		t.Fatalf("unexpected item %+v", it)
	}

	back := fromReceiptItem(it)
	if back.Amount != 1500.50 {
		t.Fatalf("unexpected amount %v", back.Amount)
	}
	if !back.CreatedAt.Equal(now) {
		t.Fatalf("expected %v, got %v", now, back.CreatedAt)
	}
	if back.Status != entities.ReceiptStatusActive || back.Number != "003/2025" {
		t.Fatalf("unexpected receipt %+v", back)
	}
}

func TestHelpers(t *testing.T) {
	t.Run("formatTime normalizes to UTC", func(t *testing.T) {
		loc := time.FixedZone("BRT", -3*3600)
		s := formatTime(time.Date(2025, time.July, 23, 9, 0, 0, 0, loc))
		if s != "2025-07-23T12:00:00Z" {
			t.Fatalf("unexpected %s", s)
		}
	})

	t.Run("parseTime of garbage is zero", func(t *testing.T) {
		if !parseTime("not-a-time").IsZero() {
			t.Fatalf("expected zero time")
		}
	})

	t.Run("floatToString keeps precision", func(t *testing.T) {
		if got := floatToString(1500.5); got != "1500.5" {
			t.Fatalf("unexpected %s", got)
		}
		if got := floatToString(100); got != "100" {
			t.Fatalf("unexpected %s", got)
		}
	})

	t.Run("mergeNames", func(t *testing.T) {
		out := mergeNames(map[string]string{"#a": "a"}, map[string]string{"#b": "b"})
		if len(out) != 2 || out["#a"] != "a" || out["#b"] != "b" {
			t.Fatalf("unexpected %+v", out)
		}
		if got := mergeNames(nil, map[string]string{"#b": "b"}); got["#b"] != "b" {
			t.Fatalf("unexpected %+v", got)
		}
	})
}
