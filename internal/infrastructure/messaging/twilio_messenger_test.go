package messaging

import (
	"context"
	"testing"

	"recibozap/internal/usecase/interfaces"
)

func newSimulatedMessenger(t *testing.T) *TwilioMessenger {
	t.Helper()
	t.Setenv("SIMULATION_MODE", "true")
	m := NewTwilioMessenger()
	if !m.simulation {
		t.Fatalf("expected simulation mode")
	}
	return m
}

func TestNewTwilioMessenger_FallsBackWithoutCredentials(t *testing.T) {
	t.Setenv("SIMULATION_MODE", "")
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")

	m := NewTwilioMessenger()
	if !m.simulation {
		t.Fatalf("expected simulation fallback without credentials")
	}
	if m.from != "whatsapp:+14155238886" {
		t.Fatalf("unexpected default sender %s", m.from)
	}
}

func TestTwilioMessenger_SimulatedSends(t *testing.T) {
	m := newSimulatedMessenger(t)
	ctx := context.Background()

	if err := m.SendText(ctx, "+5511999999999", "olá"); err != nil {
		t.Fatalf("SendText: %v", err)
	}
	if err := m.SendButtons(ctx, "+5511999999999", "Confirma?", []interfaces.Button{
		{ID: "confirm_yes", Title: "Sim"},
		{ID: "confirm_no", Title: "Não"},
	}); err != nil {
		t.Fatalf("SendButtons: %v", err)
	}
	if err := m.SendList(ctx, "+5511999999999", "Opções", "Escolher", []interfaces.Section{
		{Title: "Perfil", Rows: []interfaces.Button{{ID: "edit_name", Title: "Nome"}}},
	}); err != nil {
		t.Fatalf("SendList: %v", err)
	}
}

func TestWhatsAppAddress(t *testing.T) {
	if got := whatsappAddress("+5511999999999"); got != "whatsapp:+5511999999999" {
		t.Fatalf("unexpected %s", got)
	}
	if got := whatsappAddress("whatsapp:+5511999999999"); got != "whatsapp:+5511999999999" {
		t.Fatalf("unexpected %s", got)
	}
}
