package request

import "testing"

func TestWhatsAppWebhookRequest_ResolveFrom(t *testing.T) {
	r := WhatsAppWebhookRequest{From: " whatsapp:+5511999999999 "}
	if got := r.ResolveFrom(); got != "whatsapp:+5511999999999" {
		t.Fatalf("expected trimmed sender, got %q", got)
	}

	if got := (WhatsAppWebhookRequest{From: "   "}).ResolveFrom(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestSendMessageRequest_ResolveTo(t *testing.T) {
	r := SendMessageRequest{To: " +5511999999999 "}
	if got := r.ResolveTo(); got != "+5511999999999" {
		t.Fatalf("expected trimmed recipient, got %q", got)
	}
}
