package request

import "testing"

func TestGenerateReceiptRequest_ResolvePhone(t *testing.T) {
	r := GenerateReceiptRequest{UserPhone: " +5511999999999 "}
	if got := r.ResolvePhone(); got != "+5511999999999" {
		t.Fatalf("expected trimmed phone, got %q", got)
	}
}

func TestGenerateReceiptRequest_ToDraft(t *testing.T) {
	r := GenerateReceiptRequest{
		UserPhone:          "+5511999999999",
		ClientName:         " Maria Cliente ",
		ClientDocument:     " 987.654.321-00 ",
		ServiceName:        " Consultoria ",
		ServiceDescription: "  ",
		Amount:             1500.5,
		Date:               " 23/07/2025 ",
	}

	d := r.ToDraft()
	if d.ClientName != "Maria Cliente" || d.ClientDocument != "987.654.321-00" {
		t.Fatalf("unexpected draft %+v", d)
	}
	if d.Amount != "1500.50" {
		t.Fatalf("expected fixed 2-decimal amount, got %q", d.Amount)
	}
	if d.ServiceDescription != "" {
		t.Fatalf("expected empty description, got %q", d.ServiceDescription)
	}
	if d.Date != "23/07/2025" {
		t.Fatalf("unexpected date %q", d.Date)
	}
}
