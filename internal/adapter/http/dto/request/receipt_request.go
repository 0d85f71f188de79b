package request

import (
	"fmt"
	"strings"

	"recibozap/internal/domain/entities"
)

// GenerateReceiptRequest is the direct-API generation payload. It carries the
// same fields the conversational flow collects.
type GenerateReceiptRequest struct {
	UserPhone          string  `json:"user_phone" binding:"required"`
	ClientName         string  `json:"client_name" binding:"required"`
	ClientDocument     string  `json:"client_document" binding:"required"`
	ServiceName        string  `json:"service_name" binding:"required"`
	ServiceDescription string  `json:"service_description"`
	Amount             float64 `json:"amount" binding:"required"`
	Date               string  `json:"date" binding:"required"`
}

func (r GenerateReceiptRequest) ResolvePhone() string {
	return strings.TrimSpace(r.UserPhone)
}

// ToDraft normalizes the payload into the internal draft shape (amount as a
// fixed 2-decimal string).
func (r GenerateReceiptRequest) ToDraft() entities.ReceiptDraft {
	return entities.ReceiptDraft{
		ClientName:         strings.TrimSpace(r.ClientName),
		ClientDocument:     strings.TrimSpace(r.ClientDocument),
		ServiceName:        strings.TrimSpace(r.ServiceName),
		ServiceDescription: strings.TrimSpace(r.ServiceDescription),
		Amount:             fmt.Sprintf("%.2f", r.Amount),
		Date:               strings.TrimSpace(r.Date),
	}
}
