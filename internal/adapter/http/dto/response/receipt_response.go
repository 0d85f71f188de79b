package response

import (
	"time"

	"recibozap/internal/domain/entities"
	"recibozap/internal/usecase"
)

type ReceiptResponse struct {
	ID                 string    `json:"id"`
	UserPhone          string    `json:"user_phone"`
	ReceiptNumber      string    `json:"receipt_number"`
	ClientName         string    `json:"client_name"`
	ClientDocument     string    `json:"client_document"`
	ServiceName        string    `json:"service_name"`
	ServiceDescription string    `json:"service_description,omitempty"`
	Amount             float64   `json:"amount"`
	Currency           string    `json:"currency"`
	ServiceDate        string    `json:"service_date"`
	ServiceCategory    string    `json:"service_category"`
	Status             string    `json:"status"`
	GeneratedVia       string    `json:"generated_via"`
	DocumentHash       string    `json:"document_hash"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromReceipt(r entities.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:                 r.ID,
		UserPhone:          r.UserPhone,
		ReceiptNumber:      r.Number,
		ClientName:         r.ClientName,
		ClientDocument:     r.ClientDocument,
		ServiceName:        r.ServiceName,
		ServiceDescription: r.ServiceDescription,
		Amount:             r.Amount,
		Currency:           r.Currency,
		ServiceDate:        r.ServiceDate,
		ServiceCategory:    r.Category,
		Status:             string(r.Status),
		GeneratedVia:       r.GeneratedVia,
		DocumentHash:       r.DocumentHash,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

type ReceiptListResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
	Total    int               `json:"total"`
}

func FromReceipts(rs []entities.Receipt) ReceiptListResponse {
	out := make([]ReceiptResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReceipt(r))
	}
	return ReceiptListResponse{Receipts: out, Total: len(out)}
}

type GenerateReceiptResponse struct {
	Success       bool   `json:"success"`
	ReceiptID     string `json:"receipt_id"`
	ReceiptNumber string `json:"receipt_number"`
	Filename      string `json:"filename"`
	DownloadURL   string `json:"download_url"`
}

func FromGenerateResult(r usecase.GenerateResult) GenerateReceiptResponse {
	return GenerateReceiptResponse{
		Success:       true,
		ReceiptID:     r.ReceiptID,
		ReceiptNumber: r.ReceiptNumber,
		Filename:      r.Filename,
		DownloadURL:   r.DownloadURL,
	}
}
