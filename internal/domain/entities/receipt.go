package entities

import "time"

// ReceiptStatus represents the lifecycle of an issued receipt.
//
// A receipt is immutable after creation except for the active -> void flip.

type ReceiptStatus string

const (
	ReceiptStatusActive ReceiptStatus = "active"
	ReceiptStatusVoid   ReceiptStatus = "void"
)

// GeneratedVia records the channel a receipt was created from.
const (
	GeneratedViaWhatsApp = "whatsapp"
	GeneratedViaAPI      = "api"
)

// Receipt is the issued receipt persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (opaque uuid)
//   - GSI user_phone-index (PK: user_phone, SK: created_at) for recency queries
//
// Identifier notes:
//   - ID is the internal unique key.
//   - Number is the human-facing NNN/YYYY sequence, unique per (user, year).
//   - DocumentHash is a content-derived fingerprint printed on the PDF for
//     tamper evidence.
type Receipt struct {
	ID                 string        `json:"id"`
	UserPhone          string        `json:"user_phone"`
	Number             string        `json:"receipt_number"`
	ClientName         string        `json:"client_name"`
	ClientDocument     string        `json:"client_document"`
	ServiceName        string        `json:"service_name"`
	ServiceDescription string        `json:"service_description,omitempty"`
	Amount             float64       `json:"amount"`
	Currency           string        `json:"currency"`
	ServiceDate        string        `json:"service_date"`
	Category           string        `json:"service_category"`
	Status             ReceiptStatus `json:"status"`
	GeneratedVia       string        `json:"generated_via"`
	DocumentHash       string        `json:"document_hash"`
	Filename           string        `json:"filename"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// UsageEvent records one quota-consuming action, scoped to a user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI user_phone-index (PK: user_phone, SK: created_at)
//
// The quota engine counts events of type receipt_generated inside the current
// calendar month.
type UsageEvent struct {
	ID        string    `json:"id"`
	UserPhone string    `json:"user_phone"`
	Type      string    `json:"type"`
	ReceiptID string    `json:"receipt_id"`
	CreatedAt time.Time `json:"created_at"`
}

// UsageTypeReceiptGenerated is the only event type the quota engine counts.
const UsageTypeReceiptGenerated = "receipt_generated"
