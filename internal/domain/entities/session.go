package entities

import "time"

// ConversationState enumerates the positions of the WhatsApp form flow.

type ConversationState string

const (
	StateStart ConversationState = "start"

	// Provider profile collection (first-time users).
	StateCollectingUserName     ConversationState = "collecting_user_name"
	StateCollectingUserDocument ConversationState = "collecting_user_document"

	// Receipt form collection.
	StateCollectingClientName         ConversationState = "collecting_client_name"
	StateCollectingClientDocument     ConversationState = "collecting_client_document"
	StateCollectingServiceName        ConversationState = "collecting_service_name"
	StateCollectingServiceDescription ConversationState = "collecting_service_description"
	StateCollectingAmount             ConversationState = "collecting_amount"
	StateCollectingDate               ConversationState = "collecting_date"
	StateConfirming                   ConversationState = "confirming"
	StateCompleted                    ConversationState = "completed"

	// Profile editing menu.
	StateEditingProfile      ConversationState = "editing_profile"
	StateEditingUserName     ConversationState = "editing_user_name"
	StateEditingUserDocument ConversationState = "editing_user_document"
)

// IsProfileCollection reports whether the state belongs to the first-contact
// profile setup flow, which the global pre-routing rule must not interrupt.
func (s ConversationState) IsProfileCollection() bool {
	return s == StateCollectingUserName || s == StateCollectingUserDocument
}

// ReceiptDraft accumulates the form answers of one conversation.
//
// Amount is stored as a fixed 2-decimal-place string once parsed; Date is the
// literal DD/MM/YYYY text the user confirmed.
type ReceiptDraft struct {
	ClientName         string `json:"client_name"`
	ClientDocument     string `json:"client_document"`
	ServiceName        string `json:"service_name"`
	ServiceDescription string `json:"service_description"`
	Amount             string `json:"amount"`
	Date               string `json:"date"`

	// Transient profile-setup fields, cleared once the profile persists.
	UserFullName string `json:"user_full_name,omitempty"`
	UserCpfCnpj  string `json:"user_cpf_cnpj,omitempty"`
}

// Session is the volatile per-conversation state, keyed by phone. A process
// restart loses all sessions; users simply greet the bot again.
type Session struct {
	Phone     string            `json:"phone"`
	State     ConversationState `json:"state"`
	Draft     ReceiptDraft      `json:"draft"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewSession returns a fresh conversation at START with an empty draft.
func NewSession(phone string) Session {
	return Session{Phone: phone, State: StateStart}
}
