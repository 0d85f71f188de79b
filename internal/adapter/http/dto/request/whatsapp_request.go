package request

import "strings"

// WhatsAppWebhookRequest is the inbound message payload. Twilio posts form
// fields (From/Body/ButtonPayload); the JSON shape is accepted for local
// testing and the simulator.
type WhatsAppWebhookRequest struct {
	From          string `form:"From" json:"from"`
	Body          string `form:"Body" json:"text"`
	ButtonPayload string `form:"ButtonPayload" json:"buttonId"`
}

func (r WhatsAppWebhookRequest) ResolveFrom() string {
	return strings.TrimSpace(r.From)
}

// SendMessageRequest is the test-send payload.
type SendMessageRequest struct {
	To      string `json:"to" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (r SendMessageRequest) ResolveTo() string {
	return strings.TrimSpace(r.To)
}
