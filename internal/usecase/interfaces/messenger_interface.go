package interfaces

import "context"

// Button is one tappable option of an interactive message.
type Button struct {
	ID    string
	Title string
}

// Section groups list rows under a title.
type Section struct {
	Title string
	Rows  []Button
}

// IMessenger abstracts the outbound WhatsApp channel (e.g. Twilio).
//
// Implementations must degrade gracefully: when an interactive variant is
// unsupported or fails, the same options are delivered as a numbered
// plain-text list so the conversation stays completable by text replies.
type IMessenger interface {
	SendText(ctx context.Context, to, body string) error
	SendButtons(ctx context.Context, to, body string, buttons []Button) error
	SendList(ctx context.Context, to, body, buttonLabel string, sections []Section) error
}
