package messaging

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"recibozap/internal/usecase/interfaces"
)

// TwilioMessenger delivers outbound messages through the Twilio WhatsApp API.
//
// Twilio's plain message API has no native buttons or list pickers, so
// interactive replies are rendered as numbered text options; on the way back
// in the conversation layer matches the option text (profile editing also
// takes the bare number).
//
// Env vars:
//   - TWILIO_ACCOUNT_SID / TWILIO_AUTH_TOKEN
//   - TWILIO_WHATSAPP_FROM (e.g. whatsapp:+14155238886)
//   - SIMULATION_MODE=true logs messages instead of sending them
type TwilioMessenger struct {
	client     *twilio.RestClient
	from       string
	simulation bool
}

var _ interfaces.IMessenger = (*TwilioMessenger)(nil)

func NewTwilioMessenger() *TwilioMessenger {
	simulation := strings.EqualFold(os.Getenv("SIMULATION_MODE"), "true")

	accountSID := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	if !simulation && (accountSID == "" || authToken == "") {
		log.Printf("[twilio][gateway] missing credentials, falling back to simulation mode")
		simulation = true
	}

	var client *twilio.RestClient
	if !simulation {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
	}

	return &TwilioMessenger{
		client:     client,
		from:       getenvDefault("TWILIO_WHATSAPP_FROM", "whatsapp:+14155238886"),
		simulation: simulation,
	}
}

func (m *TwilioMessenger) SendText(ctx context.Context, to, body string) error {
	return m.send(ctx, to, body)
}

func (m *TwilioMessenger) SendButtons(ctx context.Context, to, body string, buttons []interfaces.Button) error {
	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	for i, btn := range buttons {
		fmt.Fprintf(&b, "\n*%d* - %s", i+1, btn.Title)
	}
	return m.send(ctx, to, b.String())
}

func (m *TwilioMessenger) SendList(ctx context.Context, to, body, buttonLabel string, sections []interfaces.Section) error {
	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	n := 0
	for _, section := range sections {
		if section.Title != "" {
			fmt.Fprintf(&b, "\n*%s*", section.Title)
		}
		for _, row := range section.Rows {
			n++
			fmt.Fprintf(&b, "\n*%d* - %s", n, row.Title)
		}
	}
	if buttonLabel != "" {
		fmt.Fprintf(&b, "\n\n_%s: responda com o número da opção._", buttonLabel)
	}
	return m.send(ctx, to, b.String())
}

func (m *TwilioMessenger) send(_ context.Context, to, body string) error {
	to = whatsappAddress(to)

	if m.simulation {
		log.Printf("[twilio][gateway] simulated message to=%s body=%q", to, body)
		return nil
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(m.from)
	params.SetBody(body)

	msg, err := m.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio create message: %w", err)
	}
	if msg.Sid != nil {
		log.Printf("[twilio][gateway] message sent to=%s sid=%s", to, *msg.Sid)
	}
	return nil
}

// whatsappAddress ensures the Twilio channel prefix is present exactly once.
func whatsappAddress(to string) string {
	if strings.HasPrefix(to, "whatsapp:") {
		return to
	}
	return "whatsapp:" + to
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
