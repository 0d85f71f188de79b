package handlers

import (
	"errors"
	"log"
	"net/http"

	request "recibozap/internal/adapter/http/dto/request"
	response "recibozap/internal/adapter/http/dto/response"
	"recibozap/internal/usecase"
	"recibozap/internal/usecase/interfaces"
	"recibozap/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMissingSender      = pkg.NewDomainErrorSimple("MISSING_SENDER", "Webhook payload has no sender", http.StatusBadRequest)
	errInvalidSendPayload = pkg.NewDomainErrorSimple("INVALID_SEND_INPUT", "Invalid send payload", http.StatusBadRequest)
)

// WhatsAppHandler receives Twilio webhooks and drives the conversation.
//
// The webhook always answers 200 once a sender is known: delivery problems are
// reported back to the user through the message channel, not the HTTP status,
// so Twilio does not retry messages that were already processed.

type WhatsAppHandler struct {
	conversation usecase.IConversationUseCase
	messenger    interfaces.IMessenger
	sessions     interfaces.ISessionStore
}

func NewWhatsAppHandler(conversation usecase.IConversationUseCase, messenger interfaces.IMessenger, sessions interfaces.ISessionStore) *WhatsAppHandler {
	return &WhatsAppHandler{conversation: conversation, messenger: messenger, sessions: sessions}
}

// Webhook handles one inbound Twilio message and replies through the
// messenger. The JSON body mirrors the form fields for local testing.
func (h *WhatsAppHandler) Webhook(c *gin.Context) {
	var payload request.WhatsAppWebhookRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errMissingSender.HTTPStatus, errMissingSender.ToHTTPError())
		return
	}

	from := payload.ResolveFrom()
	if from == "" {
		c.JSON(errMissingSender.HTTPStatus, errMissingSender.ToHTTPError())
		return
	}

	reply, err := h.conversation.HandleInbound(c.Request.Context(), from, payload.Body, payload.ButtonPayload)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPhone) {
			c.JSON(errMissingSender.HTTPStatus, errMissingSender.ToHTTPError())
			return
		}
		log.Printf("[whatsapp][handler] inbound handling failed from=%s err=%v", from, err)
		c.JSON(http.StatusOK, response.WebhookResponse{Success: false})
		return
	}

	if err := h.deliver(c, from, reply); err != nil {
		log.Printf("[whatsapp][handler] reply delivery failed to=%s err=%v", from, err)
	}

	c.JSON(http.StatusOK, response.WebhookResponse{Success: true, Reply: reply.Text})
}

func (h *WhatsAppHandler) deliver(c *gin.Context, to string, reply usecase.Reply) error {
	ctx := c.Request.Context()
	switch {
	case len(reply.Sections) > 0:
		return h.messenger.SendList(ctx, to, reply.Text, reply.ListButton, reply.Sections)
	case len(reply.Buttons) > 0:
		return h.messenger.SendButtons(ctx, to, reply.Text, reply.Buttons)
	default:
		return h.messenger.SendText(ctx, to, reply.Text)
	}
}

// Send pushes a plain text message out-of-band, used for smoke tests.
func (h *WhatsAppHandler) Send(c *gin.Context) {
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSendPayload.HTTPStatus, errInvalidSendPayload.ToHTTPError())
		return
	}

	to := payload.ResolveTo()
	if usecase.NormalizePhone(to) == "" {
		c.JSON(errInvalidSendPayload.HTTPStatus, errInvalidSendPayload.ToHTTPError())
		return
	}

	if err := h.messenger.SendText(c.Request.Context(), to, payload.Message); err != nil {
		appErr := pkg.NewDomainError("SEND_FAILED", "Failed to send message", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.WebhookResponse{Success: true})
}

// Sessions lists the live conversation sessions (debug endpoint).
func (h *WhatsAppHandler) Sessions(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSessions(h.sessions.All()))
}
