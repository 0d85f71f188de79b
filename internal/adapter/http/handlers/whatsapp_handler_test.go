package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"recibozap/internal/adapter/http/handlers/mocks"
	"recibozap/internal/domain/entities"
	"recibozap/internal/usecase"
	"recibozap/internal/usecase/interfaces"
	mock_interfaces "recibozap/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWhatsAppRouter(h *WhatsAppHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/whatsapp/webhook", h.Webhook)
	r.POST("/api/whatsapp/send", h.Send)
	r.GET("/api/whatsapp/sessions", h.Sessions)
	return r
}

func TestWhatsAppHandler_Webhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("form payload replies and answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		conversation := mocks.NewMockIConversationUseCase(ctrl)
		messenger := mock_interfaces.NewMockIMessenger(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		h := NewWhatsAppHandler(conversation, messenger, sessions)
		r := newWhatsAppRouter(h)

		conversation.EXPECT().HandleInbound(gomock.Any(), "whatsapp:+5511999999999", "oi", "").
			Return(usecase.Reply{Text: "Olá!"}, nil)
		messenger.EXPECT().SendText(gomock.Any(), "whatsapp:+5511999999999", "Olá!").Return(nil)

		form := url.Values{}
		form.Set("From", "whatsapp:+5511999999999")
		form.Set("Body", "oi")
		req := httptest.NewRequest(http.MethodPost, "/api/whatsapp/webhook", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["reply"] != "Olá!" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("button payload forwards the id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		conversation := mocks.NewMockIConversationUseCase(ctrl)
		messenger := mock_interfaces.NewMockIMessenger(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		h := NewWhatsAppHandler(conversation, messenger, sessions)
		r := newWhatsAppRouter(h)

		conversation.EXPECT().HandleInbound(gomock.Any(), "whatsapp:+5511999999999", "", "confirm_yes").
			Return(usecase.Reply{Text: "Gerado!"}, nil)
		messenger.EXPECT().SendText(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		form := url.Values{}
		form.Set("From", "whatsapp:+5511999999999")
		form.Set("ButtonPayload", "confirm_yes")
		req := httptest.NewRequest(http.MethodPost, "/api/whatsapp/webhook", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("buttons reply delivered as interactive message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		conversation := mocks.NewMockIConversationUseCase(ctrl)
		messenger := mock_interfaces.NewMockIMessenger(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		h := NewWhatsAppHandler(conversation, messenger, sessions)
		r := newWhatsAppRouter(h)

		buttons := []interfaces.Button{{ID: "confirm_yes", Title: "Sim"}, {ID: "confirm_no", Title: "Não"}}
		conversation.EXPECT().HandleInbound(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.Reply{Text: "Confirma?", Buttons: buttons}, nil)
		messenger.EXPECT().SendButtons(gomock.Any(), "whatsapp:+5511999999999", "Confirma?", buttons).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/whatsapp/webhook",
			bytes.NewBufferString(`{"from":"whatsapp:+5511999999999","text":"23/07/2025"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing sender answers 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewWhatsAppHandler(mocks.NewMockIConversationUseCase(ctrl), mock_interfaces.NewMockIMessenger(ctrl), mock_interfaces.NewMockISessionStore(ctrl))
		r := newWhatsAppRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/api/whatsapp/webhook", bytes.NewBufferString(`{"text":"oi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("conversation failure still answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		conversation := mocks.NewMockIConversationUseCase(ctrl)
		h := NewWhatsAppHandler(conversation, mock_interfaces.NewMockIMessenger(ctrl), mock_interfaces.NewMockISessionStore(ctrl))
		r := newWhatsAppRouter(h)

		conversation.EXPECT().HandleInbound(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.Reply{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodPost, "/api/whatsapp/webhook",
			bytes.NewBufferString(`{"from":"whatsapp:+5511999999999","text":"oi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("delivery failure does not change the status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		conversation := mocks.NewMockIConversationUseCase(ctrl)
		messenger := mock_interfaces.NewMockIMessenger(ctrl)
		h := NewWhatsAppHandler(conversation, messenger, mock_interfaces.NewMockISessionStore(ctrl))
		r := newWhatsAppRouter(h)

		conversation.EXPECT().HandleInbound(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.Reply{Text: "Olá!"}, nil)
		messenger.EXPECT().SendText(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("twilio 500"))

		req := httptest.NewRequest(http.MethodPost, "/api/whatsapp/webhook",
			bytes.NewBufferString(`{"from":"whatsapp:+5511999999999","text":"oi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWhatsAppHandler_Send(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		messenger := mock_interfaces.NewMockIMessenger(ctrl)
		h := NewWhatsAppHandler(mocks.NewMockIConversationUseCase(ctrl), messenger, mock_interfaces.NewMockISessionStore(ctrl))
		r := newWhatsAppRouter(h)

		messenger.EXPECT().SendText(gomock.Any(), "+5511999999999", "olá").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/whatsapp/send",
			bytes.NewBufferString(`{"to":"+5511999999999","message":"olá"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing message answers 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewWhatsAppHandler(mocks.NewMockIConversationUseCase(ctrl), mock_interfaces.NewMockIMessenger(ctrl), mock_interfaces.NewMockISessionStore(ctrl))
		r := newWhatsAppRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/api/whatsapp/send", bytes.NewBufferString(`{"to":"+5511999999999"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway failure answers 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		messenger := mock_interfaces.NewMockIMessenger(ctrl)
		h := NewWhatsAppHandler(mocks.NewMockIConversationUseCase(ctrl), messenger, mock_interfaces.NewMockISessionStore(ctrl))
		r := newWhatsAppRouter(h)

		messenger.EXPECT().SendText(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("twilio 500"))

		req := httptest.NewRequest(http.MethodPost, "/api/whatsapp/send",
			bytes.NewBufferString(`{"to":"+5511999999999","message":"olá"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestWhatsAppHandler_Sessions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sessions := mock_interfaces.NewMockISessionStore(ctrl)
	h := NewWhatsAppHandler(mocks.NewMockIConversationUseCase(ctrl), mock_interfaces.NewMockIMessenger(ctrl), sessions)
	r := newWhatsAppRouter(h)

	sessions.EXPECT().All().Return([]entities.Session{
		{Phone: "+5511999999999", State: entities.StateConfirming},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/whatsapp/sessions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "confirming") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
