package response

import (
	"time"

	"recibozap/internal/domain/entities"
)

type WebhookResponse struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply,omitempty"`
}

type SessionResponse struct {
	Phone     string    `json:"phone"`
	State     string    `json:"state"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int               `json:"total"`
}

func FromSessions(sessions []entities.Session) SessionListResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, SessionResponse{
			Phone:     s.Phone,
			State:     string(s.State),
			UpdatedAt: s.UpdatedAt,
		})
	}
	return SessionListResponse{Sessions: out, Total: len(out)}
}
