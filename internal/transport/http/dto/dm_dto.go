package dto

import (
	"time"

	"github.com/Brooklyn-808/friendr/internal/domain/model"
)

type SendMessageRequest struct {
	PeerID string `json:"peer_id"`
	Text   string `json:"text"`
}

type MessageResponse struct {
	ID       string    `json:"id"`
	SenderID string    `json:"sender_id"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sent_at"`
}

type HistoryResponse struct {
	Items []MessageResponse `json:"items"`
}

func MapMessage(m model.Message) MessageResponse {
	return MessageResponse{
		ID:       m.ID,
		SenderID: m.SenderID,
		Text:     m.Text,
		SentAt:   m.SentAt,
	}
}

func MapMessages(messages []model.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, MapMessage(m))
	}
	return out
}
