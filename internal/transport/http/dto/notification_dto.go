package dto

import (
	"time"

	"github.com/Brooklyn-808/friendr/internal/domain/model"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
}

func MapNotifications(notifications []model.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, NotificationResponse{
			ID:        n.ID,
			Text:      n.Text,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}
