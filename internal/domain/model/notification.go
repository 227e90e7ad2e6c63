package model

import "time"

type Notification struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Dismissed bool      `json:"dismissed"`
}
