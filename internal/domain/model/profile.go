package model

import "time"

type Profile struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Age         int       `json:"age"`
	Interests   []string  `json:"interests"`
	Bio         string    `json:"bio"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
