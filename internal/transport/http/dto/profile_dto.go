package dto

import (
	"time"

	"github.com/Brooklyn-808/friendr/internal/domain/model"
)

type ProfileRequest struct {
	DisplayName string   `json:"display_name"`
	Age         int      `json:"age"`
	Interests   []string `json:"interests"`
	Bio         string   `json:"bio"`
}

type ProfileResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Age         int       `json:"age"`
	Interests   []string  `json:"interests"`
	Bio         string    `json:"bio"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProfileListResponse struct {
	Items []ProfileResponse `json:"items"`
}

func MapProfile(p model.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Age:         p.Age,
		Interests:   p.Interests,
		Bio:         p.Bio,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func MapProfiles(profiles []model.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, MapProfile(p))
	}
	return out
}
