package dto

type SwipeRequest struct {
	TargetID string `json:"target_id"`
	Action   string `json:"action"`
}

type SwipeResponse struct {
	OK       bool `json:"ok"`
	NewMatch bool `json:"new_match"`
}

type MatchesResponse struct {
	MatchIDs []string `json:"match_ids"`
}
