package model

// Like is one directed edge of the like graph. Matches are never stored:
// a pair is matched iff both directions exist.
type Like struct {
	LikerID string `json:"liker_id"`
	LikedID string `json:"liked_id"`
}
