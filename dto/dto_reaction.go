package dto

type ReactionStateResponse struct {
	PostID  string `json:"postId"`
	Reacted bool   `json:"reacted"`
}
