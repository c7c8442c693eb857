package dto

type CreatePostRequest struct {
	Kind      string `json:"kind"` // "req" | "tes"
	Body      string `json:"body"`
	Anonymous bool   `json:"anonymous"`
}

type UpdatePostRequest struct {
	Body      string `json:"body"`
	Anonymous bool   `json:"anonymous"`
	Kind      string `json:"kind,omitempty"` // set to move between kinds
}
