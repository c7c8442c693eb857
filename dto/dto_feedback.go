package dto

type FeedbackRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
	ReplyTo string `json:"replyTo,omitempty"`
}
