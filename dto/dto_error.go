package dto

type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
