package dto

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token         string `json:"token"`
	UserID        string `json:"userId"`
	SetupRequired bool   `json:"setupRequired"`
}
