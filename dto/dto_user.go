package dto

import "prayershare/model"

type UpdateProfileRequest struct {
	DisplayName string `json:"displayName"`
	Handle      string `json:"handle"`
	AvatarURL   string `json:"avatarUrl"`
}

type UserResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email,omitempty"`
	DisplayName   string `json:"displayName"`
	Handle        string `json:"handle"`
	AvatarURL     string `json:"avatarUrl"`
	SetupRequired bool   `json:"setupRequired,omitempty"`
}

// NewUserResponse renders a user; ownerView includes the private fields.
func NewUserResponse(u model.User, ownerView bool) UserResponse {
	resp := UserResponse{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Handle:      u.Handle,
		AvatarURL:   u.AvatarURL,
	}
	if ownerView {
		resp.Email = u.Email
		resp.SetupRequired = u.SetupRequired()
	}
	return resp
}
