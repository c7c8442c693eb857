package model

import "time"

// User is a stored account plus its public profile fields. The _id is the
// auth uid and shares a namespace with Post.AuthorID and Reaction.UserID.
type User struct {
	ID           string    `json:"id"          bson:"_id"`
	Email        string    `json:"email"       bson:"email"`
	PasswordHash string    `json:"-"           bson:"password_hash"`
	DisplayName  string    `json:"displayName" bson:"display_name"`
	Handle       string    `json:"handle"      bson:"handle"`
	AvatarURL    string    `json:"avatarUrl"   bson:"avatar_url"`
	CreatedAt    time.Time `json:"createdAt"   bson:"created_at"`
}

// Profile is the public projection joined onto feed items and
// notifications.
type Profile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Handle      string `json:"handle"`
	AvatarURL   string `json:"avatarUrl"`
}

func (u User) Profile() Profile {
	return Profile{
		UserID:      u.ID,
		DisplayName: u.DisplayName,
		Handle:      u.Handle,
		AvatarURL:   u.AvatarURL,
	}
}

// SetupRequired reports whether the owner still has to complete the
// profile setup flow.
func (u User) SetupRequired() bool {
	return u.DisplayName == "" || u.Handle == ""
}

// FallbackProfile is returned whenever a profile lookup misses or fails,
// and is also the mask applied to anonymous posts.
func FallbackProfile() Profile {
	return Profile{
		DisplayName: "Unknown User",
		AvatarURL:   "/static/anonymous.png",
	}
}
