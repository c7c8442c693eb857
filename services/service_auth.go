package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"prayershare/configs"
	"prayershare/internal/repository"
	"prayershare/model"
)

// UserStore is the account persistence contract, satisfied by
// repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, u model.User) error
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// Auth issues HS256 tokens with the user id as subject. New accounts
// start with an empty profile and go through the setup flow.
type Auth struct {
	users  UserStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuth(users UserStore, secret string, ttl time.Duration) *Auth {
	return &Auth{users: users, secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (a *Auth) SignUp(ctx context.Context, email, password string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return model.User{}, ValidationError("a valid email is required")
	}
	if len(password) < configs.MinPasswordLen {
		return model.User{}, ValidationError("password must be at least 8 characters")
	}

	if _, err := a.users.GetByEmail(ctx, email); err == nil {
		return model.User{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return model.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}

	u := model.User{
		ID:           bson.NewObjectID().Hex(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := a.users.Create(ctx, u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (a *Auth) SignIn(ctx context.Context, email, password string) (string, model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", model.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", model.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", model.User{}, ErrInvalidCredentials
	}

	token, err := a.issue(u.ID)
	if err != nil {
		return "", model.User{}, err
	}
	return token, u, nil
}

func (a *Auth) issue(uid string) (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   uid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}
