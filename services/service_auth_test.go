package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prayershare/internal/repository"
	"prayershare/model"
)

type fakeUserStore struct {
	byEmail map[string]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, u model.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func TestAuthSignupAndSignin(t *testing.T) {
	store := newFakeUserStore()
	auth := NewAuth(store, "test-secret", time.Hour)

	u, err := auth.SignUp(context.Background(), "Alice@Example.com", "correcthorse")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.True(t, u.SetupRequired())

	token, signed, err := auth.SignIn(context.Background(), "alice@example.com", "correcthorse")
	require.NoError(t, err)
	assert.Equal(t, u.ID, signed.ID)

	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, u.ID, claims.Subject)
}

func TestAuthSignupValidation(t *testing.T) {
	auth := NewAuth(newFakeUserStore(), "s", time.Hour)

	var ve ValidationError
	_, err := auth.SignUp(context.Background(), "not-an-email", "longenough")
	assert.ErrorAs(t, err, &ve)

	_, err = auth.SignUp(context.Background(), "a@b.com", "short")
	assert.ErrorAs(t, err, &ve)
}

func TestAuthSignupDuplicateEmail(t *testing.T) {
	auth := NewAuth(newFakeUserStore(), "s", time.Hour)

	_, err := auth.SignUp(context.Background(), "a@b.com", "longenough")
	require.NoError(t, err)

	_, err = auth.SignUp(context.Background(), "a@b.com", "otherlongpass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthSigninRejectsBadCredentials(t *testing.T) {
	auth := NewAuth(newFakeUserStore(), "s", time.Hour)

	_, err := auth.SignUp(context.Background(), "a@b.com", "longenough")
	require.NoError(t, err)

	_, _, err = auth.SignIn(context.Background(), "a@b.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.SignIn(context.Background(), "nobody@b.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
