package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"prayershare/model"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		// Handle uniqueness is probed app-side (incomplete profiles all
		// carry an empty handle, which a unique index would reject).
		{Keys: bson.D{{Key: "handle", Value: 1}}},
	})
	return err
}

// Get returns the user by uid, ErrNotFound when missing.
func (r *UserRepository) Get(ctx context.Context, uid string) (model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"_id": uid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// GetByEmail returns the user owning an email, ErrNotFound when missing.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Create inserts a fresh account document.
func (r *UserRepository) Create(ctx context.Context, u model.User) error {
	u.CreatedAt = time.Now().UTC()
	_, err := r.col.InsertOne(ctx, u)
	return err
}

// UpdateProfile sets the owner-mutable profile fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, uid, displayName, handle, avatarURL string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": uid},
		bson.M{"$set": bson.M{
			"display_name": displayName,
			"handle":       handle,
			"avatar_url":   avatarURL,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetAvatar updates only the avatar URL.
func (r *UserRepository) SetAvatar(ctx context.Context, uid, avatarURL string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": uid},
		bson.M{"$set": bson.M{"avatar_url": avatarURL}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// HandleTaken reports whether another account already claimed the handle.
func (r *UserRepository) HandleTaken(ctx context.Context, handle, excludeUID string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{
		"handle": handle,
		"_id":    bson.M{"$ne": excludeUID},
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes the account. Posts are intentionally not cascaded;
// feeds fall back to the unknown-user profile for orphaned authors.
func (r *UserRepository) Delete(ctx context.Context, uid string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": uid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
