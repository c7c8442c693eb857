package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"prayershare/model"
)

// ReactionRepository mutates the reaction arrays embedded in post
// documents. Per-user uniqueness is enforced by guarding the $push with a
// "no element for this uid yet" filter, so a concurrent double-react
// still lands exactly one entry.
type ReactionRepository struct {
	cols map[model.Kind]*mongo.Collection
}

func NewReactionRepository(db *mongo.Database) *ReactionRepository {
	cols := make(map[model.Kind]*mongo.Collection, len(model.AllKinds))
	for _, k := range model.AllKinds {
		cols[k] = db.Collection(k.Collection())
	}
	return &ReactionRepository{cols: cols}
}

// Add appends a reaction unless one exists for the uid. Returns
// added=false (no error) on the duplicate path, ErrNotFound when the post
// itself is gone.
func (r *ReactionRepository) Add(ctx context.Context, kind model.Kind, postID bson.ObjectID, reaction model.Reaction) (bool, error) {
	col := r.cols[kind]

	res, err := col.UpdateOne(ctx,
		bson.M{"_id": postID, "reactions.uid": bson.M{"$ne": reaction.UserID}},
		bson.M{"$push": bson.M{"reactions": reaction}},
	)
	if err != nil {
		return false, err
	}
	if res.ModifiedCount > 0 {
		return true, nil
	}

	// Matched nothing: either already reacted or the post is missing.
	n, err := col.CountDocuments(ctx, bson.M{"_id": postID})
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, ErrNotFound
	}
	return false, nil
}

// Remove pulls the uid's reaction. Absent is a no-op, not an error.
func (r *ReactionRepository) Remove(ctx context.Context, kind model.Kind, postID bson.ObjectID, userID string) (bool, error) {
	res, err := r.cols[kind].UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"reactions": bson.M{"uid": userID}}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// Exists is the membership test.
func (r *ReactionRepository) Exists(ctx context.Context, kind model.Kind, postID bson.ObjectID, userID string) (bool, error) {
	n, err := r.cols[kind].CountDocuments(ctx, bson.M{
		"_id":       postID,
		"reactions": bson.M{"$elemMatch": bson.M{"uid": userID}},
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkViewed flips every unviewed reaction on the listed posts to viewed.
// One UpdateMany per kind; partial application is tolerated since the
// flag is advisory.
func (r *ReactionRepository) MarkViewed(ctx context.Context, kind model.Kind, postIDs []bson.ObjectID, ownerID string) (int64, error) {
	if len(postIDs) == 0 {
		return 0, nil
	}

	res, err := r.cols[kind].UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": postIDs}, "uid": ownerID},
		bson.M{"$set": bson.M{"reactions.$[r].viewed": true}},
		options.UpdateMany().SetArrayFilters([]interface{}{
			bson.M{"r.viewed": false},
		}),
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
