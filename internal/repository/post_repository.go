package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"prayershare/internal/cursor"
	"prayershare/model"
)

// PostQuery restricts one page fetch against a single collection.
type PostQuery struct {
	AuthorID string
	After    *cursor.Position
	Limit    int64
}

// PostRepository backs one post kind with its own collection.
type PostRepository struct {
	col  *mongo.Collection
	kind model.Kind
}

func NewPostRepository(db *mongo.Database, kind model.Kind) *PostRepository {
	return &PostRepository{
		col:  db.Collection(kind.Collection()),
		kind: kind,
	}
}

func (r *PostRepository) Kind() model.Kind { return r.kind }

// EnsureIndexes creates the feed sort index.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "uid", Value: 1}}},
	})
	return err
}

// ListAfter returns up to q.Limit posts sorted created_at descending with
// _id ascending tie-break, resuming strictly after q.After when set.
func (r *PostRepository) ListAfter(ctx context.Context, q PostQuery) ([]model.Post, error) {
	filter := bson.M{}
	if q.AuthorID != "" {
		filter["uid"] = q.AuthorID
	}
	if q.After != nil {
		filter["$or"] = []bson.M{
			{"created_at": bson.M{"$lt": q.After.CreatedAt}},
			{"created_at": q.After.CreatedAt, "_id": bson.M{"$gt": q.After.ID}},
		}
	}

	lim := q.Limit
	if lim <= 0 {
		lim = 9
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(lim)

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []model.Post
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByAuthor returns every post by uid, newest first.
func (r *PostRepository) ListByAuthor(ctx context.Context, uid string) ([]model.Post, error) {
	return r.ListAfter(ctx, PostQuery{AuthorID: uid, Limit: 10000})
}

func (r *PostRepository) Get(ctx context.Context, id bson.ObjectID) (model.Post, error) {
	var p model.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Post{}, ErrNotFound
	}
	if err != nil {
		return model.Post{}, err
	}
	return p, nil
}

// Create inserts a post, assigning id and timestamps.
func (r *PostRepository) Create(ctx context.Context, p model.Post) (model.Post, error) {
	now := time.Now().UTC()
	p.ID = bson.NewObjectID()
	p.Kind = r.kind
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Reactions == nil {
		p.Reactions = []model.Reaction{}
	}
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return model.Post{}, err
	}
	return p, nil
}

// Insert stores a fully-formed post, keeping its id, timestamps and
// reactions. Used when a kind edit moves a post between collections.
func (r *PostRepository) Insert(ctx context.Context, p model.Post) error {
	p.Kind = r.kind
	_, err := r.col.InsertOne(ctx, p)
	return err
}

// Update edits body/anonymous, scoped to the owner. ErrNotFound when the
// post is missing or owned by someone else.
func (r *PostRepository) Update(ctx context.Context, id bson.ObjectID, ownerID, body string, anonymous bool) (model.Post, error) {
	res := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "uid": ownerID},
		bson.M{"$set": bson.M{
			"body":       body,
			"anonymous":  anonymous,
			"updated_at": time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var p model.Post
	err := res.Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Post{}, ErrNotFound
	}
	if err != nil {
		return model.Post{}, err
	}
	return p, nil
}

// Delete removes the post, scoped to the owner.
func (r *PostRepository) Delete(ctx context.Context, id bson.ObjectID, ownerID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "uid": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Watch opens a change stream on the collection and invokes onChange for
// every event. The returned stop function unregisters the listener; no
// callback fires after it returns.
func (r *PostRepository) Watch(ctx context.Context, onChange func()) (func(), error) {
	cs, err := r.col.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, err
	}

	streamCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer cs.Close(context.Background())
		for cs.Next(streamCtx) {
			onChange()
		}
	}()

	stop := func() {
		cancel()
		<-done
	}
	return stop, nil
}
