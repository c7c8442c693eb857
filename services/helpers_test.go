package services

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"prayershare/internal/repository"
	"prayershare/model"
)

// fakeSource is an in-memory PostSource honoring the same ordering and
// cursor semantics as the Mongo repository.
type fakeSource struct {
	mu    sync.Mutex
	kind  model.Kind
	posts []model.Post
	err   error
	calls int
}

func (f *fakeSource) Kind() model.Kind { return f.kind }

func (f *fakeSource) ListAfter(_ context.Context, q repository.PostQuery) ([]model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	sorted := make([]model.Post, len(f.posts))
	copy(sorted, f.posts)
	sortFeed(sorted)

	var out []model.Post
	for _, p := range sorted {
		if q.AuthorID != "" && p.AuthorID != q.AuthorID {
			continue
		}
		if q.After != nil && !q.After.After(p.CreatedAt, p.ID) {
			continue
		}
		out = append(out, p)
		if q.Limit > 0 && int64(len(out)) == q.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeSource) ListByAuthor(ctx context.Context, uid string) ([]model.Post, error) {
	return f.ListAfter(ctx, repository.PostQuery{AuthorID: uid, Limit: 10000})
}

func (f *fakeSource) setPosts(posts []model.Post) {
	f.mu.Lock()
	f.posts = posts
	f.mu.Unlock()
}

// fakeWatchSource adds manual change triggering.
type fakeWatchSource struct {
	fakeSource
	onChange func()
	stopped  bool
}

func (f *fakeWatchSource) Watch(_ context.Context, onChange func()) (func(), error) {
	f.onChange = onChange
	return func() { f.stopped = true }, nil
}

// fakeResolver maps known uids and counts lookups.
type fakeResolver struct {
	mu       sync.Mutex
	profiles map[string]model.Profile
	lookups  int
}

func (f *fakeResolver) Resolve(_ context.Context, uid string) model.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lookups++
	if p, ok := f.profiles[uid]; ok {
		return p
	}
	return model.FallbackProfile()
}

// fakeReactionStore is an in-memory ledger backing store.
type fakeReactionStore struct {
	mu        sync.Mutex
	reactions map[string][]model.Reaction // post hex -> reactions
	failWith  error
}

func newFakeReactionStore() *fakeReactionStore {
	return &fakeReactionStore{reactions: make(map[string][]model.Reaction)}
}

func (f *fakeReactionStore) Add(_ context.Context, _ model.Kind, postID bson.ObjectID, r model.Reaction) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return false, f.failWith
	}
	key := postID.Hex()
	for _, existing := range f.reactions[key] {
		if existing.UserID == r.UserID {
			return false, nil
		}
	}
	f.reactions[key] = append(f.reactions[key], r)
	return true, nil
}

func (f *fakeReactionStore) Remove(_ context.Context, _ model.Kind, postID bson.ObjectID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return false, f.failWith
	}
	key := postID.Hex()
	for i, r := range f.reactions[key] {
		if r.UserID == userID {
			f.reactions[key] = append(f.reactions[key][:i], f.reactions[key][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReactionStore) Exists(_ context.Context, _ model.Kind, postID bson.ObjectID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return false, f.failWith
	}
	for _, r := range f.reactions[postID.Hex()] {
		if r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReactionStore) MarkViewed(_ context.Context, _ model.Kind, postIDs []bson.ObjectID, _ string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return 0, f.failWith
	}
	var n int64
	for _, id := range postIDs {
		rs := f.reactions[id.Hex()]
		for i := range rs {
			if !rs[i].Viewed {
				rs[i].Viewed = true
				n++
			}
		}
	}
	return n, nil
}

func (f *fakeReactionStore) count(postID bson.ObjectID, userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, r := range f.reactions[postID.Hex()] {
		if r.UserID == userID {
			n++
		}
	}
	return n
}

// newPost builds a post with a deterministic id.
func newPost(author string, createdAt time.Time) model.Post {
	return model.Post{
		ID:        bson.NewObjectID(),
		AuthorID:  author,
		Kind:      model.KindRequest,
		Body:      "pray for " + author,
		CreatedAt: createdAt,
		Reactions: []model.Reaction{},
	}
}
