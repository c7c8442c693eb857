package services

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"prayershare/internal/cursor"
	"prayershare/internal/repository"
	"prayershare/model"
)

// PostSource is one backing collection of posts, satisfied by
// repository.PostRepository.
type PostSource interface {
	Kind() model.Kind
	ListAfter(ctx context.Context, q repository.PostQuery) ([]model.Post, error)
}

// ProfileResolver joins an author id to display attributes. It never
// fails; unknown authors come back as the fallback profile.
type ProfileResolver interface {
	Resolve(ctx context.Context, uid string) model.Profile
}

// FeedFilter restricts one pagination session.
type FeedFilter struct {
	Kinds            []model.Kind // empty = all
	AuthorID         string
	OnlyViewer       bool
	IncludeAnonymous bool
}

// FeedItem is one post joined with its author profile. Anonymous posts
// viewed by anyone but their owner carry the fallback profile and a
// blanked author id.
type FeedItem struct {
	Post   model.Post
	Author model.Profile
}

type FeedPage struct {
	Items      []FeedItem
	NextCursor string
	HasMore    bool
}

// FeedAggregator merges one or more post collections into a single
// descending feed and paginates it with an opaque cursor. One instance
// is one pagination session: items already returned are never repeated,
// and only one fetch may be in flight at a time.
type FeedAggregator struct {
	sources  map[model.Kind]PostSource
	profiles ProfileResolver
	viewerID string
	filter   FeedFilter
	pageSize int64

	mu       sync.Mutex
	fetching bool
	pos      *cursor.Position
	seen     map[string]struct{}
	done     bool
}

func NewFeedAggregator(sources []PostSource, profiles ProfileResolver, viewerID string, filter FeedFilter, pageSize int64) *FeedAggregator {
	m := make(map[model.Kind]PostSource, len(sources))
	for _, s := range sources {
		m[s.Kind()] = s
	}
	return &FeedAggregator{
		sources:  m,
		profiles: profiles,
		viewerID: viewerID,
		filter:   filter,
		pageSize: pageSize,
		seen:     make(map[string]struct{}),
	}
}

// StartAt resumes the session after a previously returned cursor token.
func (a *FeedAggregator) StartAt(token string) error {
	pos, err := cursor.Decode(token)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.pos = &pos
	a.mu.Unlock()
	return nil
}

func (a *FeedAggregator) kinds() []model.Kind {
	want := a.filter.Kinds
	if len(want) == 0 {
		want = model.AllKinds
	}
	out := make([]model.Kind, 0, len(want))
	for _, k := range want {
		if _, ok := a.sources[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// FetchPage returns the next page. Exhaustion is keyed off the raw
// store fetch, not the filtered item count: a page shrunk by anonymous
// filtering or dedup still reports HasMore, and only once every source
// runs dry do later calls return an empty page. Overlapping calls get
// ErrFetchInFlight.
func (a *FeedAggregator) FetchPage(ctx context.Context) (FeedPage, error) {
	a.mu.Lock()
	if a.fetching {
		a.mu.Unlock()
		return FeedPage{}, ErrFetchInFlight
	}
	if a.done {
		a.mu.Unlock()
		return FeedPage{HasMore: false}, nil
	}
	a.fetching = true
	pos := a.pos
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.fetching = false
		a.mu.Unlock()
	}()

	author := a.filter.AuthorID
	if a.filter.OnlyViewer {
		author = a.viewerID
	}

	// Over-fetch each source by one page so the merged order can fill a
	// full page even when one collection dominates. A source that hands
	// back a full raw page may still hold more.
	var merged []model.Post
	exhausted := true
	for _, k := range a.kinds() {
		posts, err := a.sources[k].ListAfter(ctx, repository.PostQuery{
			AuthorID: author,
			After:    pos,
			Limit:    a.pageSize,
		})
		if err != nil {
			return FeedPage{}, err
		}
		if int64(len(posts)) >= a.pageSize {
			exhausted = false
		}
		merged = append(merged, posts...)
	}
	sortFeed(merged)

	var (
		taken       []model.Post
		lastSeen    *cursor.Position
		consumedAll = true
	)
	for _, p := range merged {
		if int64(len(taken)) == a.pageSize {
			consumedAll = false
			break
		}
		lastSeen = &cursor.Position{CreatedAt: p.CreatedAt, ID: p.ID}

		if _, dup := a.seen[p.ID.Hex()]; dup {
			continue
		}
		if p.Anonymous && !a.filter.IncludeAnonymous {
			// Consumed but never surfaced; the cursor still advances
			// past it.
			continue
		}
		taken = append(taken, p)
	}

	items, err := a.join(ctx, taken)
	if err != nil {
		return FeedPage{}, err
	}

	page := FeedPage{Items: items}
	a.mu.Lock()
	for _, p := range taken {
		a.seen[p.ID.Hex()] = struct{}{}
	}
	if lastSeen != nil {
		a.pos = lastSeen
		page.NextCursor = cursor.Encode(*lastSeen)
	}
	// Done only when every source ran dry and nothing fetched was left
	// unexamined. Filtered-out items never end the session.
	if exhausted && consumedAll {
		a.done = true
	}
	page.HasMore = !a.done
	a.mu.Unlock()

	return page, nil
}

// join resolves author profiles concurrently and applies anonymous
// masking. Arrival order cannot affect the result: slots are fixed
// before the lookups start.
func (a *FeedAggregator) join(ctx context.Context, posts []model.Post) ([]FeedItem, error) {
	items := make([]FeedItem, len(posts))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range posts {
		i, p := i, p
		items[i].Post = p
		if p.Anonymous && p.AuthorID != a.viewerID {
			items[i].Post.AuthorID = ""
			items[i].Author = model.FallbackProfile()
			continue
		}
		g.Go(func() error {
			items[i].Author = a.profiles.Resolve(gctx, p.AuthorID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// sortFeed orders posts created_at descending, _id ascending on ties.
func sortFeed(posts []model.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID.Hex() < posts[j].ID.Hex()
	})
}
