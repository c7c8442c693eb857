package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"prayershare/internal/repository"
	"prayershare/model"
)

// WatchableSource is a post source that can push change notifications,
// satisfied by repository.PostRepository via Mongo change streams.
type WatchableSource interface {
	PostSource
	Watch(ctx context.Context, onChange func()) (stop func(), err error)
}

// LiveFeed keeps a continuously fresh merged feed. Every change event on
// a source triggers a fresh snapshot query for that source only; the
// snapshot replaces that source's slice while the other sources' items
// stay untouched. Snapshot() returns the merged, deduplicated view.
type LiveFeed struct {
	sources  []WatchableSource
	profiles ProfileResolver
	viewerID string
	filter   FeedFilter
	limit    int64
	log      *zap.Logger

	mu     sync.RWMutex
	slices map[model.Kind][]FeedItem
	stops  []func()
	closed bool

	updates chan model.Kind
}

func NewLiveFeed(sources []WatchableSource, profiles ProfileResolver, viewerID string, filter FeedFilter, limit int64, log *zap.Logger) *LiveFeed {
	return &LiveFeed{
		sources:  sources,
		profiles: profiles,
		viewerID: viewerID,
		filter:   filter,
		limit:    limit,
		log:      log,
		slices:   make(map[model.Kind][]FeedItem),
		updates:  make(chan model.Kind, 16),
	}
}

// Start primes every source and registers its listener. Callers must
// Close when the consumer goes away.
func (l *LiveFeed) Start(ctx context.Context) error {
	for _, src := range l.sources {
		l.Refresh(ctx, src.Kind())

		src := src
		stop, err := src.Watch(ctx, func() {
			l.Refresh(context.Background(), src.Kind())
		})
		if err != nil {
			l.Close()
			return err
		}
		l.stops = append(l.stops, stop)
	}
	return nil
}

// Refresh re-queries one source and swaps in its snapshot. Query errors
// keep the previous slice.
func (l *LiveFeed) Refresh(ctx context.Context, kind model.Kind) {
	var src WatchableSource
	for _, s := range l.sources {
		if s.Kind() == kind {
			src = s
			break
		}
	}
	if src == nil {
		return
	}

	author := l.filter.AuthorID
	if l.filter.OnlyViewer {
		author = l.viewerID
	}

	posts, err := src.ListAfter(ctx, repository.PostQuery{AuthorID: author, Limit: l.limit})
	if err != nil {
		l.log.Warn("live feed refresh failed", zap.String("kind", string(kind)), zap.Error(err))
		return
	}

	items := make([]FeedItem, 0, len(posts))
	for _, p := range posts {
		if p.Anonymous && !l.filter.IncludeAnonymous {
			continue
		}
		item := FeedItem{Post: p}
		if p.Anonymous && p.AuthorID != l.viewerID {
			item.Post.AuthorID = ""
			item.Author = model.FallbackProfile()
		} else {
			item.Author = l.profiles.Resolve(ctx, p.AuthorID)
		}
		items = append(items, item)
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.slices[kind] = items
	l.mu.Unlock()

	select {
	case l.updates <- kind:
	default:
	}
}

// Snapshot merges every source's current slice into one deduplicated,
// ordered feed.
func (l *LiveFeed) Snapshot() []FeedItem {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[string]struct{})
	var posts []model.Post
	byID := make(map[string]FeedItem)
	for _, slice := range l.slices {
		for _, item := range slice {
			id := item.Post.ID.Hex()
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			posts = append(posts, item.Post)
			byID[id] = item
		}
	}
	sortFeed(posts)

	out := make([]FeedItem, len(posts))
	for i, p := range posts {
		out[i] = byID[p.ID.Hex()]
	}
	return out
}

// Updates signals which source was refreshed. Best-effort; slow readers
// miss intermediate signals, never state.
func (l *LiveFeed) Updates() <-chan model.Kind {
	return l.updates
}

// Close unregisters every listener. No callback mutates state after it
// returns.
func (l *LiveFeed) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	stops := l.stops
	l.stops = nil
	l.mu.Unlock()

	for _, stop := range stops {
		stop()
	}
}
