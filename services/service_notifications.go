package services

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"prayershare/model"
)

// AuthoredLister fetches every post a user authored in one collection,
// satisfied by repository.PostRepository.
type AuthoredLister interface {
	Kind() model.Kind
	ListByAuthor(ctx context.Context, uid string) ([]model.Post, error)
}

// ViewedMarker acknowledges delivered notifications, satisfied by the
// Ledger.
type ViewedMarker interface {
	MarkViewed(ctx context.Context, kind model.Kind, postIDs []bson.ObjectID, ownerID string) (int64, error)
}

// NotificationFeed is the classified view: each bucket sorted by
// reaction time descending.
type NotificationFeed struct {
	Today     []model.Notification
	Yesterday []model.Notification
	Older     []model.Notification
}

// Classifier flattens the reactions on the viewer's own posts into
// day-bucketed notifications. Self-reactions never notify. Acknowledging
// is an advisory side effect: the read succeeds even when the
// viewed-marking write fails.
type Classifier struct {
	sources []AuthoredLister
	marker  ViewedMarker
	resolve ProfileResolver
	now     func() time.Time
	log     *zap.Logger
}

func NewClassifier(sources []AuthoredLister, marker ViewedMarker, resolve ProfileResolver, log *zap.Logger) *Classifier {
	return &Classifier{
		sources: sources,
		marker:  marker,
		resolve: resolve,
		now:     time.Now,
		log:     log,
	}
}

// BuildFeed classifies every reaction addressed to viewerID. When ack is
// set, all reactions just delivered are marked viewed afterwards.
func (c *Classifier) BuildFeed(ctx context.Context, viewerID string, ack bool) (NotificationFeed, error) {
	now := c.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	var feed NotificationFeed
	touched := make(map[model.Kind][]bson.ObjectID)

	for _, src := range c.sources {
		posts, err := src.ListByAuthor(ctx, viewerID)
		if err != nil {
			return NotificationFeed{}, err
		}

		for _, p := range posts {
			hasForeign := false
			for _, r := range p.Reactions {
				if r.UserID == viewerID {
					continue // own reaction, never notifies
				}
				hasForeign = true

				n := model.Notification{
					PostID:    p.ID,
					PostKind:  src.Kind(),
					ReactorID: r.UserID,
					Reactor:   c.resolve.Resolve(ctx, r.UserID),
					ReactedAt: r.ReactedAt,
					Viewed:    r.Viewed,
				}
				switch {
				case !r.ReactedAt.Before(todayStart):
					feed.Today = append(feed.Today, n)
				case !r.ReactedAt.Before(yesterdayStart):
					feed.Yesterday = append(feed.Yesterday, n)
				default:
					feed.Older = append(feed.Older, n)
				}
			}
			if hasForeign {
				touched[src.Kind()] = append(touched[src.Kind()], p.ID)
			}
		}
	}

	sortNotifications(feed.Today)
	sortNotifications(feed.Yesterday)
	sortNotifications(feed.Older)

	if ack {
		for kind, ids := range touched {
			if _, err := c.marker.MarkViewed(ctx, kind, ids, viewerID); err != nil {
				c.log.Warn("notification ack failed",
					zap.String("kind", string(kind)), zap.Error(err))
			}
		}
	}

	return feed, nil
}

func sortNotifications(ns []model.Notification) {
	sort.SliceStable(ns, func(i, j int) bool {
		return ns[i].ReactedAt.After(ns[j].ReactedAt)
	})
}
