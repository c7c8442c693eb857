package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"prayershare/model"
)

// fakeMarker records and optionally fails MarkViewed calls.
type fakeMarker struct {
	calls int
	err   error
}

func (f *fakeMarker) MarkViewed(context.Context, model.Kind, []bson.ObjectID, string) (int64, error) {
	f.calls++
	return 0, f.err
}

func classifierAt(now time.Time, marker ViewedMarker, sources ...*fakeSource) *Classifier {
	ls := make([]AuthoredLister, len(sources))
	for i, s := range sources {
		ls[i] = s
	}
	c := NewClassifier(ls, marker, &fakeResolver{}, zap.NewNop())
	c.now = func() time.Time { return now }
	return c
}

func TestClassifierBucketing(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)

	post := newPost("owner", now.Add(-72*time.Hour))
	post.Reactions = []model.Reaction{
		{UserID: "r1", ReactedAt: now.Add(-5 * time.Minute)},
		{UserID: "r2", ReactedAt: now.Add(-26 * time.Hour)},
		{UserID: "r3", ReactedAt: now.Add(-50 * time.Hour)},
	}
	src := &fakeSource{kind: model.KindRequest, posts: []model.Post{post}}

	feed, err := classifierAt(now, &fakeMarker{}, src).BuildFeed(context.Background(), "owner", false)
	require.NoError(t, err)

	require.Len(t, feed.Today, 1)
	assert.Equal(t, "r1", feed.Today[0].ReactorID)
	require.Len(t, feed.Yesterday, 1)
	assert.Equal(t, "r2", feed.Yesterday[0].ReactorID)
	require.Len(t, feed.Older, 1)
	assert.Equal(t, "r3", feed.Older[0].ReactorID)
}

func TestClassifierExcludesSelfReactions(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)

	post := newPost("owner", now.Add(-time.Hour))
	post.Reactions = []model.Reaction{
		{UserID: "owner", ReactedAt: now.Add(-time.Minute)},
	}
	src := &fakeSource{kind: model.KindRequest, posts: []model.Post{post}}

	feed, err := classifierAt(now, &fakeMarker{}, src).BuildFeed(context.Background(), "owner", false)
	require.NoError(t, err)

	assert.Empty(t, feed.Today)
	assert.Empty(t, feed.Yesterday)
	assert.Empty(t, feed.Older)
}

func TestClassifierSortsBucketsDescending(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)

	post := newPost("owner", now.Add(-time.Hour))
	post.Reactions = []model.Reaction{
		{UserID: "early", ReactedAt: now.Add(-3 * time.Hour)},
		{UserID: "late", ReactedAt: now.Add(-5 * time.Minute)},
		{UserID: "mid", ReactedAt: now.Add(-time.Hour)},
	}
	src := &fakeSource{kind: model.KindRequest, posts: []model.Post{post}}

	feed, err := classifierAt(now, &fakeMarker{}, src).BuildFeed(context.Background(), "owner", false)
	require.NoError(t, err)

	require.Len(t, feed.Today, 3)
	assert.Equal(t, "late", feed.Today[0].ReactorID)
	assert.Equal(t, "mid", feed.Today[1].ReactorID)
	assert.Equal(t, "early", feed.Today[2].ReactorID)
}

func TestClassifierMergesBothKinds(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)

	req := newPost("owner", now.Add(-2*time.Hour))
	req.Reactions = []model.Reaction{{UserID: "r1", ReactedAt: now.Add(-time.Hour)}}

	tes := newPost("owner", now.Add(-2*time.Hour))
	tes.Kind = model.KindTestimony
	tes.Reactions = []model.Reaction{{UserID: "r2", ReactedAt: now.Add(-30 * time.Minute)}}

	reqSrc := &fakeSource{kind: model.KindRequest, posts: []model.Post{req}}
	tesSrc := &fakeSource{kind: model.KindTestimony, posts: []model.Post{tes}}

	feed, err := classifierAt(now, &fakeMarker{}, reqSrc, tesSrc).BuildFeed(context.Background(), "owner", false)
	require.NoError(t, err)

	require.Len(t, feed.Today, 2)
	assert.Equal(t, model.KindTestimony, feed.Today[0].PostKind)
	assert.Equal(t, model.KindRequest, feed.Today[1].PostKind)
}

func TestClassifierAckMarksViewed(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)

	post := newPost("owner", now.Add(-time.Hour))
	post.Reactions = []model.Reaction{{UserID: "r1", ReactedAt: now.Add(-time.Minute)}}
	src := &fakeSource{kind: model.KindRequest, posts: []model.Post{post}}
	marker := &fakeMarker{}

	_, err := classifierAt(now, marker, src).BuildFeed(context.Background(), "owner", true)
	require.NoError(t, err)
	assert.Equal(t, 1, marker.calls)
}

// The read path survives a failed acknowledgment write.
func TestClassifierAckFailureDoesNotFailRead(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)

	post := newPost("owner", now.Add(-time.Hour))
	post.Reactions = []model.Reaction{{UserID: "r1", ReactedAt: now.Add(-time.Minute)}}
	src := &fakeSource{kind: model.KindRequest, posts: []model.Post{post}}
	marker := &fakeMarker{err: errors.New("batch write failed")}

	feed, err := classifierAt(now, marker, src).BuildFeed(context.Background(), "owner", true)
	require.NoError(t, err)
	assert.Len(t, feed.Today, 1)
}

func TestClassifierSkipsSelfOnlyPostsOnAck(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)

	post := newPost("owner", now.Add(-time.Hour))
	post.Reactions = []model.Reaction{{UserID: "owner", ReactedAt: now.Add(-time.Minute)}}
	src := &fakeSource{kind: model.KindRequest, posts: []model.Post{post}}
	marker := &fakeMarker{}

	_, err := classifierAt(now, marker, src).BuildFeed(context.Background(), "owner", true)
	require.NoError(t, err)
	assert.Zero(t, marker.calls)
}
