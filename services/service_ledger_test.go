package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"prayershare/model"
)

func TestLedgerReactIsIdempotent(t *testing.T) {
	store := newFakeReactionStore()
	ledger := NewLedger(store)
	postID := bson.NewObjectID()

	require.NoError(t, ledger.React(context.Background(), model.KindRequest, postID, "alice"))
	require.NoError(t, ledger.React(context.Background(), model.KindRequest, postID, "alice"))

	assert.Equal(t, 1, store.count(postID, "alice"))
}

func TestLedgerToggleIsSymmetric(t *testing.T) {
	store := newFakeReactionStore()
	ledger := NewLedger(store)
	postID := bson.NewObjectID()

	require.NoError(t, ledger.React(context.Background(), model.KindRequest, postID, "bob"))
	require.NoError(t, ledger.Unreact(context.Background(), model.KindRequest, postID, "bob"))

	assert.Equal(t, 0, store.count(postID, "bob"))

	reacted, err := ledger.HasReacted(context.Background(), model.KindRequest, postID, "bob")
	require.NoError(t, err)
	assert.False(t, reacted)
}

func TestLedgerUnreactAbsentIsNoop(t *testing.T) {
	store := newFakeReactionStore()
	ledger := NewLedger(store)

	err := ledger.Unreact(context.Background(), model.KindRequest, bson.NewObjectID(), "carol")
	assert.NoError(t, err)
}

func TestLedgerWrapsStoreFailures(t *testing.T) {
	store := newFakeReactionStore()
	store.failWith = errors.New("connection reset")
	ledger := NewLedger(store)
	postID := bson.NewObjectID()

	err := ledger.React(context.Background(), model.KindRequest, postID, "dave")
	assert.ErrorIs(t, err, ErrLedgerUnavailable)

	err = ledger.Unreact(context.Background(), model.KindRequest, postID, "dave")
	assert.ErrorIs(t, err, ErrLedgerUnavailable)

	_, err = ledger.HasReacted(context.Background(), model.KindRequest, postID, "dave")
	assert.ErrorIs(t, err, ErrLedgerUnavailable)
}

func TestLedgerMarkViewedIsMonotonic(t *testing.T) {
	store := newFakeReactionStore()
	ledger := NewLedger(store)
	ledger.now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }
	postID := bson.NewObjectID()

	require.NoError(t, ledger.React(context.Background(), model.KindRequest, postID, "erin"))

	n, err := ledger.MarkViewed(context.Background(), model.KindRequest, []bson.ObjectID{postID}, "owner")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// Already-viewed entries are untouched on a second pass.
	n, err = ledger.MarkViewed(context.Background(), model.KindRequest, []bson.ObjectID{postID}, "owner")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
