package cursor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestCursorRoundTrip(t *testing.T) {
	pos := Position{
		CreatedAt: time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC),
		ID:        bson.NewObjectID(),
	}

	decoded, err := Decode(Encode(pos))
	require.NoError(t, err)
	assert.True(t, decoded.CreatedAt.Equal(pos.CreatedAt))
	assert.Equal(t, pos.ID, decoded.ID)
}

func TestCursorRejectsGarbage(t *testing.T) {
	for _, token := range []string{
		"not-base64!!",
		"aGVsbG8=",     // valid base64, not JSON
		"e30=",         // JSON, missing id
	} {
		_, err := Decode(token)
		assert.Errorf(t, err, "token %q should be rejected", token)
	}
}

func TestPositionAfter(t *testing.T) {
	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	lowID, err := bson.ObjectIDFromHex("650000000000000000000001")
	require.NoError(t, err)
	highID, err := bson.ObjectIDFromHex("650000000000000000000002")
	require.NoError(t, err)

	pos := Position{CreatedAt: base, ID: lowID}

	// Older timestamps sort after in a descending feed.
	assert.True(t, pos.After(base.Add(-time.Minute), highID))
	assert.False(t, pos.After(base.Add(time.Minute), highID))

	// Ties break on id ascending.
	assert.True(t, pos.After(base, highID))
	assert.False(t, pos.After(base, lowID))
}

// Sub-millisecond offsets must not shift the resume point: a position
// built from an in-memory post and one round-tripped through a token
// make the same comparisons.
func TestPositionAfterMillisecondPrecision(t *testing.T) {
	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	lowID, err := bson.ObjectIDFromHex("650000000000000000000001")
	require.NoError(t, err)
	highID, err := bson.ObjectIDFromHex("650000000000000000000002")
	require.NoError(t, err)

	pos := Position{CreatedAt: base.Add(200 * time.Microsecond), ID: lowID}
	roundTripped, err := Decode(Encode(pos))
	require.NoError(t, err)

	// Same millisecond, different sub-millisecond offset: a tie, so the
	// id decides, for both forms of the position.
	item := base.Add(700 * time.Microsecond)
	assert.True(t, pos.After(item, highID))
	assert.False(t, pos.After(item, lowID))
	assert.Equal(t, pos.After(item, highID), roundTripped.After(item, highID))
	assert.Equal(t, pos.After(item, lowID), roundTripped.After(item, lowID))
}
