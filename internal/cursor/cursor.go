package cursor

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Position marks the last-seen feed item. Pagination resumes strictly
// after it: created_at descending, _id ascending on ties.
type Position struct {
	CreatedAt time.Time
	ID        bson.ObjectID
}

type payload struct {
	CreatedAt int64  `json:"createdAt"`
	ID        string `json:"id"`
}

// Encode turns a position into an opaque token.
func Encode(p Position) string {
	b, _ := json.Marshal(payload{
		CreatedAt: p.CreatedAt.UnixMilli(),
		ID:        p.ID.Hex(),
	})
	return base64.StdEncoding.EncodeToString(b)
}

// Decode parses a token produced by Encode.
func Decode(s string) (Position, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Position{}, fmt.Errorf("invalid cursor: %w", err)
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Position{}, fmt.Errorf("invalid cursor: %w", err)
	}

	oid, err := bson.ObjectIDFromHex(p.ID)
	if err != nil {
		return Position{}, fmt.Errorf("invalid cursor: %w", err)
	}

	return Position{CreatedAt: time.UnixMilli(p.CreatedAt).UTC(), ID: oid}, nil
}

// After reports whether item (createdAt, id) sorts strictly after the
// position in feed order. Times are compared at millisecond precision,
// matching what Encode preserves, so a position built from an in-memory
// post and one round-tripped through a token agree.
func (p Position) After(createdAt time.Time, id bson.ObjectID) bool {
	createdAt = createdAt.Truncate(time.Millisecond)
	posAt := p.CreatedAt.Truncate(time.Millisecond)
	if createdAt.Before(posAt) {
		return true
	}
	if createdAt.Equal(posAt) {
		return id.Hex() > p.ID.Hex()
	}
	return false
}
