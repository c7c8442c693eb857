package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Notification is a read-time projection of one Reaction addressed to the
// parent post's author. It is never stored.
type Notification struct {
	PostID    bson.ObjectID `json:"postId"`
	PostKind  Kind          `json:"postKind"`
	ReactorID string        `json:"reactorId"`
	Reactor   Profile       `json:"reactor"`
	ReactedAt time.Time     `json:"reactedAt"`
	Viewed    bool          `json:"viewed"`
}
