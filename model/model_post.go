package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post is one prayer request or testimony. Reactions are embedded in the
// post document; uniqueness per reactor uid is enforced by the guarded
// update in the reaction repository, not by the store itself.
type Post struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	AuthorID  string        `json:"authorId"  bson:"uid"`
	Kind      Kind          `json:"kind"      bson:"kind"`
	Body      string        `json:"body"      bson:"body"`
	Anonymous bool          `json:"anonymous" bson:"anonymous"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
	Reactions []Reaction    `json:"reactions" bson:"reactions"`
}

// Reaction is one viewer's prayer/praise on a post. At most one per uid
// per post. Viewed flips false to true exactly once.
type Reaction struct {
	UserID    string    `json:"userId"    bson:"uid"`
	ReactedAt time.Time `json:"reactedAt" bson:"reacted_at"`
	Viewed    bool      `json:"viewed"    bson:"viewed"`
}

// ReactedBy reports whether uid already reacted on this post.
func (p *Post) ReactedBy(uid string) bool {
	for _, r := range p.Reactions {
		if r.UserID == uid {
			return true
		}
	}
	return false
}

const MaxPostBodyLen = 1000
