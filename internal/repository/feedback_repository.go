package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// mailDocument is the contract with the server-side mail relay: a
// well-formed document written to the mail collection gets sent as an
// email by a trigger outside this codebase.
type mailDocument struct {
	ID      string    `bson:"_id"`
	To      []string  `bson:"to"`
	ReplyTo string    `bson:"reply_to,omitempty"`
	Message mailBody  `bson:"message"`
	Created time.Time `bson:"created_at"`
}

type mailBody struct {
	Subject string `bson:"subject"`
	Text    string `bson:"text"`
}

type FeedbackRepository struct {
	col *mongo.Collection
	to  string
}

func NewFeedbackRepository(db *mongo.Database, to string) *FeedbackRepository {
	return &FeedbackRepository{col: db.Collection("mail"), to: to}
}

// Submit queues one feedback email.
func (r *FeedbackRepository) Submit(ctx context.Context, subject, text, replyTo string) error {
	doc := mailDocument{
		ID:      uuid.NewString(),
		To:      []string{r.to},
		ReplyTo: replyTo,
		Message: mailBody{Subject: subject, Text: text},
		Created: time.Now().UTC(),
	}
	_, err := r.col.InsertOne(ctx, doc)
	return err
}
