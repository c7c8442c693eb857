package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"prayershare/internal/repository"
	"prayershare/model"
)

// ReactionStore is the persistence contract behind the ledger, satisfied
// by repository.ReactionRepository.
type ReactionStore interface {
	Add(ctx context.Context, kind model.Kind, postID bson.ObjectID, r model.Reaction) (bool, error)
	Remove(ctx context.Context, kind model.Kind, postID bson.ObjectID, userID string) (bool, error)
	Exists(ctx context.Context, kind model.Kind, postID bson.ObjectID, userID string) (bool, error)
	MarkViewed(ctx context.Context, kind model.Kind, postIDs []bson.ObjectID, ownerID string) (int64, error)
}

// Ledger tracks who prayed/praised on which post. All operations are
// idempotent; transient store failures surface as ErrLedgerUnavailable.
type Ledger struct {
	store ReactionStore
	now   func() time.Time
}

func NewLedger(store ReactionStore) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// React records a reaction for userID. Reacting twice leaves exactly one
// entry and is not an error.
func (l *Ledger) React(ctx context.Context, kind model.Kind, postID bson.ObjectID, userID string) error {
	r := model.Reaction{
		UserID:    userID,
		ReactedAt: l.now().UTC(),
		Viewed:    false,
	}
	_, err := l.store.Add(ctx, kind, postID, r)
	if errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}
	return nil
}

// Unreact removes userID's reaction. Absent is a no-op.
func (l *Ledger) Unreact(ctx context.Context, kind model.Kind, postID bson.ObjectID, userID string) error {
	if _, err := l.store.Remove(ctx, kind, postID, userID); err != nil {
		return fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}
	return nil
}

// HasReacted is the membership test.
func (l *Ledger) HasReacted(ctx context.Context, kind model.Kind, postID bson.ObjectID, userID string) (bool, error) {
	ok, err := l.store.Exists(ctx, kind, postID, userID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}
	return ok, nil
}

// MarkViewed flips unviewed reactions on the owner's listed posts. The
// flag is advisory; at-least-once application is acceptable.
func (l *Ledger) MarkViewed(ctx context.Context, kind model.Kind, postIDs []bson.ObjectID, ownerID string) (int64, error) {
	n, err := l.store.MarkViewed(ctx, kind, postIDs, ownerID)
	if err != nil {
		return n, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}
	return n, nil
}
