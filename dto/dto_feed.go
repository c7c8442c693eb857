package dto

import (
	"time"

	"prayershare/model"
	"prayershare/services"
)

// FeedItem is one post joined with its author, as rendered to clients.
type FeedItem struct {
	ID            string         `json:"id"`
	Kind          model.Kind     `json:"kind"`
	KindInfo      model.KindInfo `json:"kindInfo"`
	Body          string         `json:"body"`
	Anonymous     bool           `json:"anonymous"`
	CreatedAt     time.Time      `json:"createdAt"`
	ReactionCount int            `json:"reactionCount"`
	ViewerReacted bool           `json:"viewerReacted"`
	Author        model.Profile  `json:"author"`
}

type FeedResponse struct {
	Items      []FeedItem `json:"items"`
	NextCursor string     `json:"nextCursor,omitempty"`
	HasMore    bool       `json:"hasMore"`
}

// NewFeedItem maps an aggregated item, computing the viewer's reaction
// state from the embedded array.
func NewFeedItem(item services.FeedItem, viewerID string) FeedItem {
	return FeedItem{
		ID:            item.Post.ID.Hex(),
		Kind:          item.Post.Kind,
		KindInfo:      item.Post.Kind.Info(),
		Body:          item.Post.Body,
		Anonymous:     item.Post.Anonymous,
		CreatedAt:     item.Post.CreatedAt,
		ReactionCount: len(item.Post.Reactions),
		ViewerReacted: viewerID != "" && item.Post.ReactedBy(viewerID),
		Author:        item.Author,
	}
}

// NewLiveFeedResponse renders a live snapshot. There is no cursor; the
// snapshot is always the whole current window.
func NewLiveFeedResponse(items []services.FeedItem, viewerID string) FeedResponse {
	out := make([]FeedItem, len(items))
	for i, it := range items {
		out[i] = NewFeedItem(it, viewerID)
	}
	return FeedResponse{Items: out}
}

func NewFeedResponse(page services.FeedPage, viewerID string) FeedResponse {
	items := make([]FeedItem, len(page.Items))
	for i, it := range page.Items {
		items[i] = NewFeedItem(it, viewerID)
	}
	return FeedResponse{Items: items, NextCursor: page.NextCursor, HasMore: page.HasMore}
}
