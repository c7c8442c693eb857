package dto

import (
	"time"

	"prayershare/model"
	"prayershare/services"
)

type Notification struct {
	PostID    string        `json:"postId"`
	PostKind  model.Kind    `json:"postKind"`
	Verb      string        `json:"verb"`
	Reactor   model.Profile `json:"reactor"`
	ReactedAt time.Time     `json:"reactedAt"`
	Viewed    bool          `json:"viewed"`
}

type NotificationFeedResponse struct {
	Today     []Notification `json:"today"`
	Yesterday []Notification `json:"yesterday"`
	Older     []Notification `json:"older"`
}

func NewNotificationFeedResponse(feed services.NotificationFeed) NotificationFeedResponse {
	return NotificationFeedResponse{
		Today:     newNotifications(feed.Today),
		Yesterday: newNotifications(feed.Yesterday),
		Older:     newNotifications(feed.Older),
	}
}

func newNotifications(ns []model.Notification) []Notification {
	out := make([]Notification, len(ns))
	for i, n := range ns {
		out[i] = Notification{
			PostID:    n.PostID.Hex(),
			PostKind:  n.PostKind,
			Verb:      n.PostKind.Info().Verb,
			Reactor:   n.Reactor,
			ReactedAt: n.ReactedAt,
			Viewed:    n.Viewed,
		}
	}
	return out
}
