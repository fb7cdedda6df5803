package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
// The event type doubles as the topic name.
type EventType string

const (
	EventUpdateRatings EventType = "update-ratings"
)

// MatchEvent is the payload of every match related event.
type MatchEvent struct {
	MatchID string `msgpack:"match_id"`
	DryRun  bool   `msgpack:"dry_run"`
}
