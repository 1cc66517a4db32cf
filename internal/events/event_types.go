package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserLoggedIn   EventType = "user_logged_in"
	EventUserLoggedOut  EventType = "user_logged_out"
	EventTweetPosted    EventType = "tweet_posted"
)

// Event represents a domain event emitted by services. Actor holds the
// email of the account the event concerns.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
}

// TweetPostedPayload payload.
type TweetPostedPayload struct {
	TweetID int64  `json:"tweet_id"`
	Preview string `json:"preview"`
}
