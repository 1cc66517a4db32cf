package domain

import "time"

// Tweet is an immutable, author-attributed text record. Tweets are
// append-only: no update or delete operation exists anywhere in the
// service layer. TweetedBy holds the author's email; CreatedAt is
// assigned by the repository at insert time, never by the caller.
type Tweet struct {
	ID        int64
	Value     string
	TweetedBy string
	CreatedAt time.Time
}
