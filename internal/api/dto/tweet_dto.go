package dto

import (
	"time"

	"github.com/tweetapp/tweet-service/internal/domain"
)

// PostTweetRequest payload for posting a tweet.
type PostTweetRequest struct {
	Value string `json:"value"`
}

// TweetResponse is the public view of a tweet.
type TweetResponse struct {
	ID        int64     `json:"id"`
	Value     string    `json:"value"`
	TweetedBy string    `json:"tweeted_by"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTweetResponse maps a domain tweet.
func NewTweetResponse(tweet domain.Tweet) TweetResponse {
	return TweetResponse{
		ID:        tweet.ID,
		Value:     tweet.Value,
		TweetedBy: tweet.TweetedBy,
		CreatedAt: tweet.CreatedAt,
	}
}

// NewTweetListResponse maps an ordered tweet slice, preserving order.
func NewTweetListResponse(tweets []domain.Tweet) []TweetResponse {
	out := make([]TweetResponse, 0, len(tweets))
	for _, tweet := range tweets {
		out = append(out, NewTweetResponse(tweet))
	}
	return out
}
