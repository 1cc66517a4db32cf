package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tweetapp/tweet-service/internal/cache"
	"github.com/tweetapp/tweet-service/internal/config"
	"github.com/tweetapp/tweet-service/internal/domain"
	"github.com/tweetapp/tweet-service/internal/events"
	"github.com/tweetapp/tweet-service/internal/repository"
	"github.com/tweetapp/tweet-service/internal/validation"
	apperrors "github.com/tweetapp/tweet-service/pkg/util/errorutil"
)

const previewLength = 40

// TweetService owns the tweet lifecycle. Tweets are append-only: this
// service exposes no update or delete.
type TweetService struct {
	tweets     repository.TweetRepository
	timeline   *cache.TimelineCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
	policy     validation.Policy
}

// TweetDependencies bundles collaborators for the tweet service.
type TweetDependencies struct {
	TweetRepo  repository.TweetRepository
	Timeline   *cache.TimelineCache
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewTweetService builds the service.
func NewTweetService(cfg config.Config, deps TweetDependencies) *TweetService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TweetService{
		tweets:     deps.TweetRepo,
		timeline:   deps.Timeline,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		policy: validation.Policy{
			PasswordMinLength: cfg.Validation.PasswordMinLength,
			TweetMaxLength:    cfg.Validation.TweetMaxLength,
		},
	}
}

// PostTweet validates and persists a tweet authored by the given user.
// The repository assigns ID and CreatedAt. The author must be the
// authenticated user supplied by the caller; the email foreign key is
// taken from it, never from raw input.
func (s *TweetService) PostTweet(ctx context.Context, user *domain.User, text string) (*domain.Tweet, error) {
	if violations := validation.ValidateTweet(s.policy, text); len(violations) > 0 {
		return nil, apperrors.NewValidationError(violations)
	}

	tweet := &domain.Tweet{
		Value:     strings.TrimSpace(text),
		TweetedBy: user.Email,
	}
	if err := s.tweets.Insert(ctx, tweet); err != nil {
		s.logger.Error("unable to save tweet", zap.Error(err))
		return nil, apperrors.NewInternalError(err)
	}

	s.timeline.Invalidate(ctx)

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventTweetPosted,
			Actor:     user.Email,
			Timestamp: time.Now(),
			Payload: events.TweetPostedPayload{
				TweetID: tweet.ID,
				Preview: preview(tweet.Value),
			},
		})
	}
	return tweet, nil
}

// GetTweetsByEmail returns the author's tweets in creation order.
func (s *TweetService) GetTweetsByEmail(ctx context.Context, email string) ([]domain.Tweet, error) {
	tweets, err := s.tweets.ListByAuthor(ctx, email)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tweets, nil
}

// GetAllTweets returns every tweet in creation order, served from the
// timeline cache when fresh.
func (s *TweetService) GetAllTweets(ctx context.Context) ([]domain.Tweet, error) {
	if tweets, ok := s.timeline.Get(ctx); ok {
		return tweets, nil
	}
	tweets, err := s.tweets.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.timeline.Set(ctx, tweets)
	return tweets, nil
}

func preview(value string) string {
	runes := []rune(value)
	if len(runes) <= previewLength {
		return value
	}
	return string(runes[:previewLength])
}
