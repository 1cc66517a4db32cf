package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tweetapp/tweet-service/internal/domain"
)

// TweetRepository is the persistence gateway for tweets. Tweets are
// append-only; both listing operations return creation order, oldest first.
type TweetRepository interface {
	Insert(ctx context.Context, tweet *domain.Tweet) error
	ListByAuthor(ctx context.Context, email string) ([]domain.Tweet, error)
	ListAll(ctx context.Context) ([]domain.Tweet, error)
}

type tweetRepository struct {
	pool *pgxpool.Pool
}

// NewTweetRepository returns a Postgres-backed implementation.
func NewTweetRepository(pool *pgxpool.Pool) TweetRepository {
	return &tweetRepository{pool: pool}
}

func (r *tweetRepository) Insert(ctx context.Context, tweet *domain.Tweet) error {
	const query = `
        INSERT INTO tweets (value, tweeted_by)
        VALUES ($1, $2)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		tweet.Value,
		tweet.TweetedBy,
	).Scan(&tweet.ID, &tweet.CreatedAt)
}

func (r *tweetRepository) ListByAuthor(ctx context.Context, email string) ([]domain.Tweet, error) {
	const query = `
        SELECT id, value, tweeted_by, created_at
        FROM tweets WHERE tweeted_by=$1 ORDER BY id`
	return r.queryTweets(ctx, query, email)
}

func (r *tweetRepository) ListAll(ctx context.Context) ([]domain.Tweet, error) {
	const query = `
        SELECT id, value, tweeted_by, created_at
        FROM tweets ORDER BY id`
	return r.queryTweets(ctx, query)
}

func (r *tweetRepository) queryTweets(ctx context.Context, query string, args ...any) ([]domain.Tweet, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tweets []domain.Tweet
	for rows.Next() {
		var tweet domain.Tweet
		if err := rows.Scan(&tweet.ID, &tweet.Value, &tweet.TweetedBy, &tweet.CreatedAt); err != nil {
			return nil, err
		}
		tweets = append(tweets, tweet)
	}
	return tweets, rows.Err()
}
