package repository

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tweetapp/tweet-service/internal/domain"
)

// MemoryUserRepository is an in-memory UserRepository. It backs tests and
// DSN-less development runs, and mirrors the Postgres behavior: insertion
// order listing, pgx.ErrNoRows for misses, ErrDuplicateEmail on conflicts.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  []domain.User
}

var _ UserRepository = (*MemoryUserRepository)(nil)

// NewMemoryUserRepository creates an empty store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1}
}

func (r *MemoryUserRepository) Insert(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	now := time.Now()
	user.ID = r.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	r.nextID++
	r.users = append(r.users, *user)
	return nil
}

func (r *MemoryUserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == user.ID {
			user.UpdatedAt = time.Now()
			r.users[i] = *user
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *MemoryUserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, len(r.users))
	copy(users, r.users)
	return users, nil
}

// MemoryTweetRepository is an in-memory TweetRepository.
type MemoryTweetRepository struct {
	mu     sync.RWMutex
	nextID int64
	tweets []domain.Tweet
}

var _ TweetRepository = (*MemoryTweetRepository)(nil)

// NewMemoryTweetRepository creates an empty store.
func NewMemoryTweetRepository() *MemoryTweetRepository {
	return &MemoryTweetRepository{nextID: 1}
}

func (r *MemoryTweetRepository) Insert(_ context.Context, tweet *domain.Tweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tweet.ID = r.nextID
	tweet.CreatedAt = time.Now()
	r.nextID++
	r.tweets = append(r.tweets, *tweet)
	return nil
}

func (r *MemoryTweetRepository) ListByAuthor(_ context.Context, email string) ([]domain.Tweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tweets []domain.Tweet
	for _, tweet := range r.tweets {
		if tweet.TweetedBy == email {
			tweets = append(tweets, tweet)
		}
	}
	return tweets, nil
}

func (r *MemoryTweetRepository) ListAll(_ context.Context) ([]domain.Tweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tweets := make([]domain.Tweet, len(r.tweets))
	copy(tweets, r.tweets)
	return tweets, nil
}
