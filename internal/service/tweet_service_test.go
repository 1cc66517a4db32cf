package service

import (
	"context"
	"strings"
	"testing"

	"github.com/tweetapp/tweet-service/internal/domain"
	"github.com/tweetapp/tweet-service/internal/repository"
	apperrors "github.com/tweetapp/tweet-service/pkg/util/errorutil"
)

func newTweetService(repo repository.TweetRepository) *TweetService {
	return NewTweetService(testConfig(), TweetDependencies{TweetRepo: repo})
}

func author(email string) *domain.User {
	return &domain.User{ID: 1, Email: email, LoggedIn: true}
}

func TestPostTweet_Success(t *testing.T) {
	repo := repository.NewMemoryTweetRepository()
	svc := newTweetService(repo)

	tweet, err := svc.PostTweet(context.Background(), author("alice@example.com"), "hello")
	if err != nil {
		t.Fatalf("expected post to succeed, got %v", err)
	}
	if tweet.ID == 0 {
		t.Fatal("expected repository to assign an ID")
	}
	if tweet.CreatedAt.IsZero() {
		t.Fatal("expected repository to assign CreatedAt")
	}
	if tweet.TweetedBy != "alice@example.com" {
		t.Fatalf("author must come from the authenticated user, got %q", tweet.TweetedBy)
	}
}

func TestPostTweet_ValidationBoundaries(t *testing.T) {
	repo := repository.NewMemoryTweetRepository()
	svc := newTweetService(repo)
	ctx := context.Background()
	user := author("alice@example.com")

	if _, err := svc.PostTweet(ctx, user, strings.Repeat("a", 300)); err != nil {
		t.Fatalf("300 chars must be accepted, got %v", err)
	}
	if _, err := svc.PostTweet(ctx, user, strings.Repeat("a", 301)); apperrors.ValidationMessages(err) == nil {
		t.Fatalf("301 chars must be rejected with a validation error, got %v", err)
	}
	if _, err := svc.PostTweet(ctx, user, ""); apperrors.ValidationMessages(err) == nil {
		t.Fatalf("empty tweet must be rejected with a validation error, got %v", err)
	}

	tweets, _ := repo.ListAll(ctx)
	if len(tweets) != 1 {
		t.Fatalf("rejected tweets must not be persisted, found %d", len(tweets))
	}
}

func TestGetTweetsByEmail_FiltersAndOrders(t *testing.T) {
	repo := repository.NewMemoryTweetRepository()
	svc := newTweetService(repo)
	ctx := context.Background()

	alice := author("alice@example.com")
	bob := author("bob@example.com")

	for _, post := range []struct {
		user *domain.User
		text string
	}{
		{alice, "first"},
		{bob, "interleaved"},
		{alice, "second"},
		{alice, "third"},
	} {
		if _, err := svc.PostTweet(ctx, post.user, post.text); err != nil {
			t.Fatalf("post failed: %v", err)
		}
	}

	mine, err := svc.GetTweetsByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 3 {
		t.Fatalf("expected 3 tweets for alice, got %d", len(mine))
	}
	for i, want := range []string{"first", "second", "third"} {
		if mine[i].Value != want {
			t.Fatalf("expected %q at position %d, got %q", want, i, mine[i].Value)
		}
		if mine[i].TweetedBy != "alice@example.com" {
			t.Fatalf("foreign tweet leaked into author listing: %+v", mine[i])
		}
	}

	all, err := svc.GetAllTweets(ctx)
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected full superset of 4 tweets, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].ID < all[i-1].ID {
			t.Fatal("all-tweets listing must be in creation order")
		}
	}
}

func TestGetTweetsByEmail_EmptyForUnknownAuthor(t *testing.T) {
	repo := repository.NewMemoryTweetRepository()
	svc := newTweetService(repo)

	tweets, err := svc.GetTweetsByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("expected empty result, got error %v", err)
	}
	if len(tweets) != 0 {
		t.Fatalf("expected no tweets, got %d", len(tweets))
	}
}

// Full account-and-tweet walkthrough across both services.
func TestEndToEndScenario(t *testing.T) {
	userRepo := repository.NewMemoryUserRepository()
	tweetRepo := repository.NewMemoryTweetRepository()
	users := newUserService(userRepo)
	tweets := newTweetService(tweetRepo)
	ctx := context.Background()

	input := validInput()
	if _, err := users.Register(ctx, input); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := users.Login(ctx, "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !user.LoggedIn {
		t.Fatal("login must mark the user logged in")
	}

	if _, err := tweets.PostTweet(ctx, user, "hello"); err != nil {
		t.Fatalf("post: %v", err)
	}
	mine, err := tweets.GetTweetsByEmail(ctx, "alice@example.com")
	if err != nil || len(mine) != 1 || mine[0].Value != "hello" {
		t.Fatalf("expected exactly one tweet %q, got %v (err %v)", "hello", mine, err)
	}

	if err := users.ChangePassword(ctx, user, "pw123", "newpw1", "newpw1"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := users.CheckUserCredentials(ctx, "alice@example.com", "pw123"); err == nil {
		t.Fatal("old password must no longer authenticate")
	}
	if _, err := users.CheckUserCredentials(ctx, "alice@example.com", "newpw1"); err != nil {
		t.Fatalf("new password must authenticate: %v", err)
	}
}
