package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/tweetapp/tweet-service/internal/api/dto"
	"github.com/tweetapp/tweet-service/internal/auth"
	"github.com/tweetapp/tweet-service/internal/service"
	apperrors "github.com/tweetapp/tweet-service/pkg/util/errorutil"
)

// TweetsHandler exposes the tweet endpoints.
type TweetsHandler struct {
	tweets *service.TweetService
}

// NewTweetsHandler constructs handler.
func NewTweetsHandler(tweetService *service.TweetService) *TweetsHandler {
	return &TweetsHandler{tweets: tweetService}
}

// Post handles POST /tweets for the authenticated user.
func (h *TweetsHandler) Post(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.PostTweetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	tweet, err := h.tweets.PostTweet(c.UserContext(), user, req.Value)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"tweet": dto.NewTweetResponse(*tweet)},
	})
}

// ListAll handles GET /tweets.
func (h *TweetsHandler) ListAll(c *fiber.Ctx) error {
	tweets, err := h.tweets.GetAllTweets(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"tweets": dto.NewTweetListResponse(tweets)}})
}

// ListByAuthor handles GET /tweets/:email.
func (h *TweetsHandler) ListByAuthor(c *fiber.Ctx) error {
	email := c.Params("email")
	tweets, err := h.tweets.GetTweetsByEmail(c.UserContext(), email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"tweets": dto.NewTweetListResponse(tweets)}})
}
