package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tweetapp/tweet-service/internal/events"
)

// NotificationService logs domain events as they happen. It is the single
// subscriber the worker registers; real delivery channels would hang off
// these handlers.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventUserLoggedIn, n.handleLoginStateChanged)
	n.dispatcher.Subscribe(events.EventUserLoggedOut, n.handleLoginStateChanged)
	n.dispatcher.Subscribe(events.EventTweetPosted, n.handleTweetPosted)
}

func (n *NotificationService) handleUserRegistered(_ context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.String("email", event.Actor), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleLoginStateChanged(_ context.Context, event events.Event) error {
	n.logger.Info(string(event.Type), zap.String("email", event.Actor))
	return nil
}

func (n *NotificationService) handleTweetPosted(_ context.Context, event events.Event) error {
	n.logger.Info("TweetPosted", zap.String("email", event.Actor), zap.Any("payload", event.Payload))
	return nil
}
