package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tweetapp/tweet-service/internal/api/http/handlers"
	"github.com/tweetapp/tweet-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Tweets         *handlers.TweetsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Post("/password/reset", cfg.Users.ResetPassword)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle)
	authProtected.Post("/logout", cfg.Users.Logout)
	authProtected.Post("/password/change", cfg.Users.ChangePassword)

	app.Get("/tweets", cfg.Tweets.ListAll)
	app.Get("/tweets/:email", cfg.Tweets.ListByAuthor)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/tweets", cfg.Tweets.Post)
	protected.Get("/users", cfg.Users.List)
}
