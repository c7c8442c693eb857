package routes

import (
	"github.com/gofiber/fiber/v2"

	"prayershare/internal/handlers"
	"prayershare/internal/middleware"
)

type Handlers struct {
	Auth          *handlers.AuthHandler
	Feed          *handlers.FeedHandler
	Posts         *handlers.PostHandler
	Reactions     *handlers.ReactionHandler
	Notifications *handlers.NotificationHandler
	Users         *handlers.UserHandler
	Feedback      *handlers.FeedbackHandler
	Files         *handlers.FileHandler
}

// Register wires every route. JWT runs globally (anonymous passes
// through); RequireAuth gates the identity-bound routes.
func Register(app *fiber.App, jwtSecret string, h Handlers) {
	app.Use(middleware.JWT(jwtSecret))
	authed := middleware.RequireAuth()

	app.Post("/auth/signup", h.Auth.Signup)
	app.Post("/auth/signin", h.Auth.Signin)

	app.Get("/whoami", authed, handlers.WhoAmI)

	app.Get("/feed", h.Feed.Feed)

	app.Post("/posts", authed, h.Posts.Create)
	app.Get("/posts/:kind/:postId", h.Posts.Get)
	app.Put("/posts/:kind/:postId", authed, h.Posts.Update)
	app.Delete("/posts/:kind/:postId", authed, h.Posts.Delete)

	app.Post("/posts/:kind/:postId/reactions", authed, h.Reactions.React)
	app.Delete("/posts/:kind/:postId/reactions", authed, h.Reactions.Unreact)
	app.Get("/posts/:kind/:postId/reactions/me", authed, h.Reactions.State)

	app.Get("/notifications", authed, h.Notifications.List)

	app.Get("/users/me", authed, h.Users.Me)
	app.Put("/users/me", authed, h.Users.UpdateMe)
	app.Delete("/users/me", authed, h.Users.DeleteMe)
	app.Post("/users/me/avatar", authed, h.Users.UploadAvatar)
	app.Get("/users/:userId", h.Users.Get)

	app.Post("/feedback", h.Feedback.Submit)

	app.Get("/files/:fileId", h.Files.Download)
}
