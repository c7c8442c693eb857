package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	"prayershare/configs"
	_ "prayershare/docs"
	"prayershare/dto"
	"prayershare/internal/handlers"
	"prayershare/internal/logging"
	"prayershare/internal/profilecache"
	"prayershare/internal/repository"
	"prayershare/internal/routes"
	"prayershare/internal/storage"
	"prayershare/model"
	"prayershare/services"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("logger: ", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	client, err := configs.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("mongo connect failed", zap.Error(err))
	}
	defer configs.DisconnectMongo(ctx, client)
	logger.Info("connected to mongodb", zap.String("db", cfg.DBName))

	db := client.Database(cfg.DBName)

	// --- Repositories ---
	postRepos := make([]*repository.PostRepository, 0, len(model.AllKinds))
	for _, k := range model.AllKinds {
		postRepos = append(postRepos, repository.NewPostRepository(db, k))
	}
	reactions := repository.NewReactionRepository(db)
	users := repository.NewUserRepository(db)
	feedback := repository.NewFeedbackRepository(db, cfg.FeedbackTo)
	avatars := storage.NewAvatarStore(db)

	idxCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	for _, r := range postRepos {
		if err := r.EnsureIndexes(idxCtx); err != nil {
			logger.Warn("index setup failed", zap.String("kind", string(r.Kind())), zap.Error(err))
		}
	}
	if err := users.EnsureIndexes(idxCtx); err != nil {
		logger.Warn("index setup failed", zap.String("collection", "users"), zap.Error(err))
	}
	cancel()

	// --- Services ---
	profiles := profilecache.New(users, 1024, 5*time.Minute, logger)
	ledger := services.NewLedger(reactions)
	posts := services.NewPosts(postRepos)
	auth := services.NewAuth(users, cfg.JWTSecret, cfg.TokenTTL)

	feedSources := make([]services.PostSource, len(postRepos))
	notifSources := make([]services.AuthoredLister, len(postRepos))
	for i, r := range postRepos {
		feedSources[i] = r
		notifSources[i] = r
	}
	classifier := services.NewClassifier(notifSources, ledger, profiles, logger)

	// --- HTTP ---
	app := fiber.New(fiber.Config{
		AppName:      "prayershare",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
	app.Use(logging.RequestLogger(logger))
	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, cfg.JWTSecret, routes.Handlers{
		Auth:          &handlers.AuthHandler{Auth: auth},
		Feed:          &handlers.FeedHandler{Sources: feedSources, Profiles: profiles, PageSize: cfg.PageSize},
		Posts:         &handlers.PostHandler{Posts: posts, Profiles: profiles},
		Reactions:     &handlers.ReactionHandler{Ledger: ledger},
		Notifications: &handlers.NotificationHandler{Classifier: classifier},
		Users:         &handlers.UserHandler{Users: users, Profiles: profiles, Avatars: avatars},
		Feedback:      &handlers.FeedbackHandler{Feedback: feedback},
		Files:         &handlers.FileHandler{Avatars: avatars},
	})

	// Optional change-stream-backed view of the home feed, refreshed as
	// posts land. Requires a replica set; off by default.
	if cfg.LiveDebug {
		watchables := make([]services.WatchableSource, len(postRepos))
		for i, r := range postRepos {
			watchables[i] = r
		}
		live := services.NewLiveFeed(watchables, profiles, "",
			services.FeedFilter{IncludeAnonymous: true}, cfg.PageSize, logger)
		if err := live.Start(ctx); err != nil {
			logger.Warn("live feed unavailable", zap.Error(err))
		} else {
			defer live.Close()
			app.Get("/debug/feed", func(c *fiber.Ctx) error {
				return c.JSON(dto.NewLiveFeedResponse(live.Snapshot(), ""))
			})
		}
	}

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
