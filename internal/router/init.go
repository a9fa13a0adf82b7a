package router

import (
	"github.com/Subh211/weave-backend/internal/application"
	"github.com/Subh211/weave-backend/internal/container"
	pginfra "github.com/Subh211/weave-backend/internal/infrastructure/postgres"
	handlers "github.com/Subh211/weave-backend/internal/interface/http"
	"github.com/Subh211/weave-backend/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	friends := pginfra.NewFriendRepository(pool)
	posts := pginfra.NewPostRepository(pool)
	saved := pginfra.NewSavedPostRepository(pool)
	notifications := pginfra.NewNotificationRepository(pool)

	userSvc := application.NewUserService(
		users,
		container.GetJWT(),
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetRedis(),
		logger,
		container.GetES(),
		cfg.ESUsersIndex,
		container.GetRabbitPub(),
		cfg.AppName,
	)
	friendSvc := application.NewFriendService(users, friends, notifications, container.GetRabbitPub(), logger, cfg.AppName)
	postSvc := application.NewPostService(users, posts, container.GetGCS(), cfg.GCSBucket, logger)
	savedSvc := application.NewSavedPostService(users, posts, saved, logger)
	feedSvc := application.NewFeedService(users, friends, posts, logger, cfg.FeedTimeout, cfg.FeedFetchConcurrency)

	userHandler := handlers.NewUserHandler(userSvc, container.GetJWT(), logger, cfg.CookieDomain, cfg.CookieSecure)
	friendHandler := handlers.NewFriendHandler(friendSvc, logger)
	postHandler := handlers.NewPostHandler(postSvc, logger)
	savedHandler := handlers.NewSavedPostHandler(savedSvc, logger)
	feedHandler := handlers.NewFeedHandler(feedSvc, logger)

	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewFriendModule(friendHandler, container.GetJWT()))
	r.Add(modules.NewPostModule(postHandler, container.GetJWT()))
	r.Add(modules.NewSavedModule(savedHandler, container.GetJWT()))
	r.Add(modules.NewFeedModule(feedHandler, container.GetJWT()))

	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
