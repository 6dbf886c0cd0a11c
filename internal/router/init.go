package router

import (
	"github.com/oksasatya/go-blogfeed/internal/application"
	"github.com/oksasatya/go-blogfeed/internal/container"
	pginfra "github.com/oksasatya/go-blogfeed/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-blogfeed/internal/interface/http"
	"github.com/oksasatya/go-blogfeed/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and registers it. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	groups := pginfra.NewGroupRepository(pool)
	posts := pginfra.NewPostRepository(pool)
	comments := pginfra.NewCommentRepository(pool)
	follows := pginfra.NewFollowRepository(pool)

	feedSvc := application.NewFeedService(posts, users, groups, follows, container.GetPageCache(), logger, cfg.PageLimit, cfg.FeedCacheTTL)
	followSvc := application.NewFollowService(users, follows, logger)
	postSvc := application.NewPostService(posts, comments, groups, container.GetGCS(), cfg.GCSBucket, logger)
	authSvc := application.NewAuthService(users, container.GetJWT(), container.GetRedis(), logger)

	r.Add(modules.NewFeedModule(handlers.NewFeedHandler(feedSvc, followSvc, logger), container.GetJWT()))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), container.GetJWT()))
	r.Add(modules.NewFollowModule(handlers.NewFollowHandler(followSvc, logger), container.GetJWT()))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure), container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
