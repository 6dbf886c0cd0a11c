package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blogfeed/internal/container"
	handlers "github.com/oksasatya/go-blogfeed/internal/interface/http"
	"github.com/oksasatya/go-blogfeed/internal/interface/middleware"
	"github.com/oksasatya/go-blogfeed/pkg/helpers"
)

// FeedModule wires the read-side feed routes.
// Public: GET /, GET /group/:slug/, GET /profile/:username/
// Protected: GET /follow/
type FeedModule struct {
	Handler *handlers.FeedHandler
	JWT     *helpers.JWTManager
}

func NewFeedModule(h *handlers.FeedHandler, jwt *helpers.JWTManager) *FeedModule {
	return &FeedModule{Handler: h, JWT: jwt}
}

func (m *FeedModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	rg.GET("/", m.Handler.Index)
	rg.GET("/group/:slug/", m.Handler.GroupFeed)
	rg.GET("/profile/:username/", middleware.OptionalAuth(rdb, m.JWT), m.Handler.ProfileFeed)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(rdb, m.JWT))
	{
		auth.GET("/follow/", m.Handler.FollowFeed)
	}
}
