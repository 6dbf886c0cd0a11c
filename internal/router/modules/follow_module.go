package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blogfeed/internal/container"
	handlers "github.com/oksasatya/go-blogfeed/internal/interface/http"
	"github.com/oksasatya/go-blogfeed/internal/interface/middleware"
	"github.com/oksasatya/go-blogfeed/pkg/helpers"
)

// FollowModule wires the follow/unfollow writes, all authenticated.
type FollowModule struct {
	Handler *handlers.FollowHandler
	JWT     *helpers.JWTManager
}

func NewFollowModule(h *handlers.FollowHandler, jwt *helpers.JWTManager) *FollowModule {
	return &FollowModule{Handler: h, JWT: jwt}
}

func (m *FollowModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	auth := rg.Group("/")
	auth.Use(middleware.Auth(rdb, m.JWT))
	auth.Use(middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/profile/:username/follow/", m.Handler.Follow)
		auth.POST("/profile/:username/unfollow/", m.Handler.Unfollow)
	}
}
