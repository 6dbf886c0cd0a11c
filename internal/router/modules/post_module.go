package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blogfeed/internal/container"
	handlers "github.com/oksasatya/go-blogfeed/internal/interface/http"
	"github.com/oksasatya/go-blogfeed/internal/interface/middleware"
	"github.com/oksasatya/go-blogfeed/pkg/helpers"
)

// PostModule wires post reads and authenticated post/comment writes.
// Public: GET /posts/:id/
// Protected: POST /create/, POST /posts/:id/edit/, POST /posts/:id/comment/,
// POST /posts/:id/delete/
type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	rg.GET("/posts/:id/", m.Handler.View)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(rdb, m.JWT))
	auth.Use(middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/create/", m.Handler.Create)
		auth.POST("/posts/:id/edit/", m.Handler.Edit)
		auth.POST("/posts/:id/comment/", m.Handler.Comment)
		auth.POST("/posts/:id/delete/", m.Handler.Delete)
	}
}
