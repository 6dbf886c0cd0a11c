package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blogfeed/internal/container"
	handlers "github.com/oksasatya/go-blogfeed/internal/interface/http"
	"github.com/oksasatya/go-blogfeed/internal/interface/middleware"
	"github.com/oksasatya/go-blogfeed/pkg/helpers"
)

// AuthModule wires the identity collaborator's routes.
// Public: POST /auth/register, POST /auth/login, POST /auth/refresh
// Protected: POST /auth/logout
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	registerLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIP(), nil)
	loginLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIP(), nil)
	refreshLimiter := middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByIP(), nil)

	grp := rg.Group("/auth")
	grp.POST("/register", registerLimiter, m.Handler.Register)
	grp.POST("/login", loginLimiter, m.Handler.Login)
	grp.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	auth := grp.Group("/")
	auth.Use(middleware.Auth(rdb, m.JWT))
	{
		auth.POST("/logout", m.Handler.Logout)
	}
}
