package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"user-admin-service/internal/container"
	handlers "user-admin-service/internal/interface/http"
	"user-admin-service/internal/interface/middleware"
	"user-admin-service/pkg/helpers"
)

// AuthModule wires login/refresh/logout.
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP())

	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/refresh", refreshLimiter, m.Handler.Refresh)

	authed := rg.Group("/auth")
	authed.Use(middleware.Auth(container.GetRedis(), m.JWT))
	authed.POST("/logout", m.Handler.Logout)
}
