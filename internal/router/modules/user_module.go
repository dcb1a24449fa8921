package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"user-admin-service/internal/container"
	"user-admin-service/internal/domain/entity"
	handlers "user-admin-service/internal/interface/http"
	"user-admin-service/internal/interface/middleware"
	"user-admin-service/pkg/helpers"
)

// UserModule wires the admin user lifecycle routes.
// All routes require an authenticated session; the lifecycle and search
// routes additionally require an administrator role.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))

	admin := auth.Group("/users")
	admin.Use(middleware.RequireRoles(entity.RoleSystemAdmin, entity.RoleUserAdmin))
	{
		admin.POST("", m.Handler.Register)
		admin.GET("/search", m.Handler.Search)
		admin.GET("/:userId", m.Handler.Get)
		admin.PUT("/:userId", m.Handler.Update)
		admin.DELETE("/:userId", m.Handler.Delete)
	}

	auth.POST("/profile/avatar", m.Handler.UploadAvatar)
}
