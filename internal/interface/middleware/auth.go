package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"user-admin-service/pkg/helpers"
	"user-admin-service/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUsernameKey  = "username"
	CtxUserRolesKey = "userRoles"
)

// Auth validates the access token cookie and requires an active session in
// Redis. On success the acting user's id, username, and role names are set
// on the Gin context.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			abort(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid access token", err.Error())
			return
		}

		key := "user:session:" + claims.UserID
		data, err := rdb.HGetAll(c.Request.Context(), key).Result()
		if err != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			abort(c, http.StatusUnauthorized, "session not found", nil)
			return
		}

		c.Set(CtxUserIDKey, data["user_id"])
		c.Set(CtxUsernameKey, data["username"])
		c.Set(CtxUserRolesKey, data["roles"])
		c.Next()
	}
}

// RequireRoles lets the request through only when the session holds at
// least one of the given role names.
func RequireRoles(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		held := strings.Split(c.GetString(CtxUserRolesKey), ",")
		for _, h := range held {
			for _, n := range names {
				if strings.TrimSpace(h) == n {
					c.Next()
					return
				}
			}
		}
		abort(c, http.StatusForbidden, "insufficient role", nil)
	}
}

func abort(c *gin.Context, status int, msg string, detail any) {
	resp := response.Error[any](c, status, msg, detail)
	c.AbortWithStatusJSON(resp.Status, resp)
}
