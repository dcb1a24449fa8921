package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"user-admin-service/internal/domain/entity"
)

func roleRouter(roles string, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", func(c *gin.Context) {
		c.Set(CtxUserRolesKey, roles)
	}, guard, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireRoles(t *testing.T) {
	guard := RequireRoles(entity.RoleSystemAdmin, entity.RoleUserAdmin)

	tests := []struct {
		name  string
		roles string
		want  int
	}{
		{name: "system admin", roles: "SYSTEM_ADMIN", want: http.StatusOK},
		{name: "user admin among others", roles: "EMPLOYEE,USER_ADMIN", want: http.StatusOK},
		{name: "spaces around names", roles: "EMPLOYEE, USER_ADMIN", want: http.StatusOK},
		{name: "employee only", roles: "EMPLOYEE", want: http.StatusForbidden},
		{name: "no roles", roles: "", want: http.StatusForbidden},
		{name: "partial name does not match", roles: "SYSTEM_ADMIN_X", want: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := roleRouter(tt.roles, guard)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
