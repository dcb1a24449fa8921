package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieManager writes and clears the access/refresh token cookies.
type CookieManager struct {
	Domain string
	Secure bool
}

func NewCookieManager(domain string, secure bool) *CookieManager {
	return &CookieManager{Domain: domain, Secure: secure}
}

func (m *CookieManager) SetPair(c *gin.Context, access string, accessExp time.Time, refresh string, refreshExp time.Time) {
	m.set(c, "access_token", access, accessExp)
	m.set(c, "refresh_token", refresh, refreshExp)
}

func (m *CookieManager) Clear(c *gin.Context) {
	m.set(c, "access_token", "", time.Now().Add(-time.Hour))
	m.set(c, "refresh_token", "", time.Now().Add(-time.Hour))
}

func (m *CookieManager) set(c *gin.Context, name, value string, expires time.Time) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   m.Domain,
		Expires:  expires,
		Secure:   m.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
